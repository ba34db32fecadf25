package community

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/engage"
)

type stubSession struct {
	user  *domain.User
	token string
}

func (s *stubSession) CurrentUser() *domain.User { return s.user }
func (s *stubSession) Token() string             { return s.token }

func TestCreatePostMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/posts/new", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "모여봐요", r.FormValue("title"))
		assert.Equal(t, "같이 신청해요", r.FormValue("content"))
		assert.Equal(t, "9", r.FormValue("regionId"))
		assert.Equal(t, "true", r.FormValue("isAnonymous"))

		w.Write([]byte(`{"isSuccess":true,"result":{"postId":321}}`))
	}))
	defer server.Close()

	c := NewClient(&stubSession{user: &domain.User{Nickname: "청년1"}, token: "tok-1"}, nil)
	c.BaseURL = server.URL

	id, err := c.CreatePost(context.Background(), domain.NewPost{
		Title:     "모여봐요",
		Content:   "같이 신청해요",
		RegionID:  9,
		Anonymous: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(321), id)
}

func TestCreatePostRequiresLogin(t *testing.T) {
	c := NewClient(&stubSession{}, nil)
	_, err := c.CreatePost(context.Background(), domain.NewPost{Title: "t", Content: "c", RegionID: 1})
	assert.ErrorIs(t, err, engage.ErrLoginRequired)
}

func TestCreatePostValidatesRequiredFields(t *testing.T) {
	c := NewClient(&stubSession{user: &domain.User{Nickname: "n"}, token: "t"}, nil)
	_, err := c.CreatePost(context.Background(), domain.NewPost{Title: "제목만"})
	assert.Error(t, err)
}

func TestCreatePostServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"isSuccess":false,"message":"지역을 선택해 주세요"}`))
	}))
	defer server.Close()

	c := NewClient(&stubSession{user: &domain.User{Nickname: "n"}, token: "t"}, nil)
	c.BaseURL = server.URL

	_, err := c.CreatePost(context.Background(), domain.NewPost{Title: "t", Content: "c", RegionID: 1})
	var appErr *engage.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "지역을 선택해 주세요", appErr.Message)
}
