package community

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/engage"
)

// Client는 커뮤니티 게시글 API를 위한 어댑터입니다. 게시글 발행은
// 제목/본문/지역과 선택적 이미지 파일을 multipart로 전송합니다.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    ports.Session
	Log        *zap.SugaredLogger
}

func NewClient(session ports.Session, log *zap.SugaredLogger) *Client {
	return &Client{
		BaseURL:    engage.DefaultBaseURL,
		HTTPClient: &http.Client{},
		Session:    session,
		Log:        log,
	}
}

// Ensure Client implements Community interface
var _ ports.Community = (*Client)(nil)

// CreatePost publishes a post and returns the new post id from the
// response envelope. Requires an authenticated session.
func (c *Client) CreatePost(ctx context.Context, p domain.NewPost) (int64, error) {
	if c.Session == nil || c.Session.CurrentUser() == nil {
		return 0, engage.ErrLoginRequired
	}
	if p.Title == "" || p.Content == "" || p.RegionID == 0 {
		return 0, fmt.Errorf("create post: title, region and content are required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("title", p.Title)
	w.WriteField("content", p.Content)
	w.WriteField("regionId", strconv.Itoa(p.RegionID))
	w.WriteField("isAnonymous", strconv.FormatBool(p.Anonymous))
	if p.ImagePath != "" {
		if err := attachImage(w, p.ImagePath); err != nil {
			return 0, fmt.Errorf("create post: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/posts/new", &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var body struct {
		IsSuccess bool   `json:"isSuccess"`
		Message   string `json:"message"`
		Result    struct {
			PostID int64 `json:"postId"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("create post: status %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 || !body.IsSuccess {
		return 0, &engage.AppError{Message: body.Message}
	}

	if c.Log != nil {
		c.Log.Infow("post published", "postId", body.Result.PostID)
	}
	return body.Result.PostID, nil
}

func attachImage(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := w.CreateFormFile("imageFile", filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}
