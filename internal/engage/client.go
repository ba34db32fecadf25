package engage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

const DefaultBaseURL = "https://api.youthpolicy.kr"

// Client는 청년정책 서비스의 댓글/좋아요 API를 위한 어댑터입니다.
// ports.Engagement 인터페이스를 구현하며 엔드포인트 해석, 인증 헤더,
// 응답 봉투(envelope) 해석을 담당합니다.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    ports.Session
	Log        *zap.SugaredLogger
}

func NewClient(session ports.Session, log *zap.SugaredLogger) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
		Session:    session,
		Log:        log,
	}
}

// Ensure Client implements Engagement interface
var _ ports.Engagement = (*Client)(nil)

// envelope is the {isSuccess, result} wrapper every endpoint uses.
type envelope struct {
	IsSuccess bool            `json:"isSuccess"`
	Message   string          `json:"message"`
	Result    json.RawMessage `json:"result"`
}

// apiComment mirrors the wire shape of one comment. Policy replies
// carry replyId instead of id; both are accepted.
type apiComment struct {
	ID        int64  `json:"id"`
	ReplyID   int64  `json:"replyId"`
	Writer    string `json:"writer"`
	Anonymous bool   `json:"anonymous"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	LikeCount int    `json:"likeCount"`
}

func (a apiComment) toDomain() domain.Comment {
	id := a.ID
	if id == 0 {
		id = a.ReplyID
	}
	c := domain.Comment{
		ID:        id,
		Writer:    a.Writer,
		Anonymous: a.Anonymous,
		Content:   a.Content,
		LikeCount: a.LikeCount,
	}
	if a.CreatedAt != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, a.CreatedAt); err == nil {
				c.CreatedAt = &ts
				break
			}
		}
	}
	return c
}

// ListComments implements ports.Engagement. An isSuccess:false
// envelope yields an empty list with no error; the view treats a
// rejected list the same as an empty one.
func (c *Client) ListComments(ctx context.Context, t domain.Target) ([]domain.Comment, error) {
	ep, err := ResolveEndpoints(t)
	if err != nil {
		return nil, err
	}

	env, err := c.do(ctx, "GET", ep.List, nil)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	if !env.IsSuccess {
		return []domain.Comment{}, nil
	}

	var raw []apiComment
	if len(env.Result) > 0 {
		if err := json.Unmarshal(env.Result, &raw); err != nil {
			return nil, fmt.Errorf("list comments: decode result: %w", err)
		}
	}

	comments := make([]domain.Comment, 0, len(raw))
	for _, a := range raw {
		comments = append(comments, a.toDomain())
	}
	return comments, nil
}

// CreateComment posts a new comment. The created id is not consumed;
// callers re-fetch the list to observe the new comment.
func (c *Client) CreateComment(ctx context.Context, t domain.Target, content string, anonymous bool) error {
	ep, err := ResolveEndpoints(t)
	if err != nil {
		return err
	}

	var body map[string]any
	switch t.Kind {
	case domain.KindPolicy:
		body = map[string]any{"content": content, "plcyNo": t.ID, "plcyNm": t.PolicyName}
	default:
		body = map[string]any{"content": content}
	}

	q := url.Values{"isAnonymous": {strconv.FormatBool(anonymous)}}
	env, err := c.do(ctx, "POST", ep.Create+"?"+q.Encode(), body)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	if !env.IsSuccess {
		return &AppError{Message: env.Message}
	}
	return nil
}

// ToggleLike flips the like state of one comment. The endpoint returns
// no count; FetchLikeCount must follow.
func (c *Client) ToggleLike(ctx context.Context, t domain.Target, commentID int64) error {
	ep, err := ResolveEndpoints(t)
	if err != nil {
		return err
	}

	env, err := c.do(ctx, "POST", ep.LikeToggle(commentID), nil)
	if err != nil {
		return fmt.Errorf("toggle like: %w", err)
	}
	if !env.IsSuccess {
		return &AppError{Message: env.Message}
	}
	return nil
}

// FetchLikeCount returns the authoritative like count for one comment.
func (c *Client) FetchLikeCount(ctx context.Context, t domain.Target, commentID int64) (int, error) {
	ep, err := ResolveEndpoints(t)
	if err != nil {
		return 0, err
	}

	env, err := c.do(ctx, "GET", ep.LikeCount(commentID), nil)
	if err != nil {
		return 0, fmt.Errorf("fetch like count: %w", err)
	}
	if !env.IsSuccess {
		return 0, &AppError{Message: env.Message}
	}

	var count int
	if err := json.Unmarshal(env.Result, &count); err != nil {
		return 0, fmt.Errorf("fetch like count: decode result: %w", err)
	}
	return count, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var buf *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewBuffer(encoded)
	} else {
		buf = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Session != nil {
		if token := c.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if c.Log != nil {
		c.Log.Debugw("api call", "method", method, "path", path, "status", resp.StatusCode)
	}

	if resp.StatusCode >= 400 {
		// Error statuses surface the server message when one exists.
		var errEnv envelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errEnv); decodeErr == nil && errEnv.Message != "" {
			return nil, &AppError{Message: errEnv.Message}
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
