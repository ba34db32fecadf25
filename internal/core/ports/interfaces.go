package ports

import (
	"context"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// Engagement performs the four remote comment operations for one
// target. None of them mutate local state; each is independently
// retryable by the caller.
type Engagement interface {
	// ListComments returns the server-ordered comment list. An
	// isSuccess:false envelope is an empty list, not an error.
	ListComments(ctx context.Context, t domain.Target) ([]domain.Comment, error)
	// CreateComment does not return the created comment; callers
	// re-fetch the list to observe it.
	CreateComment(ctx context.Context, t domain.Target, content string, anonymous bool) error
	// ToggleLike is a pure flip with no payload of interest.
	ToggleLike(ctx context.Context, t domain.Target, commentID int64) error
	// FetchLikeCount returns the authoritative count after a toggle.
	FetchLikeCount(ctx context.Context, t domain.Target, commentID int64) (int, error)
}

// Community publishes community posts.
type Community interface {
	CreatePost(ctx context.Context, p domain.NewPost) (int64, error)
}

// Session exposes the current user identity. The engagement view only
// reads it; restoring or refreshing it happens elsewhere.
type Session interface {
	CurrentUser() *domain.User
	Token() string
}

// Storage persists the small bits of client state that survive a run:
// the session token, the profile nickname, and per-target composer
// drafts.
type Storage interface {
	SaveToken(token string) error
	LoadToken() (string, error)
	SaveNickname(nickname string) error
	LoadNickname() (string, error)
	SaveDraft(targetKey string, content string) error
	LoadDraft(targetKey string) (string, error)
	ClearDraft(targetKey string) error
}
