package engage

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

// LoadState describes where the comment list stands.
type LoadState int

const (
	Idle LoadState = iota
	Loading
	Ready
	Failed
)

// Fixed user-facing notices.
const (
	NoticeLoadFailed        = "댓글을 불러오는 중 오류가 발생했습니다."
	NoticeCreateFailed      = "댓글 등록에 실패했습니다."
	NoticeLikeFailed        = "좋아요 처리에 실패했습니다."
	NoticeEditUnavailable   = "수정 API 연동 필요"
	NoticeDeleteUnavailable = "삭제 API 연동 필요"
)

// ListResult carries one ListComments response back to the view loop.
// Gen ties it to the target generation it was issued for.
type ListResult struct {
	Gen      int
	Comments []domain.Comment
	Err      error
}

// CreateResult carries one CreateComment response.
type CreateResult struct {
	Gen int
	Err error
}

// LikeResult carries one toggle-then-count round trip. Count is only
// meaningful when Err is nil.
type LikeResult struct {
	Gen       int
	CommentID int64
	Count     int
	Err       error
}

// Store는 하나의 대상(Target)에 마운트된 댓글 뷰의 상태 기계입니다.
// 원격 호출 자체는 Fetch/Submit/Like가 돌려주는 클로저 안에서 일어나고,
// 상태 변경은 단일 이벤트 루프에서 Apply* 메서드로만 일어납니다.
// 세대 토큰(gen)이 대상 전환 이후 도착한 응답을 걸러냅니다.
type Store struct {
	api  ports.Engagement
	user *domain.User
	log  *zap.SugaredLogger

	target    domain.Target
	gen       int
	comments  []domain.Comment
	draft     string
	anonymous bool
	state     LoadState
	loadError string
	notice    string
}

// NewStore binds a view to the engagement API and the current user.
// The user is read-only here; pass nil when unauthenticated.
func NewStore(api ports.Engagement, user *domain.User, log *zap.SugaredLogger) *Store {
	return &Store{
		api:       api,
		user:      user,
		log:       log,
		anonymous: true,
		state:     Idle,
	}
}

// Mount discards all state tied to the previous target and enters
// Loading for the new one. Any in-flight response for the old target
// becomes stale and will be dropped by its generation token.
func (s *Store) Mount(t domain.Target) {
	s.target = t
	s.gen++
	s.comments = nil
	s.draft = ""
	s.anonymous = true
	s.state = Loading
	s.loadError = ""
	s.notice = ""
}

// Reload re-enters Loading for the current target, keeping the draft
// and anonymity choice. Used after a successful create and for manual
// refresh.
func (s *Store) Reload() {
	s.gen++
	s.state = Loading
	s.loadError = ""
}

// Fetch snapshots the current target and generation and returns a
// closure that performs the list call. Run the closure off the event
// loop; feed its result to ApplyList.
func (s *Store) Fetch(ctx context.Context) func() ListResult {
	t, gen, api := s.target, s.gen, s.api
	return func() ListResult {
		comments, err := api.ListComments(ctx, t)
		return ListResult{Gen: gen, Comments: comments, Err: err}
	}
}

// ApplyList folds one list response into the view. Responses are
// applied in target-relevance order: a result whose generation does
// not match the current one is a stale response and is dropped.
func (s *Store) ApplyList(r ListResult) {
	if r.Gen != s.gen {
		if s.log != nil {
			s.log.Debugw("stale list response dropped", "gen", r.Gen, "current", s.gen)
		}
		return
	}
	if r.Err != nil {
		// Keep the last known comments; only flag the failure.
		s.state = Failed
		s.loadError = NoticeLoadFailed
		if s.log != nil {
			s.log.Warnw("comment list fetch failed", "target", s.target.Key(), "err", r.Err)
		}
		return
	}
	s.comments = r.Comments
	s.state = Ready
	s.loadError = ""
}

// Submit validates the draft and returns the create closure. A
// whitespace-only draft is rejected locally with ErrEmptyDraft and no
// network call happens.
func (s *Store) Submit(ctx context.Context) (func() CreateResult, error) {
	if s.user == nil {
		return nil, ErrLoginRequired
	}
	if strings.TrimSpace(s.draft) == "" {
		return nil, ErrEmptyDraft
	}
	t, gen, api := s.target, s.gen, s.api
	content, anonymous := s.draft, s.anonymous
	return func() CreateResult {
		err := api.CreateComment(ctx, t, content, anonymous)
		return CreateResult{Gen: gen, Err: err}
	}, nil
}

// ApplyCreate folds one create response. On success the draft is
// cleared, the anonymity choice flips to public for the rest of the
// view's life, and the store re-enters Loading so the caller can fetch
// the authoritative list (the backend assigns the id; nothing is
// synthesized locally). Returns true when that fetch is due.
func (s *Store) ApplyCreate(r CreateResult) bool {
	if r.Gen != s.gen {
		return false
	}
	if r.Err != nil {
		// Draft preserved so the user does not lose input.
		s.notice = noticeFor(r.Err, NoticeCreateFailed)
		if s.log != nil {
			s.log.Warnw("comment create failed", "target", s.target.Key(), "err", r.Err)
		}
		return false
	}
	s.draft = ""
	s.anonymous = false
	s.Reload()
	return true
}

// Like returns the toggle-then-count closure for one comment. The two
// steps run in order inside the closure so the toggle's effect is
// observed before anything else happens. Requires a user.
func (s *Store) Like(ctx context.Context, commentID int64) (func() LikeResult, error) {
	if s.user == nil {
		return nil, ErrLoginRequired
	}
	t, gen, api := s.target, s.gen, s.api
	return func() LikeResult {
		if err := api.ToggleLike(ctx, t, commentID); err != nil {
			return LikeResult{Gen: gen, CommentID: commentID, Err: err}
		}
		count, err := api.FetchLikeCount(ctx, t, commentID)
		return LikeResult{Gen: gen, CommentID: commentID, Count: count, Err: err}
	}, nil
}

// ApplyLike patches only the matching comment's like count, leaving
// every other comment and the list order untouched. On failure the
// prior displayed count stays: if the toggle landed but the count
// fetch did not, the screen is momentarily behind the server and a
// later list refresh heals it.
func (s *Store) ApplyLike(r LikeResult) {
	if r.Gen != s.gen {
		return
	}
	if r.Err != nil {
		s.notice = noticeFor(r.Err, NoticeLikeFailed)
		if s.log != nil {
			s.log.Warnw("like toggle failed", "comment", r.CommentID, "err", r.Err)
		}
		return
	}
	for i := range s.comments {
		if s.comments[i].ID == r.CommentID {
			s.comments[i].LikeCount = r.Count
			break
		}
	}
}

// RequestUpdate is the hook for comment editing. The backend API is
// not wired yet; callers get ErrNotImplemented, distinct from a
// request failure.
func (s *Store) RequestUpdate(commentID int64, newContent string) error {
	s.notice = NoticeEditUnavailable
	return ErrNotImplemented
}

// RequestDelete is the hook for comment deletion, same contract as
// RequestUpdate.
func (s *Store) RequestDelete(commentID int64) error {
	s.notice = NoticeDeleteUnavailable
	return ErrNotImplemented
}

// IsMine reports whether a comment was written by the current user.
// Display-only trust decision for the edit/delete affordance, not a
// security boundary.
func (s *Store) IsMine(c domain.Comment) bool {
	return s.user != nil && s.user.Nickname == c.Writer
}

func (s *Store) Target() domain.Target { return s.target }

func (s *Store) User() *domain.User { return s.user }

func (s *Store) Comments() []domain.Comment { return s.comments }

func (s *Store) Count() int { return len(s.comments) }

func (s *Store) State() LoadState { return s.state }

func (s *Store) LoadError() string { return s.loadError }

func (s *Store) Draft() string { return s.draft }

func (s *Store) Anonymous() bool { return s.anonymous }

func (s *Store) SetDraft(content string) { s.draft = content }

func (s *Store) SetAnonymous(v bool) { s.anonymous = v }

// TakeNotice returns and clears the pending transient notice.
func (s *Store) TakeNotice() string {
	n := s.notice
	s.notice = ""
	return n
}

// Notice returns the pending transient notice without clearing it.
func (s *Store) Notice() string { return s.notice }

// noticeFor prefers the server-provided message over the generic one.
func noticeFor(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
