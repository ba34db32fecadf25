package engage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// fakeAPI serves comments per target key and counts calls, so tests
// can assert that no network happens when none should.
type fakeAPI struct {
	byTarget  map[string][]domain.Comment
	listErr   error
	createErr error
	toggleErr error
	countErr  error
	count     int

	listCalls   int
	createCalls int
	toggleCalls int
	countCalls  int
}

func (f *fakeAPI) ListComments(ctx context.Context, t domain.Target) ([]domain.Comment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byTarget[t.Key()], nil
}

func (f *fakeAPI) CreateComment(ctx context.Context, t domain.Target, content string, anonymous bool) error {
	f.createCalls++
	return f.createErr
}

func (f *fakeAPI) ToggleLike(ctx context.Context, t domain.Target, commentID int64) error {
	f.toggleCalls++
	return f.toggleErr
}

func (f *fakeAPI) FetchLikeCount(ctx context.Context, t domain.Target, commentID int64) (int, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

func threeComments() []domain.Comment {
	return []domain.Comment{
		{ID: 1, Writer: "민지", Content: "첫 댓글", LikeCount: 1},
		{ID: 2, Writer: "준호", Content: "둘째 댓글", LikeCount: 3},
		{ID: 3, Writer: "소연", Content: "셋째 댓글", LikeCount: 0},
	}
}

func policyTarget(id string) domain.Target {
	return domain.Target{Kind: domain.KindPolicy, ID: id, PolicyName: "정책 " + id}
}

func TestMountAndFetchReady(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}}
	s := NewStore(api, nil, nil)

	s.Mount(policyTarget("1"))
	assert.Equal(t, Loading, s.State())

	s.ApplyList(s.Fetch(context.Background())())
	assert.Equal(t, Ready, s.State())
	assert.Equal(t, 3, s.Count())
}

func TestEmptySuccessIsReadyNotError(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": {}}}
	s := NewStore(api, nil, nil)

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(context.Background())())

	assert.Equal(t, Ready, s.State())
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.LoadError())
}

func TestFetchFailureKeepsLastComments(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}}
	s := NewStore(api, nil, nil)

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(context.Background())())
	require.Equal(t, 3, s.Count())

	api.listErr = errors.New("connection refused")
	s.Reload()
	s.ApplyList(s.Fetch(context.Background())())

	assert.Equal(t, Failed, s.State())
	assert.Equal(t, NoticeLoadFailed, s.LoadError())
	assert.Equal(t, 3, s.Count(), "comments must not be cleared on failure")
}

func TestStaleResponseIsDropped(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{
		"policy:1": threeComments(),
		"policy:2": {{ID: 9, Writer: "새글", Content: "두번째 정책 댓글"}},
	}}
	s := NewStore(api, nil, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	slowFetch := s.Fetch(ctx)

	// Target switches while the first fetch is still in flight.
	s.Mount(policyTarget("2"))
	fastFetch := s.Fetch(ctx)

	s.ApplyList(fastFetch())
	require.Equal(t, Ready, s.State())
	require.Equal(t, 1, s.Count())

	// The late arrival for the old target must be a no-op.
	s.ApplyList(slowFetch())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, int64(9), s.Comments()[0].ID)
	assert.Equal(t, Ready, s.State())
}

func TestWhitespaceDraftRejectedLocally(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)

	s.Mount(policyTarget("1"))
	s.SetDraft("   ")
	_, err := s.Submit(context.Background())

	assert.ErrorIs(t, err, ErrEmptyDraft)
	assert.Zero(t, api.createCalls)
	assert.Zero(t, api.listCalls)
}

func TestSubmitRequiresUser(t *testing.T) {
	s := NewStore(&fakeAPI{}, nil, nil)
	s.Mount(policyTarget("1"))
	s.SetDraft("로그인 없이")

	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrLoginRequired)
}

func TestCreateFlipsAnonymityAndClearsDraft(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	require.True(t, s.Anonymous(), "first submission defaults to anonymous")

	s.SetDraft("첫 의견입니다")
	create, err := s.Submit(ctx)
	require.NoError(t, err)

	needFetch := s.ApplyCreate(create())
	assert.True(t, needFetch)
	assert.Empty(t, s.Draft())
	assert.False(t, s.Anonymous(), "anonymity flips to public after the first create")
	assert.Equal(t, Loading, s.State())

	s.ApplyList(s.Fetch(ctx)())
	assert.Equal(t, Ready, s.State())
}

func TestCreateFailurePreservesDraft(t *testing.T) {
	api := &fakeAPI{createErr: &AppError{Message: "댓글 등록 권한이 없습니다"}}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.SetAnonymous(true)
	s.SetDraft("지워지면 안 되는 입력")
	create, err := s.Submit(ctx)
	require.NoError(t, err)

	needFetch := s.ApplyCreate(create())
	assert.False(t, needFetch)
	assert.Equal(t, "지워지면 안 되는 입력", s.Draft())
	assert.True(t, s.Anonymous())
	assert.Equal(t, "댓글 등록 권한이 없습니다", s.TakeNotice())
}

func TestCreateFailureGenericNotice(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("connection reset")}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)

	s.Mount(policyTarget("1"))
	s.SetDraft("의견")
	create, _ := s.Submit(context.Background())
	s.ApplyCreate(create())

	assert.Equal(t, NoticeCreateFailed, s.TakeNotice())
}

func TestLikePatchesOnlyMatchingComment(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}, count: 4}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(ctx)())

	like, err := s.Like(ctx, 2)
	require.NoError(t, err)
	s.ApplyLike(like())

	comments := s.Comments()
	require.Len(t, comments, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{comments[0].ID, comments[1].ID, comments[2].ID}, "order unchanged")
	assert.Equal(t, 1, comments[0].LikeCount)
	assert.Equal(t, 4, comments[1].LikeCount, "only the middle comment is patched")
	assert.Equal(t, 0, comments[2].LikeCount)
	assert.Equal(t, "첫 댓글", comments[0].Content)
	assert.Equal(t, 1, api.toggleCalls)
	assert.Equal(t, 1, api.countCalls)
}

func TestLikeRequiresUser(t *testing.T) {
	api := &fakeAPI{}
	s := NewStore(api, nil, nil)
	s.Mount(policyTarget("1"))

	_, err := s.Like(context.Background(), 1)
	assert.ErrorIs(t, err, ErrLoginRequired)
	assert.Zero(t, api.toggleCalls)
}

func TestLikeCountFetchFailureKeepsDisplayedCount(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}, countErr: errors.New("timeout")}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(ctx)())

	like, err := s.Like(ctx, 2)
	require.NoError(t, err)
	s.ApplyLike(like())

	assert.Equal(t, 1, api.toggleCalls, "the toggle landed")
	assert.Equal(t, 3, s.Comments()[1].LikeCount, "displayed count unchanged, no rollback")
	assert.Equal(t, NoticeLikeFailed, s.TakeNotice())

	// A later manual refresh heals the display from the server.
	api.byTarget["policy:1"][1].LikeCount = 4
	s.Reload()
	s.ApplyList(s.Fetch(ctx)())
	assert.Equal(t, 4, s.Comments()[1].LikeCount)
}

func TestLikeToggleFailure(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}, toggleErr: errors.New("boom")}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(ctx)())

	like, _ := s.Like(ctx, 2)
	s.ApplyLike(like())

	assert.Zero(t, api.countCalls, "no count fetch after a failed toggle")
	assert.Equal(t, 3, s.Comments()[1].LikeCount)
	assert.Equal(t, NoticeLikeFailed, s.TakeNotice())
}

func TestStaleLikeResultDropped(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{
		"policy:1": threeComments(),
		"policy:2": threeComments(),
	}, count: 99}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(ctx)())
	like, err := s.Like(ctx, 2)
	require.NoError(t, err)

	s.Mount(policyTarget("2"))
	s.ApplyList(s.Fetch(ctx)())

	s.ApplyLike(like())
	assert.Equal(t, 3, s.Comments()[1].LikeCount, "like result for the old target is ignored")
}

func TestUpdateDeleteNotImplemented(t *testing.T) {
	s := NewStore(&fakeAPI{}, &domain.User{Nickname: "청년1"}, nil)
	s.Mount(policyTarget("1"))

	assert.ErrorIs(t, s.RequestUpdate(1, "new"), ErrNotImplemented)
	assert.Equal(t, NoticeEditUnavailable, s.TakeNotice())
	assert.ErrorIs(t, s.RequestDelete(1), ErrNotImplemented)
	assert.Equal(t, NoticeDeleteUnavailable, s.TakeNotice())
}

func TestIsMine(t *testing.T) {
	mine := domain.Comment{ID: 1, Writer: "청년1"}
	other := domain.Comment{ID: 2, Writer: "타인"}

	s := NewStore(&fakeAPI{}, &domain.User{Nickname: "청년1"}, nil)
	assert.True(t, s.IsMine(mine))
	assert.False(t, s.IsMine(other))

	anon := NewStore(&fakeAPI{}, nil, nil)
	assert.False(t, anon.IsMine(mine))
}

func TestMountResetsViewState(t *testing.T) {
	api := &fakeAPI{byTarget: map[string][]domain.Comment{"policy:1": threeComments()}}
	s := NewStore(api, &domain.User{Nickname: "청년1"}, nil)
	ctx := context.Background()

	s.Mount(policyTarget("1"))
	s.ApplyList(s.Fetch(ctx)())
	s.SetDraft("작성 중이던 글")
	s.SetAnonymous(false)

	s.Mount(policyTarget("2"))
	assert.Equal(t, Loading, s.State())
	assert.Zero(t, s.Count())
	assert.Empty(t, s.Draft())
	assert.True(t, s.Anonymous(), "a fresh view defaults back to anonymous")
}
