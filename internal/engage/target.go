package engage

import (
	"fmt"
	"net/url"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// Endpoints는 하나의 대상(Target)에 대한 댓글 API 경로 묶음입니다.
// 스토어와 화면 계층은 어떤 리소스 계열과 통신하는지 알지 못하며,
// 새로운 대상 종류는 ResolveEndpoints의 매핑 확장만으로 추가됩니다.
type Endpoints struct {
	List   string
	Create string

	toggleFormat string
	countFormat  string
}

// LikeToggle returns the like-flip path for one comment.
func (e Endpoints) LikeToggle(commentID int64) string {
	return fmt.Sprintf(e.toggleFormat, commentID)
}

// LikeCount returns the like-count path for one comment.
func (e Endpoints) LikeCount(commentID int64) string {
	return fmt.Sprintf(e.countFormat, commentID)
}

// ResolveEndpoints maps a target to its four endpoint descriptors.
// Pure and total over the supported kinds; any other kind is a
// configuration error, never a silent no-op.
func ResolveEndpoints(t domain.Target) (Endpoints, error) {
	switch t.Kind {
	case domain.KindPolicy:
		return Endpoints{
			List:         "/youth/policies/reply-list?plcyNo=" + url.QueryEscape(t.ID),
			Create:       "/youth/policies/create",
			toggleFormat: "/youth/policies/replies/%d/like",
			countFormat:  "/youth/policies/replies/%d/likes",
		}, nil
	case domain.KindPost:
		return Endpoints{
			List:         "/posts/replies/" + url.PathEscape(t.ID),
			Create:       "/posts/replies/" + url.PathEscape(t.ID),
			toggleFormat: "/posts/replies/%d/like",
			countFormat:  "/posts/replies/%d/like-count",
		}, nil
	default:
		return Endpoints{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, t.Kind)
	}
}
