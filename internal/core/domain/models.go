package domain

import "time"

// TargetKind identifies which backend resource family a comment thread
// is attached to.
type TargetKind string

const (
	KindPolicy TargetKind = "policy"
	KindPost   TargetKind = "post"
)

// Target identifies what is being discussed: one policy or one
// community post. Kind is fixed for the lifetime of a view; switching
// subjects means a new Target and a fresh view state.
type Target struct {
	Kind TargetKind
	ID   string
	// PolicyName is creation-only context for policy targets (plcyNm).
	// Reads never need it.
	PolicyName string
}

// Key returns a stable identifier usable as a storage key.
func (t Target) Key() string {
	return string(t.Kind) + ":" + t.ID
}

// Comment represents one unit of discussion on a target.
type Comment struct {
	ID        int64
	Writer    string
	Anonymous bool
	Content   string
	CreatedAt *time.Time // display only, some backends omit it
	LikeCount int
}

// User is the authenticated identity consumed by the engagement view.
// Produced elsewhere (session restore); the view only reads it.
type User struct {
	Nickname string
}

// Policy represents one youth policy entry.
type Policy struct {
	ID                int
	Title             string
	Description       string
	Status            string // 진행전, 진행중, 완료
	Location          string
	Likes             int
	Tags              []string
	SupportContent    string
	SupportScale      string
	ApplicationPeriod string
	ApplicationMethod string
	Eligibility       string
	RequiredDocuments string
	ApplicationURL    string
}

// NewPost is a community post to be published.
type NewPost struct {
	Title     string
	Content   string
	RegionID  int
	Anonymous bool
	// ImagePath is an optional local file attached to the post.
	ImagePath string
}

// Region is one entry of the static region catalog.
type Region struct {
	ID   int
	Name string
}
