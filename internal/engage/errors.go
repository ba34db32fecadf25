package engage

import "errors"

var (
	// ErrUnsupportedKind is returned for any target kind outside the
	// closed policy/post set.
	ErrUnsupportedKind = errors.New("unsupported target kind")

	// ErrEmptyDraft rejects whitespace-only drafts before any network
	// call is made.
	ErrEmptyDraft = errors.New("empty comment draft")

	// ErrLoginRequired gates actions that need an authenticated user.
	ErrLoginRequired = errors.New("login required")

	// ErrNotImplemented marks capabilities the backend does not expose
	// yet (comment update/delete). Distinct from a failed request.
	ErrNotImplemented = errors.New("not implemented")
)

// AppError is an application-level failure: the server answered but
// the envelope said isSuccess:false. Message carries the server text
// when one was provided.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}
