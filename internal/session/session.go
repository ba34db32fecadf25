package session

import (
	"os"

	"go.uber.org/zap"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

// Session holds the restored identity for one client run. The
// engagement view only consumes it; nothing here talks to an auth
// endpoint.
type Session struct {
	user  *domain.User
	token string
}

var _ ports.Session = (*Session)(nil)

// Restore builds the session from the environment, falling back to
// whatever the last run persisted. Fresh env values are written back
// to storage. An absent identity is a valid, unauthenticated session.
func Restore(store ports.Storage, log *zap.SugaredLogger) *Session {
	token := os.Getenv("YOUTH_ACCESS_TOKEN")
	nickname := os.Getenv("YOUTH_NICKNAME")

	if token == "" && store != nil {
		token, _ = store.LoadToken()
	} else if token != "" && store != nil {
		store.SaveToken(token)
	}
	if nickname == "" && store != nil {
		nickname, _ = store.LoadNickname()
	} else if nickname != "" && store != nil {
		store.SaveNickname(nickname)
	}

	s := &Session{token: token}
	if token != "" && nickname != "" {
		s.user = &domain.User{Nickname: nickname}
		if log != nil {
			log.Infow("session restored", "nickname", nickname)
		}
	} else if log != nil {
		log.Infow("no session, running unauthenticated")
	}
	return s
}

// CurrentUser returns the logged-in user, or nil when unauthenticated.
func (s *Session) CurrentUser() *domain.User { return s.user }

// Token returns the bearer token, empty when unauthenticated.
func (s *Session) Token() string { return s.token }
