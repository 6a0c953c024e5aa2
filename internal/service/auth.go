package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/deppfellow/shoplist/internal/server"
)

// AuthService configures Clerk with the secret key from config.
type AuthService struct {
	enabled bool
}

// NewAuthService sets the Clerk key when one is configured. Without a key
// authentication is disabled and mutating routes stay open.
func NewAuthService(s *server.Server) *AuthService {
	key := s.Config.Auth.SecretKey
	if key == "" {
		s.Logger.Warn().Msg("auth secret key not configured, write routes are unauthenticated")
		return &AuthService{}
	}

	clerk.SetKey(key)
	return &AuthService{enabled: true}
}

// Enabled reports whether requests must carry a Clerk session.
func (a *AuthService) Enabled() bool {
	return a.enabled
}
