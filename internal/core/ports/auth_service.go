package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Username          string
	Email             string
	Password          string
	FullName          string
	Phone             string
	Role              string
	PreferredLanguage string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
