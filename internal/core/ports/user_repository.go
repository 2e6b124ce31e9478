package ports

import (
	"context"
	"time"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts the user and, in the same transaction, the empty
	// profile row matching the user's role.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// RecordLogin sets last_login and increments login_count.
	RecordLogin(ctx context.Context, id int64, at time.Time) error
}
