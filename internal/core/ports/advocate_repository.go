package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ListAdvocatesFilter carries query parameters for the advocate directory.
type ListAdvocatesFilter struct {
	Specialization string // optional: partial match on specializations
	Location       string // optional: partial match on court_locations
	Page           int    // 1-based
	Limit          int    // max rows per page (capped by service)
}

// AdvocateRepository defines read access to verified advocates.
type AdvocateRepository interface {
	// List returns a page of verified, active advocates and the total count.
	List(ctx context.Context, filter ListAdvocatesFilter) ([]domain.Advocate, int64, error)
	// FindBySpecialization returns verified advocates whose specializations
	// contain spec, ordered by rating then experience, both descending.
	FindBySpecialization(ctx context.Context, spec string, limit int) ([]domain.Advocate, error)
	// FindTopRated returns the best verified advocates regardless of
	// specialization, same ordering.
	FindTopRated(ctx context.Context, limit int) ([]domain.Advocate, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.Advocate, error)
}
