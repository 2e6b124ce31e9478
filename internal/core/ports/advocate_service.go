package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// AdvocateRecommendation pairs the recommended advocates with the practice
// area detected in the query.
type AdvocateRecommendation struct {
	Advocates      []domain.Advocate
	Specialization string
}

type AdvocateService interface {
	// Recommend returns up to three advocates for a free-text query.
	Recommend(ctx context.Context, query string) (*AdvocateRecommendation, error)
	List(ctx context.Context, filter ListAdvocatesFilter) ([]domain.Advocate, int64, error)
	Get(ctx context.Context, userID int64) (*domain.Advocate, error)
}
