package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/knowledge"
	"github.com/legalease/legalease-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AdvocateService serves the advocate directory and recommendations.
type AdvocateService struct {
	repo   ports.AdvocateRepository
	logger zerolog.Logger
}

func NewAdvocateService(repo ports.AdvocateRepository, logger zerolog.Logger) *AdvocateService {
	return &AdvocateService{repo: repo, logger: logger}
}

// Recommend returns up to three verified advocates matching the practice
// area detected in the query, best rated first. When no practice area
// matches, the top rated advocates overall are returned.
func (s *AdvocateService) Recommend(ctx context.Context, query string) (*ports.AdvocateRecommendation, error) {
	specialization := knowledge.DetectSpecialization(query)

	var (
		advocates []domain.Advocate
		err       error
	)
	if specialization == knowledge.GeneralSpecialization {
		advocates, err = s.repo.FindTopRated(ctx, recommendLimit)
	} else {
		advocates, err = s.repo.FindBySpecialization(ctx, specialization, recommendLimit)
	}
	if err != nil {
		return nil, err
	}

	return &ports.AdvocateRecommendation{
		Advocates:      advocates,
		Specialization: specialization,
	}, nil
}

func (s *AdvocateService) List(ctx context.Context, filter ports.ListAdvocatesFilter) ([]domain.Advocate, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}
	return s.repo.List(ctx, filter)
}

func (s *AdvocateService) Get(ctx context.Context, userID int64) (*domain.Advocate, error) {
	return s.repo.FindByUserID(ctx, userID)
}
