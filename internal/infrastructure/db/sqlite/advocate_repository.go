package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// AdvocateRepository is the SQLite implementation of ports.AdvocateRepository.
// All queries join users with advocate_profiles and only return verified,
// active rows.
type AdvocateRepository struct {
	store *Store
}

func NewAdvocateRepository(store *Store) *AdvocateRepository {
	return &AdvocateRepository{store: store}
}

const advocateSelect = `
	SELECT u.id AS user_id, u.full_name, u.phone, u.email,
	       p.specializations, p.years_experience, p.rating, p.consultation_fee,
	       p.court_locations, p.office_address, p.consultation_modes
	FROM users u
	JOIN advocate_profiles p ON p.user_id = u.id
	WHERE u.user_type = 'advocate' AND u.is_active = 1
	  AND p.is_active = 1 AND p.verification_status = 'verified'`

const advocateOrder = ` ORDER BY p.rating DESC, p.years_experience DESC`

func (r *AdvocateRepository) List(ctx context.Context, filter ports.ListAdvocatesFilter) ([]domain.Advocate, int64, error) {
	cond := ""
	args := []any{}
	if filter.Specialization != "" {
		cond += ` AND p.specializations LIKE ?`
		args = append(args, "%"+filter.Specialization+"%")
	}
	if filter.Location != "" {
		cond += ` AND p.court_locations LIKE ?`
		args = append(args, "%"+filter.Location+"%")
	}

	countQuery := `SELECT COUNT(*) FROM users u
		JOIN advocate_profiles p ON p.user_id = u.id
		WHERE u.user_type = 'advocate' AND u.is_active = 1
		  AND p.is_active = 1 AND p.verification_status = 'verified'` + cond
	var total int64
	if err := r.store.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count advocates: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := advocateSelect + cond + advocateOrder + ` LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, offset)

	advocates := []domain.Advocate{}
	if err := r.store.db.SelectContext(ctx, &advocates, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list advocates: %w", err)
	}
	return advocates, total, nil
}

func (r *AdvocateRepository) FindBySpecialization(ctx context.Context, spec string, limit int) ([]domain.Advocate, error) {
	query := advocateSelect + ` AND p.specializations LIKE ?` + advocateOrder + ` LIMIT ?`
	advocates := []domain.Advocate{}
	if err := r.store.db.SelectContext(ctx, &advocates, query, "%"+spec+"%", limit); err != nil {
		return nil, fmt.Errorf("find by specialization: %w", err)
	}
	return advocates, nil
}

func (r *AdvocateRepository) FindTopRated(ctx context.Context, limit int) ([]domain.Advocate, error) {
	query := advocateSelect + advocateOrder + ` LIMIT ?`
	advocates := []domain.Advocate{}
	if err := r.store.db.SelectContext(ctx, &advocates, query, limit); err != nil {
		return nil, fmt.Errorf("find top rated: %w", err)
	}
	return advocates, nil
}

func (r *AdvocateRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Advocate, error) {
	query := advocateSelect + ` AND u.id = ?`
	var advocate domain.Advocate
	if err := r.store.db.GetContext(ctx, &advocate, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdvocateNotFound
		}
		return nil, fmt.Errorf("find advocate: %w", err)
	}
	return &advocate, nil
}
