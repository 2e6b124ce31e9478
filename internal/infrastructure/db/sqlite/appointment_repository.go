package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// AppointmentRepository is the SQLite implementation of
// ports.AppointmentRepository.
type AppointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

const appointmentColumns = `id, reference, client_id, advocate_id, scheduled_at, duration_minutes,
	consultation_mode, case_type, case_description, consultation_fee, notes, status, created_at, updated_at`

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment, notify *domain.Notification) (*domain.Appointment, error) {
	now := time.Now().UTC()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO appointments (reference, client_id, advocate_id, scheduled_at,
			 duration_minutes, consultation_mode, case_type, case_description,
			 consultation_fee, notes, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			appt.Reference, appt.ClientID, appt.AdvocateID, appt.ScheduledAt,
			appt.DurationMinutes, appt.ConsultationMode, appt.CaseType, appt.CaseDescription,
			appt.ConsultationFee, appt.Notes, appt.Status, appt.CreatedAt, appt.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert appointment: %w", err)
		}
		if appt.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("appointment id: %w", err)
		}

		if notify != nil {
			notify.CreatedAt = now
			res, err := tx.ExecContext(ctx,
				`INSERT INTO notifications (user_id, title, message, notification_type, is_read, created_at)
				 VALUES (?, ?, ?, ?, 0, ?)`,
				notify.UserID, notify.Title, notify.Message, notify.Type, notify.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert notification: %w", err)
			}
			if notify.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("notification id: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return appt, nil
}

func (r *AppointmentRepository) FindByReference(ctx context.Context, reference string) (*domain.Appointment, error) {
	var appt domain.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE reference = ?`
	if err := r.store.db.GetContext(ctx, &appt, query, reference); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

func (r *AppointmentRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	appointments := []*domain.Appointment{}
	query := `SELECT ` + appointmentColumns + ` FROM appointments
		WHERE client_id = ? OR advocate_id = ? ORDER BY scheduled_at DESC`
	if err := r.store.db.SelectContext(ctx, &appointments, query, userID, userID); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, reference, status string) error {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE appointments SET status = ?, updated_at = ? WHERE reference = ?`,
		status, time.Now().UTC(), reference,
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) HasConflict(ctx context.Context, advocateID int64, at time.Time, durationMinutes int) (bool, error) {
	end := at.Add(time.Duration(durationMinutes) * time.Minute)
	var count int
	// Overlap: existing start before the new end, existing end after the
	// new start. Existing end is computed from duration_minutes.
	err := r.store.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM appointments
		 WHERE advocate_id = ? AND status = 'scheduled'
		   AND scheduled_at < ?
		   AND datetime(scheduled_at, '+' || duration_minutes || ' minutes') > datetime(?)`,
		advocateID, end, at,
	)
	if err != nil {
		return false, fmt.Errorf("check conflict: %w", err)
	}
	return count > 0, nil
}
