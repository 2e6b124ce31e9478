package ports

import (
	"context"
	"time"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// AppointmentRepository handles appointment persistence.
type AppointmentRepository interface {
	// Create inserts the appointment and the advocate's notification in one
	// transaction.
	Create(ctx context.Context, appt *domain.Appointment, notify *domain.Notification) (*domain.Appointment, error)
	FindByReference(ctx context.Context, reference string) (*domain.Appointment, error)
	// ListForUser returns appointments where the user is either the client
	// or the advocate, newest first.
	ListForUser(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, reference, status string) error
	// HasConflict reports whether the advocate already has a scheduled
	// appointment overlapping the given slot.
	HasConflict(ctx context.Context, advocateID int64, at time.Time, durationMinutes int) (bool, error)
}
