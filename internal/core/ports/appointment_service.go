package ports

import (
	"context"
	"time"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// BookAppointmentInput carries all data needed to book a consultation.
type BookAppointmentInput struct {
	ClientID         int64
	AdvocateID       int64
	ScheduledAt      time.Time
	DurationMinutes  int
	ConsultationMode string
	CaseType         string
	CaseDescription  string
	Notes            string
}

type AppointmentService interface {
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	ListForUser(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	// Get returns the appointment only when userID is a party to it.
	Get(ctx context.Context, reference string, userID int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, reference string, userID int64) error
}
