package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

const defaultDurationMinutes = 30

// AppointmentService books and manages consultations between clients and
// advocates.
type AppointmentService struct {
	repo      ports.AppointmentRepository
	advocates ports.AdvocateRepository
	logger    zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, advocates ports.AdvocateRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, advocates: advocates, logger: logger}
}

func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	if in.ScheduledAt.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	if in.DurationMinutes <= 0 {
		in.DurationMinutes = defaultDurationMinutes
	}

	advocate, err := s.advocates.FindByUserID(ctx, in.AdvocateID)
	if err != nil {
		return nil, err
	}

	conflict, err := s.repo.HasConflict(ctx, advocate.UserID, in.ScheduledAt, in.DurationMinutes)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, domain.ErrSlotUnavailable
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		Reference:        generateReference(),
		ClientID:         in.ClientID,
		AdvocateID:       advocate.UserID,
		ScheduledAt:      in.ScheduledAt,
		DurationMinutes:  in.DurationMinutes,
		ConsultationMode: in.ConsultationMode,
		CaseType:         in.CaseType,
		CaseDescription:  in.CaseDescription,
		ConsultationFee:  advocate.ConsultationFee,
		Notes:            in.Notes,
		Status:           domain.AppointmentScheduled,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	notify := &domain.Notification{
		UserID:    advocate.UserID,
		Title:     "New consultation booked",
		Message:   fmt.Sprintf("A consultation is scheduled for %s.", in.ScheduledAt.Format(time.RFC1123)),
		Type:      "appointment",
		CreatedAt: now,
	}

	created, err := s.repo.Create(ctx, appt, notify)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to book appointment")
		return nil, err
	}

	s.logger.Info().Str("reference", created.Reference).Int64("advocate_id", advocate.UserID).Msg("appointment booked")
	return created, nil
}

func (s *AppointmentService) ListForUser(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	return s.repo.ListForUser(ctx, userID)
}

func (s *AppointmentService) Get(ctx context.Context, reference string, userID int64) (*domain.Appointment, error) {
	appt, err := s.repo.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if appt.ClientID != userID && appt.AdvocateID != userID {
		return nil, domain.ErrForbidden
	}
	return appt, nil
}

func (s *AppointmentService) Cancel(ctx context.Context, reference string, userID int64) error {
	appt, err := s.Get(ctx, reference, userID)
	if err != nil {
		return err
	}
	if appt.Status != domain.AppointmentScheduled {
		return domain.ErrInvalidInput
	}
	return s.repo.UpdateStatus(ctx, reference, domain.AppointmentCancelled)
}

// generateReference returns a booking reference in the format APT-XXXXXXXX.
func generateReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("APT-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("APT-%08X", b)
}
