package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubAppointmentRepo struct {
	byRef         map[string]*domain.Appointment
	notifications []*domain.Notification
	conflict      bool
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{byRef: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, appt *domain.Appointment, notify *domain.Notification) (*domain.Appointment, error) {
	clone := *appt
	clone.ID = int64(len(r.byRef) + 1)
	r.byRef[appt.Reference] = &clone
	r.notifications = append(r.notifications, notify)
	return &clone, nil
}

func (r *stubAppointmentRepo) FindByReference(_ context.Context, reference string) (*domain.Appointment, error) {
	a, ok := r.byRef[reference]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) ListForUser(_ context.Context, userID int64) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.byRef {
		if a.ClientID == userID || a.AdvocateID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, reference, status string) error {
	a, ok := r.byRef[reference]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (r *stubAppointmentRepo) HasConflict(_ context.Context, _ int64, _ time.Time, _ int) (bool, error) {
	return r.conflict, nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newAppointmentFixture() (*AppointmentService, *stubAppointmentRepo) {
	repo := newStubAppointmentRepo()
	advocates := &stubAdvocateRepo{topRated: []domain.Advocate{
		{UserID: 9, FullName: "Adv. Meena Nair", Rating: 4.8, ConsultationFee: 1500},
	}}
	return NewAppointmentService(repo, advocates, zerolog.Nop()), repo
}

func TestAppointmentBook(t *testing.T) {
	ctx := context.Background()
	slot := time.Now().Add(48 * time.Hour)

	t.Run("books and notifies the advocate", func(t *testing.T) {
		svc, repo := newAppointmentFixture()
		appt, err := svc.Book(ctx, ports.BookAppointmentInput{
			ClientID:         3,
			AdvocateID:       9,
			ScheduledAt:      slot,
			ConsultationMode: "video",
			CaseType:         "Property Law",
			CaseDescription:  "Property dispute",
			Notes:            "Prefers evening slots",
		})
		if err != nil {
			t.Fatalf("Book() error = %v", err)
		}
		if !strings.HasPrefix(appt.Reference, "APT-") {
			t.Errorf("reference = %q, want APT- prefix", appt.Reference)
		}
		if appt.Status != domain.AppointmentScheduled {
			t.Errorf("status = %q", appt.Status)
		}
		if appt.ConsultationFee != 1500 {
			t.Errorf("fee = %v, want 1500 copied from the advocate profile", appt.ConsultationFee)
		}
		if appt.CaseType != "Property Law" || appt.Notes != "Prefers evening slots" {
			t.Errorf("case type = %q, notes = %q", appt.CaseType, appt.Notes)
		}
		if appt.DurationMinutes != defaultDurationMinutes {
			t.Errorf("duration = %d, want default", appt.DurationMinutes)
		}
		if len(repo.notifications) != 1 || repo.notifications[0].UserID != 9 {
			t.Errorf("notifications = %v", repo.notifications)
		}
	})

	t.Run("rejects past slots", func(t *testing.T) {
		svc, _ := newAppointmentFixture()
		_, err := svc.Book(ctx, ports.BookAppointmentInput{ClientID: 3, AdvocateID: 9, ScheduledAt: time.Now().Add(-time.Hour)})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("rejects unknown advocate", func(t *testing.T) {
		svc, _ := newAppointmentFixture()
		_, err := svc.Book(ctx, ports.BookAppointmentInput{ClientID: 3, AdvocateID: 404, ScheduledAt: slot})
		if !errors.Is(err, domain.ErrAdvocateNotFound) {
			t.Errorf("error = %v, want ErrAdvocateNotFound", err)
		}
	})

	t.Run("rejects conflicting slot", func(t *testing.T) {
		svc, repo := newAppointmentFixture()
		repo.conflict = true
		_, err := svc.Book(ctx, ports.BookAppointmentInput{ClientID: 3, AdvocateID: 9, ScheduledAt: slot})
		if !errors.Is(err, domain.ErrSlotUnavailable) {
			t.Errorf("error = %v, want ErrSlotUnavailable", err)
		}
	})
}

func TestAppointmentAccessAndCancel(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAppointmentFixture()

	appt, err := svc.Book(ctx, ports.BookAppointmentInput{
		ClientID: 3, AdvocateID: 9, ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}

	t.Run("both parties can read", func(t *testing.T) {
		for _, userID := range []int64{3, 9} {
			if _, err := svc.Get(ctx, appt.Reference, userID); err != nil {
				t.Errorf("Get() as %d error = %v", userID, err)
			}
		}
	})

	t.Run("strangers are rejected", func(t *testing.T) {
		if _, err := svc.Get(ctx, appt.Reference, 42); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Get() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("cancel flips status once", func(t *testing.T) {
		if err := svc.Cancel(ctx, appt.Reference, 3); err != nil {
			t.Fatalf("Cancel() error = %v", err)
		}
		got, err := svc.Get(ctx, appt.Reference, 3)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Status != domain.AppointmentCancelled {
			t.Errorf("status = %q, want cancelled", got.Status)
		}
		if err := svc.Cancel(ctx, appt.Reference, 3); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("second Cancel() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		if _, err := svc.Get(ctx, "APT-NOPE", 3); !errors.Is(err, domain.ErrAppointmentNotFound) {
			t.Errorf("Get() error = %v, want ErrAppointmentNotFound", err)
		}
	})
}
