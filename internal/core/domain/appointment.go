package domain

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment links a client to an advocate at a fixed slot. Reference is the
// public identifier returned on creation and used for lookup and cancellation.
type Appointment struct {
	ID               int64     `json:"-" db:"id"`
	Reference        string    `json:"reference" db:"reference"`
	ClientID         int64     `json:"client_id" db:"client_id"`
	AdvocateID       int64     `json:"advocate_id" db:"advocate_id"`
	ScheduledAt      time.Time `json:"scheduled_at" db:"scheduled_at"`
	DurationMinutes  int       `json:"duration_minutes" db:"duration_minutes"`
	ConsultationMode string    `json:"consultation_mode" db:"consultation_mode"`
	CaseType         string    `json:"case_type,omitempty" db:"case_type"`
	CaseDescription  string    `json:"case_description" db:"case_description"`
	ConsultationFee  float64   `json:"consultation_fee" db:"consultation_fee"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Notification is a stored message shown to a user on next visit.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"notification_type" db:"notification_type"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
