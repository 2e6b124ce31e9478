package domain

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatSession groups an ordered sequence of messages for a user. Token is the
// public identifier handed to clients; the numeric ID stays internal.
type ChatSession struct {
	ID            int64     `json:"-" db:"id"`
	Token         string    `json:"token" db:"token"`
	UserID        int64     `json:"user_id" db:"user_id"`
	SessionTitle  string    `json:"session_title" db:"session_title"`
	SessionType   string    `json:"session_type" db:"session_type"`
	Language      string    `json:"language" db:"language"`
	TotalMessages int       `json:"total_messages" db:"total_messages"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ChatMessage is one append-only entry in a session. LegalCategories holds
// the comma-joined labels the category extractor assigned to the text.
type ChatMessage struct {
	ID              int64     `json:"id" db:"id"`
	SessionID       int64     `json:"-" db:"session_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Message         string    `json:"message" db:"message"`
	SenderType      string    `json:"sender_type" db:"sender_type"`
	AIModel         string    `json:"ai_model,omitempty" db:"ai_model"`
	ResponseTime    float64   `json:"response_time,omitempty" db:"response_time"`
	Language        string    `json:"language" db:"language"`
	LegalCategories string    `json:"legal_categories,omitempty" db:"legal_categories"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// ActivityLog records one user action; rows are written in the same
// transaction as the write that triggered them.
type ActivityLog struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Type        string    `json:"activity_type" db:"activity_type"`
	Description string    `json:"activity_description" db:"activity_description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
