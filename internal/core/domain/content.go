package domain

import "time"

// LegalResource is a published article or guide in the public library.
type LegalResource struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Category    string    `json:"category" db:"category"`
	Content     string    `json:"content" db:"content"`
	Language    string    `json:"language" db:"language"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	ViewCount   int       `json:"view_count" db:"view_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// LegalTemplate is a fill-in document skeleton (complaints, notices, deeds).
type LegalTemplate struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Category      string    `json:"category" db:"category"`
	Description   string    `json:"description" db:"description"`
	TemplateBody  string    `json:"template_body" db:"template_body"`
	Language      string    `json:"language" db:"language"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	DownloadCount int       `json:"download_count" db:"download_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// SampleQuestion is a curated question with a vetted answer, shown as a
// starting point on the chat screen.
type SampleQuestion struct {
	ID        int64     `json:"id" db:"id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	Category  string    `json:"category" db:"category"`
	Language  string    `json:"language" db:"language"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StudyMaterial is reading material surfaced to law students.
type StudyMaterial struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Subject     string    `json:"subject" db:"subject"`
	ContentType string    `json:"content_type" db:"content_type"`
	Content     string    `json:"content" db:"content"`
	Difficulty  string    `json:"difficulty" db:"difficulty"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SystemSetting is one key/value configuration row editable at runtime.
type SystemSetting struct {
	ID          int64  `json:"id" db:"id"`
	Key         string `json:"setting_key" db:"setting_key"`
	Value       string `json:"setting_value" db:"setting_value"`
	Description string `json:"description" db:"description"`
}
