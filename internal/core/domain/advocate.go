package domain

import "time"

const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// AdvocateProfile is the one-to-one extension of a User with role=advocate.
// Specializations is free text, comma-separated; the recommender matches it
// by substring against a detected specialization label.
type AdvocateProfile struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             int64     `json:"user_id" db:"user_id"`
	BarCouncilID       string    `json:"bar_council_id,omitempty" db:"bar_council_id"`
	YearsExperience    int       `json:"years_experience" db:"years_experience"`
	Specializations    string    `json:"specializations" db:"specializations"`
	PracticeAreas      string    `json:"practice_areas,omitempty" db:"practice_areas"`
	Languages          string    `json:"languages,omitempty" db:"languages"`
	CourtLocations     string    `json:"court_locations,omitempty" db:"court_locations"`
	ConsultationFee    float64   `json:"consultation_fee" db:"consultation_fee"`
	HourlyRate         float64   `json:"hourly_rate" db:"hourly_rate"`
	Rating             float64   `json:"rating" db:"rating"`
	TotalCases         int       `json:"total_cases" db:"total_cases"`
	CasesWon           int       `json:"cases_won" db:"cases_won"`
	Bio                string    `json:"bio,omitempty" db:"bio"`
	OfficeAddress      string    `json:"office_address,omitempty" db:"office_address"`
	ConsultationModes  string    `json:"consultation_modes,omitempty" db:"consultation_modes"`
	AvailabilityStatus string    `json:"availability_status" db:"availability_status"`
	VerificationStatus string    `json:"verification_status" db:"verification_status"`
	IsActive           bool      `json:"is_active" db:"is_active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Advocate is the joined users/advocate_profiles row the directory and
// recommender queries return.
type Advocate struct {
	UserID            int64   `json:"id" db:"user_id"`
	FullName          string  `json:"name" db:"full_name"`
	Phone             string  `json:"phone" db:"phone"`
	Email             string  `json:"email" db:"email"`
	Specializations   string  `json:"specializations" db:"specializations"`
	YearsExperience   int     `json:"years_experience" db:"years_experience"`
	Rating            float64 `json:"rating" db:"rating"`
	ConsultationFee   float64 `json:"consultation_fee" db:"consultation_fee"`
	CourtLocations    string  `json:"court_locations" db:"court_locations"`
	OfficeAddress     string  `json:"office_address" db:"office_address"`
	ConsultationModes string  `json:"consultation_modes" db:"consultation_modes"`
}
