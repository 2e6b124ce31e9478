package domain

import "time"

const (
	RoleClient   = "client"
	RoleAdvocate = "advocate"
	RoleStudent  = "student"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the recognised user types.
func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleAdvocate, RoleStudent, RoleAdmin:
		return true
	}
	return false
}

// User models an account in the system. Users are never hard-deleted;
// IsActive is flipped instead.
type User struct {
	ID                int64      `json:"id" db:"id"`
	Username          string     `json:"username" db:"username"`
	Email             string     `json:"email" db:"email"`
	PasswordHash      string     `json:"-" db:"password_hash"`
	UserType          string     `json:"user_type" db:"user_type"`
	FullName          string     `json:"full_name" db:"full_name"`
	Phone             string     `json:"phone,omitempty" db:"phone"`
	Address           string     `json:"address,omitempty" db:"address"`
	PreferredLanguage string     `json:"preferred_language" db:"preferred_language"`
	IsVerified        bool       `json:"is_verified" db:"is_verified"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	LastLogin         *time.Time `json:"last_login,omitempty" db:"last_login"`
	LoginCount        int        `json:"login_count" db:"login_count"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// ClientProfile extends a User with role=client.
type ClientProfile struct {
	ID               int64     `json:"id" db:"id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	Occupation       string    `json:"occupation,omitempty" db:"occupation"`
	Company          string    `json:"company,omitempty" db:"company"`
	EmergencyContact string    `json:"emergency_contact,omitempty" db:"emergency_contact"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
