package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is disabled")
	ErrForbidden           = errors.New("operation not allowed for this role")
	ErrSessionNotFound     = errors.New("chat session not found")
	ErrAdvocateNotFound    = errors.New("advocate not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("appointment slot is not available")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidInput        = errors.New("invalid input")
)
