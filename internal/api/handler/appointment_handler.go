package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/api/metrics"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for consultations.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

type bookAppointmentRequest struct {
	AdvocateID       int64     `json:"advocate_id" validate:"required"`
	ScheduledAt      time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes  int       `json:"duration_minutes"`
	ConsultationMode string    `json:"consultation_mode"`
	CaseType         string    `json:"case_type"`
	CaseDescription  string    `json:"case_description"`
	Notes            string    `json:"notes"`
}

type appointmentResponse struct {
	Success     bool                `json:"success"`
	Appointment *domain.Appointment `json:"appointment"`
}

type appointmentListResponse struct {
	Success      bool                  `json:"success"`
	Appointments []*domain.Appointment `json:"appointments"`
}

// Book schedules a consultation with an advocate.
//
// @Summary      Book a consultation
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Consultation details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Book(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		ClientID:         userID,
		AdvocateID:       req.AdvocateID,
		ScheduledAt:      req.ScheduledAt,
		DurationMinutes:  req.DurationMinutes,
		ConsultationMode: req.ConsultationMode,
		CaseType:         req.CaseType,
		CaseDescription:  req.CaseDescription,
		Notes:            req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.AppointmentsBookedTotal.WithLabelValues(appt.ConsultationMode).Inc()

	return c.JSON(http.StatusCreated, appointmentResponse{Success: true, Appointment: appt})
}

// List returns the caller's appointments, newest first.
//
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  appointmentListResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	appointments, err := h.service.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentListResponse{Success: true, Appointments: appointments})
}

// Get returns one appointment by reference; only parties to it may read it.
//
// @Summary      Get an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path      string  true  "Appointment reference (e.g. APT-7A8B9C2D)"
// @Success      200        {object}  appointmentResponse
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/appointments/{reference} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	appt, err := h.service.Get(c.Request().Context(), c.Param("reference"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appointmentResponse{Success: true, Appointment: appt})
}

// Cancel cancels a scheduled appointment.
//
// @Summary      Cancel an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path      string  true  "Appointment reference"
// @Success      200        {object}  map[string]bool
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/appointments/{reference}/cancel [post]
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Cancel(c.Request().Context(), c.Param("reference"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
