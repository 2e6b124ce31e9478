package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/api/metrics"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// AdvocateHandler handles HTTP requests for the advocate directory.
type AdvocateHandler struct {
	service ports.AdvocateService
}

func NewAdvocateHandler(service ports.AdvocateService) *AdvocateHandler {
	return &AdvocateHandler{service: service}
}

type listAdvocatesResponse struct {
	Success   bool              `json:"success"`
	Advocates []domain.Advocate `json:"advocates"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
}

type recommendResponse struct {
	Success        bool              `json:"success"`
	Advocates      []domain.Advocate `json:"advocates"`
	Specialization string            `json:"specialization"`
}

// List returns a page of the verified advocate directory.
//
// @Summary      List advocates
// @Tags         advocates
// @Produce      json
// @Security     BearerAuth
// @Param        specialization  query     string  false  "Filter by specialization"
// @Param        location        query     string  false  "Filter by court location"
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Rows per page"
// @Success      200             {object}  listAdvocatesResponse
// @Failure      401             {object}  map[string]string
// @Router       /api/advocates [get]
func (h *AdvocateHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := ports.ListAdvocatesFilter{
		Specialization: c.QueryParam("specialization"),
		Location:       c.QueryParam("location"),
		Page:           page,
		Limit:          limit,
	}
	advocates, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	return c.JSON(http.StatusOK, listAdvocatesResponse{
		Success:   true,
		Advocates: advocates,
		Total:     total,
		Page:      filter.Page,
	})
}

// Recommend suggests advocates for a free-text legal query.
//
// @Summary      Recommend advocates for a query
// @Tags         advocates
// @Produce      json
// @Security     BearerAuth
// @Param        query  query     string  true  "Free-text description of the legal issue"
// @Success      200    {object}  recommendResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /api/advocates/recommend [get]
func (h *AdvocateHandler) Recommend(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}

	rec, err := h.service.Recommend(c.Request().Context(), query)
	if err != nil {
		return err
	}
	metrics.RecommendationsTotal.WithLabelValues(rec.Specialization).Inc()

	return c.JSON(http.StatusOK, recommendResponse{
		Success:        true,
		Advocates:      rec.Advocates,
		Specialization: rec.Specialization,
	})
}

// Get returns one advocate's public profile.
//
// @Summary      Get an advocate
// @Tags         advocates
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Advocate user id"
// @Success      200  {object}  domain.Advocate
// @Failure      404  {object}  map[string]string
// @Router       /api/advocates/{id} [get]
func (h *AdvocateHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid advocate id")
	}

	advocate, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advocate)
}
