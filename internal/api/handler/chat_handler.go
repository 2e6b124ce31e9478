package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/api/metrics"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// ChatHandler handles HTTP requests for the legal chat.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	Message      string `json:"message" validate:"required"`
	Language     string `json:"language"`
	SessionToken string `json:"session_token"`
}

// chatResponse carries the same shape whether the answer came from the
// assistant or from curated guidance; the backend is never exposed.
type chatResponse struct {
	Success         bool              `json:"success"`
	Response        string            `json:"response"`
	SessionToken    string            `json:"session_token"`
	LegalCategories []string          `json:"legal_categories"`
	Advocates       []domain.Advocate `json:"recommended_advocates"`
	Specialization  string            `json:"specialization,omitempty"`
	ProcessingTime  float64           `json:"processing_time"`
}

type historyResponse struct {
	Success  bool                  `json:"success"`
	Messages []*domain.ChatMessage `json:"messages"`
}

// Chat answers a legal question, falling back to curated guidance when the
// generative backend is unavailable. Works without a token; exchanges are
// only stored for authenticated callers.
//
// @Summary      Ask a legal question
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Question and optional session token"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Chat(c echo.Context) error {
	userID, _ := c.Get("user_id").(int64)

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Chat(c.Request().Context(), ports.ChatInput{
		UserID:       userID,
		Message:      req.Message,
		Language:     req.Language,
		SessionToken: req.SessionToken,
	})
	if err != nil {
		return err
	}

	language := req.Language
	if language == "" {
		language = "en"
	}
	metrics.ChatRequestsTotal.WithLabelValues(result.Source, language).Inc()
	metrics.ChatResponseDuration.WithLabelValues(result.Source).Observe(result.ProcessingTime)
	if result.Source == ports.ResponseSourceFallback {
		metrics.AssistantErrorsTotal.Inc()
	}
	if len(result.Advocates) > 0 {
		metrics.RecommendationsTotal.WithLabelValues(result.Specialization).Inc()
	}

	return c.JSON(http.StatusOK, chatResponse{
		Success:         true,
		Response:        result.Response,
		SessionToken:    result.SessionToken,
		LegalCategories: result.LegalCategories,
		Advocates:       result.Advocates,
		Specialization:  result.Specialization,
		ProcessingTime:  result.ProcessingTime,
	})
}

// History returns the messages of one of the caller's sessions.
//
// @Summary      Get chat history
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        token  path      string  true   "Session token"
// @Param        limit  query     int     false  "Maximum messages to return"
// @Success      200    {object}  historyResponse
// @Failure      401    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/chat/history/{token} [get]
func (h *ChatHandler) History(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	messages, err := h.service.History(c.Request().Context(), userID, c.Param("token"), limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, historyResponse{Success: true, Messages: messages})
}
