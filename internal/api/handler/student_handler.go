package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/api/metrics"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for the law student tools.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type caseStudyRequest struct {
	CaseTitle string `json:"case_title"`
	CaseText  string `json:"case_text" validate:"required"`
}

type caseStudyResponse struct {
	Success        bool                      `json:"success"`
	Analysis       *domain.CaseStudyAnalysis `json:"analysis"`
	Source         string                    `json:"source"`
	ProcessingTime float64                   `json:"processing_time"`
}

type tutorRequest struct {
	Subject  string `json:"subject" validate:"required"`
	Topic    string `json:"topic" validate:"required"`
	Question string `json:"question"`
}

type tutorResponse struct {
	Success        bool                 `json:"success"`
	Session        *domain.StudySession `json:"session"`
	Source         string               `json:"source"`
	ProcessingTime float64              `json:"processing_time"`
}

type quizRequest struct {
	Subject      string `json:"subject" validate:"required"`
	Topic        string `json:"topic" validate:"required"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"num_questions"`
}

type quizResponse struct {
	Success        bool                  `json:"success"`
	Quiz           *domain.GeneratedQuiz `json:"quiz"`
	Source         string                `json:"source"`
	ProcessingTime float64               `json:"processing_time"`
}

type studyPlanRequest struct {
	Semester      string   `json:"semester" validate:"required"`
	Subjects      []string `json:"subjects" validate:"required,min=1"`
	ExamDate      string   `json:"exam_date"`
	WeakSubjects  []string `json:"weak_subjects"`
	DurationWeeks int      `json:"duration_weeks"`
	HoursPerDay   float64  `json:"hours_per_day"`
}

type studyPlanResponse struct {
	Success        bool              `json:"success"`
	Plan           *domain.StudyPlan `json:"plan"`
	Source         string            `json:"source"`
	ProcessingTime float64           `json:"processing_time"`
}

type researchRequest struct {
	Topic        string `json:"topic" validate:"required"`
	ResearchType string `json:"research_type"`
}

type researchResponse struct {
	Success        bool                  `json:"success"`
	Research       *domain.LegalResearch `json:"research"`
	Source         string                `json:"source"`
	ProcessingTime float64               `json:"processing_time"`
}

type quizAttemptRequest struct {
	Answers []int `json:"answers" validate:"required"`
}

type quizAttemptResponse struct {
	Success bool                `json:"success"`
	Attempt *domain.QuizAttempt `json:"attempt"`
}

type dashboardResponse struct {
	Success   bool                    `json:"success"`
	Dashboard *ports.StudentDashboard `json:"dashboard"`
}

// AnalyzeCaseStudy produces a structured breakdown of a case text.
//
// @Summary      Analyze a case study
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      caseStudyRequest  true  "Case title and full text"
// @Success      200   {object}  caseStudyResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student/case-study [post]
func (h *StudentHandler) AnalyzeCaseStudy(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req caseStudyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.AnalyzeCaseStudy(c.Request().Context(), ports.CaseStudyInput{
		UserID:    userID,
		CaseTitle: req.CaseTitle,
		CaseText:  req.CaseText,
	})
	if err != nil {
		return err
	}
	metrics.StudentToolRequestsTotal.WithLabelValues("case_study", result.Source).Inc()

	return c.JSON(http.StatusOK, caseStudyResponse{
		Success:        true,
		Analysis:       result.Analysis,
		Source:         result.Source,
		ProcessingTime: result.ProcessingTime,
	})
}

// Tutor answers a study question on a subject and topic.
//
// @Summary      Ask the tutor
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      tutorRequest  true  "Subject, topic and optional question"
// @Success      200   {object}  tutorResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student/tutor [post]
func (h *StudentHandler) Tutor(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req tutorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Tutor(c.Request().Context(), ports.TutorInput{
		UserID:   userID,
		Subject:  req.Subject,
		Topic:    req.Topic,
		Question: req.Question,
	})
	if err != nil {
		return err
	}
	metrics.StudentToolRequestsTotal.WithLabelValues("tutor", result.Source).Inc()

	return c.JSON(http.StatusOK, tutorResponse{
		Success:        true,
		Session:        result.Session,
		Source:         result.Source,
		ProcessingTime: result.ProcessingTime,
	})
}

// GenerateQuiz builds a multiple-choice quiz on a topic.
//
// @Summary      Generate a practice quiz
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      quizRequest  true  "Quiz parameters"
// @Success      200   {object}  quizResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student/quiz [post]
func (h *StudentHandler) GenerateQuiz(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req quizRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.GenerateQuiz(c.Request().Context(), ports.QuizInput{
		UserID:       userID,
		Subject:      req.Subject,
		Topic:        req.Topic,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		return err
	}
	metrics.StudentToolRequestsTotal.WithLabelValues("quiz", result.Source).Inc()

	return c.JSON(http.StatusOK, quizResponse{
		Success:        true,
		Quiz:           result.Quiz,
		Source:         result.Source,
		ProcessingTime: result.ProcessingTime,
	})
}

// SubmitQuizAttempt scores an answer sheet against a generated quiz.
//
// @Summary      Submit quiz answers
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Quiz id"
// @Param        body  body      quizAttemptRequest  true  "Chosen option index per question"
// @Success      200   {object}  quizAttemptResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/student/quiz/{id}/attempt [post]
func (h *StudentHandler) SubmitQuizAttempt(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	quizID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid quiz id")
	}

	var req quizAttemptRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	attempt, err := h.service.RecordQuizAttempt(c.Request().Context(), ports.QuizAttemptInput{
		UserID:  userID,
		QuizID:  quizID,
		Answers: req.Answers,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, quizAttemptResponse{Success: true, Attempt: attempt})
}

// BuildStudyPlan generates a week-by-week study schedule.
//
// @Summary      Build a study plan
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      studyPlanRequest  true  "Subjects and time budget"
// @Success      200   {object}  studyPlanResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student/study-plan [post]
func (h *StudentHandler) BuildStudyPlan(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req studyPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.BuildStudyPlan(c.Request().Context(), ports.StudyPlanInput{
		UserID:        userID,
		Semester:      req.Semester,
		Subjects:      req.Subjects,
		ExamDate:      req.ExamDate,
		WeakSubjects:  req.WeakSubjects,
		DurationWeeks: req.DurationWeeks,
		HoursPerDay:   req.HoursPerDay,
	})
	if err != nil {
		return err
	}
	metrics.StudentToolRequestsTotal.WithLabelValues("study_plan", result.Source).Inc()

	return c.JSON(http.StatusOK, studyPlanResponse{
		Success:        true,
		Plan:           result.Plan,
		Source:         result.Source,
		ProcessingTime: result.ProcessingTime,
	})
}

// Research compiles findings on a legal topic.
//
// @Summary      Run legal research
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      researchRequest  true  "Topic and research type"
// @Success      200   {object}  researchResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/student/research [post]
func (h *StudentHandler) Research(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req researchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Research(c.Request().Context(), ports.ResearchInput{
		UserID:       userID,
		Topic:        req.Topic,
		ResearchType: req.ResearchType,
	})
	if err != nil {
		return err
	}
	metrics.StudentToolRequestsTotal.WithLabelValues("research", result.Source).Inc()

	return c.JSON(http.StatusOK, researchResponse{
		Success:        true,
		Research:       result.Research,
		Source:         result.Source,
		ProcessingTime: result.ProcessingTime,
	})
}

// Dashboard returns the caller's study activity counters.
//
// @Summary      Student dashboard
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/student/dashboard [get]
func (h *StudentHandler) Dashboard(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	dash, err := h.service.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{Success: true, Dashboard: dash})
}
