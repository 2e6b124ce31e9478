package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/api/handler"
	"github.com/legalease/legalease-api/internal/api/middleware"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
	"github.com/legalease/legalease-api/internal/core/service"
	"github.com/legalease/legalease-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *sqlite.Store, assistant ports.Assistant, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("legalease"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(store)
	advocateRepo := sqlite.NewAdvocateRepository(store)
	chatRepo := sqlite.NewChatRepository(store)
	appointmentRepo := sqlite.NewAppointmentRepository(store)
	studentRepo := sqlite.NewStudentRepository(store)
	contentRepo := sqlite.NewContentRepository(store)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	chatService := service.NewChatService(chatRepo, advocateRepo, assistant, log)
	advocateService := service.NewAdvocateService(advocateRepo, log)
	appointmentService := service.NewAppointmentService(appointmentRepo, advocateRepo, log)
	studentService := service.NewStudentService(studentRepo, assistant, log)

	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	advocateHandler := handler.NewAdvocateHandler(advocateService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	studentHandler := handler.NewStudentHandler(studentService)
	contentHandler := handler.NewContentHandler(contentRepo)

	auth := middleware.Auth(jwtSecret)
	authOptional := middleware.AuthOptional(jwtSecret)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Public content ---
	e.GET("/api/languages", contentHandler.Languages)
	e.GET("/api/resources", contentHandler.Resources)
	e.GET("/api/templates", contentHandler.Templates)
	e.GET("/api/sample-questions", contentHandler.SampleQuestions)

	// --- Chat ---
	e.POST("/api/chat", chatHandler.Chat, authOptional)
	e.GET("/api/chat/history/:token", chatHandler.History, auth)

	// --- Advocate directory ---
	e.GET("/api/advocates", advocateHandler.List, auth)
	e.GET("/api/advocates/recommend", advocateHandler.Recommend, auth)
	e.GET("/api/advocates/:id", advocateHandler.Get, auth)

	// --- Appointments ---
	e.POST("/api/appointments", appointmentHandler.Book, auth, middleware.RBAC(domain.RoleClient))
	e.GET("/api/appointments", appointmentHandler.List, auth)
	e.GET("/api/appointments/:reference", appointmentHandler.Get, auth)
	e.POST("/api/appointments/:reference/cancel", appointmentHandler.Cancel, auth)

	// --- Student tools ---
	student := e.Group("/api/student", auth, middleware.RBAC(domain.RoleStudent, domain.RoleAdmin))
	student.POST("/case-study", studentHandler.AnalyzeCaseStudy)
	student.POST("/tutor", studentHandler.Tutor)
	student.POST("/quiz", studentHandler.GenerateQuiz)
	student.POST("/quiz/:id/attempt", studentHandler.SubmitQuizAttempt)
	student.POST("/study-plan", studentHandler.BuildStudyPlan)
	student.POST("/research", studentHandler.Research)
	student.GET("/dashboard", studentHandler.Dashboard)
	e.GET("/api/study-materials", contentHandler.StudyMaterials, auth, middleware.RBAC(domain.RoleStudent, domain.RoleAdmin))

	// --- Admin ---
	e.GET("/api/settings", contentHandler.Settings, auth, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
