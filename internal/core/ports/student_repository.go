package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// StudentDashboard aggregates a student's activity counters.
type StudentDashboard struct {
	CaseStudiesAnalyzed int                   `json:"case_studies_analyzed"`
	StudySessions       int                   `json:"study_sessions"`
	QuizzesGenerated    int                   `json:"quizzes_generated"`
	QuizAttempts        int                   `json:"quiz_attempts"`
	AverageScore        float64               `json:"average_score"`
	StudyPlans          int                   `json:"study_plans"`
	ResearchQueries     int                   `json:"research_queries"`
	RecentActivity      []*domain.ActivityLog `json:"recent_activity"`
}

// StudentRepository persists student tool artifacts. Every Save method also
// writes an activity log entry in the same transaction.
type StudentRepository interface {
	SaveCaseStudy(ctx context.Context, a *domain.CaseStudyAnalysis) (*domain.CaseStudyAnalysis, error)
	SaveStudySession(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error)
	SaveQuiz(ctx context.Context, q *domain.GeneratedQuiz) (*domain.GeneratedQuiz, error)
	FindQuiz(ctx context.Context, id, userID int64) (*domain.GeneratedQuiz, error)
	SaveQuizAttempt(ctx context.Context, a *domain.QuizAttempt) (*domain.QuizAttempt, error)
	SaveStudyPlan(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error)
	SaveResearch(ctx context.Context, r *domain.LegalResearch) (*domain.LegalResearch, error)
	Dashboard(ctx context.Context, userID int64) (*StudentDashboard, error)
}
