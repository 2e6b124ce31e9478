package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// CaseStudyInput carries a case text for structured analysis.
type CaseStudyInput struct {
	UserID    int64
	CaseTitle string
	CaseText  string
}

// CaseStudyResult wraps the stored analysis with response metadata.
type CaseStudyResult struct {
	Analysis       *domain.CaseStudyAnalysis
	Source         string
	ProcessingTime float64
}

// TutorInput is one tutoring question on a subject.
type TutorInput struct {
	UserID   int64
	Subject  string
	Topic    string
	Question string
}

type TutorResult struct {
	Session        *domain.StudySession
	Source         string
	ProcessingTime float64
}

// QuizInput requests a generated quiz.
type QuizInput struct {
	UserID       int64
	Subject      string
	Topic        string
	Difficulty   string
	NumQuestions int
}

type QuizResult struct {
	Quiz           *domain.GeneratedQuiz
	Source         string
	ProcessingTime float64
}

// StudyPlanInput requests a schedule across subjects for one semester.
type StudyPlanInput struct {
	UserID        int64
	Semester      string
	Subjects      []string
	ExamDate      string
	WeakSubjects  []string
	DurationWeeks int
	HoursPerDay   float64
}

type StudyPlanResult struct {
	Plan           *domain.StudyPlan
	Source         string
	ProcessingTime float64
}

// ResearchInput requests compiled research on a topic.
type ResearchInput struct {
	UserID       int64
	Topic        string
	ResearchType string
}

type ResearchResult struct {
	Research       *domain.LegalResearch
	Source         string
	ProcessingTime float64
}

// QuizAttemptInput records answers to a generated quiz. Answers holds the
// zero-based chosen option per question, in question order.
type QuizAttemptInput struct {
	UserID  int64
	QuizID  int64
	Answers []int
}

// StudentService exposes the study tools for law students.
type StudentService interface {
	AnalyzeCaseStudy(ctx context.Context, in CaseStudyInput) (*CaseStudyResult, error)
	Tutor(ctx context.Context, in TutorInput) (*TutorResult, error)
	GenerateQuiz(ctx context.Context, in QuizInput) (*QuizResult, error)
	BuildStudyPlan(ctx context.Context, in StudyPlanInput) (*StudyPlanResult, error)
	Research(ctx context.Context, in ResearchInput) (*ResearchResult, error)
	RecordQuizAttempt(ctx context.Context, in QuizAttemptInput) (*domain.QuizAttempt, error)
	Dashboard(ctx context.Context, userID int64) (*StudentDashboard, error)
}
