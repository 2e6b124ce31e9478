package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalease/legalease-api/internal/ai"
	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

const (
	minCaseTextLen       = 100
	defaultQuizQuestions = 5
	maxQuizQuestions     = 20
	fallbackQuizSize     = 3
	defaultPlanWeeks     = 4
	defaultStudyHours    = 4
)

// StudentService implements the study tools. Every tool tries the assistant
// first and falls back to a deterministic stub so the endpoints keep working
// without AI.
type StudentService struct {
	repo      ports.StudentRepository
	assistant ports.Assistant
	logger    zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, assistant ports.Assistant, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, assistant: assistant, logger: logger}
}

func (s *StudentService) AnalyzeCaseStudy(ctx context.Context, in ports.CaseStudyInput) (*ports.CaseStudyResult, error) {
	caseText := strings.TrimSpace(in.CaseText)
	if len(caseText) < minCaseTextLen {
		return nil, domain.ErrInvalidInput
	}

	start := time.Now()
	analysis := &domain.CaseStudyAnalysis{
		UserID:    in.UserID,
		CaseTitle: in.CaseTitle,
		CaseText:  caseText,
		CreatedAt: time.Now().UTC(),
	}

	source := ports.ResponseSourceAI
	text, err := s.assistant.Generate(ctx, ai.CaseStudyPrompt(in.CaseTitle, caseText), "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("case study analysis falling back")
		source = ports.ResponseSourceFallback
		analysis.Summary = "AI analysis temporarily unavailable. Please use manual analysis methods."
		analysis.LegalIssues = "Identify main legal questions raised in the case."
		analysis.Judgment = "Analyze the court's decision and reasoning."
		analysis.LegalPrinciples = "Research relevant statutes and legal provisions."
		analysis.StudyNotes = "Focus on legal principles and precedent value."
	} else {
		analysis.Summary = ai.ExtractSection(text, "Case Summary")
		analysis.LegalIssues = ai.ExtractSection(text, "Legal Issues")
		analysis.Judgment = ai.ExtractSection(text, "Judgment")
		analysis.LegalPrinciples = ai.ExtractSection(text, "Legal Principles")
		analysis.StudyNotes = ai.ExtractSection(text, "Student Learning Points")
		if analysis.Summary == "" {
			analysis.Summary = text
		}
	}

	saved, err := s.repo.SaveCaseStudy(ctx, analysis)
	if err != nil {
		return nil, err
	}
	return &ports.CaseStudyResult{
		Analysis:       saved,
		Source:         source,
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

func (s *StudentService) Tutor(ctx context.Context, in ports.TutorInput) (*ports.TutorResult, error) {
	if in.Subject == "" || in.Topic == "" {
		return nil, domain.ErrInvalidInput
	}

	start := time.Now()
	source := ports.ResponseSourceAI
	response, err := s.assistant.Generate(ctx, ai.TutorPrompt(in.Subject, in.Topic, in.Question), "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("tutoring falling back")
		source = ports.ResponseSourceFallback
		suffix := ""
		if in.Question != "" {
			suffix = fmt.Sprintf(" for question: %s", in.Question)
		}
		response = fmt.Sprintf("Study Guide for %s - %s%s\n\nPlease refer to your textbooks and class notes for detailed explanation of this topic. Consider consulting legal databases and academic resources for comprehensive understanding.",
			in.Subject, in.Topic, suffix)
	}

	saved, err := s.repo.SaveStudySession(ctx, &domain.StudySession{
		UserID:    in.UserID,
		Subject:   in.Subject,
		Topic:     in.Topic,
		Question:  in.Question,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &ports.TutorResult{
		Session:        saved,
		Source:         source,
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

func (s *StudentService) GenerateQuiz(ctx context.Context, in ports.QuizInput) (*ports.QuizResult, error) {
	if in.Subject == "" || in.Topic == "" {
		return nil, domain.ErrInvalidInput
	}
	n := in.NumQuestions
	if n <= 0 {
		n = defaultQuizQuestions
	}
	if n > maxQuizQuestions {
		n = maxQuizQuestions
	}
	difficulty := in.Difficulty
	if difficulty == "" {
		difficulty = "intermediate"
	}

	start := time.Now()
	source := ports.ResponseSourceAI
	var questions []domain.QuizQuestion
	text, err := s.assistant.Generate(ctx, ai.QuizPrompt(in.Subject, in.Topic, n, difficulty), "")
	if err == nil {
		questions = ai.ParseQuizQuestions(text, n)
	}
	if err != nil || len(questions) == 0 {
		s.logger.Warn().Err(err).Msg("quiz generation falling back")
		source = ports.ResponseSourceFallback
		questions = fallbackQuiz(in.Topic, n)
	}

	saved, err := s.repo.SaveQuiz(ctx, &domain.GeneratedQuiz{
		UserID:     in.UserID,
		Subject:    in.Subject,
		Topic:      in.Topic,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &ports.QuizResult{
		Quiz:           saved,
		Source:         source,
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

func (s *StudentService) BuildStudyPlan(ctx context.Context, in ports.StudyPlanInput) (*ports.StudyPlanResult, error) {
	if strings.TrimSpace(in.Semester) == "" || len(in.Subjects) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.DurationWeeks <= 0 {
		in.DurationWeeks = defaultPlanWeeks
	}
	if in.HoursPerDay <= 0 {
		in.HoursPerDay = defaultStudyHours
	}

	start := time.Now()
	source := ports.ResponseSourceAI
	planText, err := s.assistant.Generate(ctx, ai.StudyPlanPrompt(in.Semester, in.Subjects, in.ExamDate, in.DurationWeeks, in.HoursPerDay, in.WeakSubjects), "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("study plan falling back")
		source = ports.ResponseSourceFallback
		planText = fallbackStudyPlan(in.Semester, in.Subjects, in.DurationWeeks, in.HoursPerDay)
	}

	saved, err := s.repo.SaveStudyPlan(ctx, &domain.StudyPlan{
		UserID:        in.UserID,
		Semester:      in.Semester,
		Subjects:      strings.Join(in.Subjects, ", "),
		ExamDate:      in.ExamDate,
		WeakSubjects:  strings.Join(in.WeakSubjects, ", "),
		DurationWeeks: in.DurationWeeks,
		HoursPerDay:   in.HoursPerDay,
		PlanText:      planText,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &ports.StudyPlanResult{
		Plan:           saved,
		Source:         source,
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

func (s *StudentService) Research(ctx context.Context, in ports.ResearchInput) (*ports.ResearchResult, error) {
	topic := strings.TrimSpace(in.Topic)
	if topic == "" {
		return nil, domain.ErrInvalidInput
	}
	researchType := in.ResearchType
	if researchType == "" {
		researchType = "general"
	}

	start := time.Now()
	source := ports.ResponseSourceAI
	var findings, keyPoints string
	text, err := s.assistant.Generate(ctx, ai.ResearchPrompt(topic, researchType), "")
	if err != nil {
		s.logger.Warn().Err(err).Msg("legal research falling back")
		source = ports.ResponseSourceFallback
		findings = fallbackResearch(topic, researchType)
		keyPoints = "Search legal databases for applicable statutes\nUse case law databases to find relevant precedents\nReview legal textbooks for fundamental principles"
	} else {
		findings = text
		keyPoints = strings.Join(ai.ExtractBulletPoints(text), "\n")
	}

	saved, err := s.repo.SaveResearch(ctx, &domain.LegalResearch{
		UserID:       in.UserID,
		Topic:        topic,
		ResearchType: researchType,
		Findings:     findings,
		KeyPoints:    keyPoints,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &ports.ResearchResult{
		Research:       saved,
		Source:         source,
		ProcessingTime: time.Since(start).Seconds(),
	}, nil
}

func (s *StudentService) RecordQuizAttempt(ctx context.Context, in ports.QuizAttemptInput) (*domain.QuizAttempt, error) {
	quiz, err := s.repo.FindQuiz(ctx, in.QuizID, in.UserID)
	if err != nil {
		return nil, err
	}

	score := 0
	for i, answer := range in.Answers {
		if i >= len(quiz.Questions) {
			break
		}
		if answer == quiz.Questions[i].CorrectIndex {
			score++
		}
	}

	answersJSON, err := json.Marshal(in.Answers)
	if err != nil {
		return nil, err
	}

	return s.repo.SaveQuizAttempt(ctx, &domain.QuizAttempt{
		QuizID:         quiz.ID,
		UserID:         in.UserID,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		AnswersJSON:    string(answersJSON),
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *StudentService) Dashboard(ctx context.Context, userID int64) (*ports.StudentDashboard, error) {
	return s.repo.Dashboard(ctx, userID)
}

func fallbackQuiz(topic string, n int) []domain.QuizQuestion {
	if n > fallbackQuizSize {
		n = fallbackQuizSize
	}
	questions := make([]domain.QuizQuestion, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, domain.QuizQuestion{
			Text:         fmt.Sprintf("Sample question %d for %s", i+1, topic),
			Options:      []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectIndex: 0,
			Explanation:  "Please create custom questions based on your study material.",
		})
	}
	return questions
}

func fallbackStudyPlan(semester string, subjects []string, weeks int, hoursPerDay float64) string {
	perSubject := hoursPerDay / float64(len(subjects))
	return fmt.Sprintf("Basic Study Plan for %s over %d weeks\n\nAllocate %.1f hours daily among %d subjects (%s), approximately %.1f hours per subject. Distribute subjects evenly across the week and dedicate weekends to revision and practice tests. Use active reading, note-taking, and case analysis methods.",
		semester, weeks, hoursPerDay, len(subjects), strings.Join(subjects, ", "), perSubject)
}

func fallbackResearch(topic, researchType string) string {
	focus := map[string]string{
		"case_law":    "Focus on landmark cases and judicial precedents",
		"statute":     "Focus on relevant acts, sections, and regulations",
		"academic":    "Focus on scholarly articles and academic papers",
		"comparative": "Focus on comparative legal analysis",
		"general":     "Focus on comprehensive legal research",
	}
	f, ok := focus[researchType]
	if !ok {
		f = focus["general"]
	}
	return fmt.Sprintf("Research Guide for: %s\n\n%s. Consult legal databases, textbooks, and academic journals for comprehensive research on this topic.", topic, f)
}
