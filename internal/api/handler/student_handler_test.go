package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

type stubStudentService struct {
	analyzeFn   func(ctx context.Context, in ports.CaseStudyInput) (*ports.CaseStudyResult, error)
	tutorFn     func(ctx context.Context, in ports.TutorInput) (*ports.TutorResult, error)
	quizFn      func(ctx context.Context, in ports.QuizInput) (*ports.QuizResult, error)
	planFn      func(ctx context.Context, in ports.StudyPlanInput) (*ports.StudyPlanResult, error)
	researchFn  func(ctx context.Context, in ports.ResearchInput) (*ports.ResearchResult, error)
	attemptFn   func(ctx context.Context, in ports.QuizAttemptInput) (*domain.QuizAttempt, error)
	dashboardFn func(ctx context.Context, userID int64) (*ports.StudentDashboard, error)
}

func (s *stubStudentService) AnalyzeCaseStudy(ctx context.Context, in ports.CaseStudyInput) (*ports.CaseStudyResult, error) {
	return s.analyzeFn(ctx, in)
}

func (s *stubStudentService) Tutor(ctx context.Context, in ports.TutorInput) (*ports.TutorResult, error) {
	return s.tutorFn(ctx, in)
}

func (s *stubStudentService) GenerateQuiz(ctx context.Context, in ports.QuizInput) (*ports.QuizResult, error) {
	return s.quizFn(ctx, in)
}

func (s *stubStudentService) BuildStudyPlan(ctx context.Context, in ports.StudyPlanInput) (*ports.StudyPlanResult, error) {
	return s.planFn(ctx, in)
}

func (s *stubStudentService) Research(ctx context.Context, in ports.ResearchInput) (*ports.ResearchResult, error) {
	return s.researchFn(ctx, in)
}

func (s *stubStudentService) RecordQuizAttempt(ctx context.Context, in ports.QuizAttemptInput) (*domain.QuizAttempt, error) {
	return s.attemptFn(ctx, in)
}

func (s *stubStudentService) Dashboard(ctx context.Context, userID int64) (*ports.StudentDashboard, error) {
	return s.dashboardFn(ctx, userID)
}

func TestStudentHandler_GenerateQuiz(t *testing.T) {
	e := newTestEcho()
	stub := &stubStudentService{
		quizFn: func(ctx context.Context, in ports.QuizInput) (*ports.QuizResult, error) {
			if in.UserID != 42 || in.Subject != "Constitutional Law" || in.NumQuestions != 3 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.QuizResult{
				Quiz: &domain.GeneratedQuiz{
					ID:      9,
					Subject: in.Subject,
					Topic:   in.Topic,
					Questions: []domain.QuizQuestion{
						{Text: "Which article guarantees equality?", Options: []string{"12", "14", "19", "21"}, CorrectIndex: 1},
					},
				},
				Source: ports.ResponseSourceFallback,
			}, nil
		},
	}
	handler := NewStudentHandler(stub)

	body := strings.NewReader(`{"subject":"Constitutional Law","topic":"Fundamental Rights","num_questions":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/student/quiz", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "student")

	if err := handler.GenerateQuiz(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	quiz, ok := resp["quiz"].(map[string]any)
	if !ok {
		t.Fatalf("expected quiz in response")
	}
	questions, ok := quiz["questions"].([]any)
	if !ok || len(questions) != 1 {
		t.Fatalf("expected one question, got %+v", quiz["questions"])
	}
}

func TestStudentHandler_SubmitQuizAttempt(t *testing.T) {
	e := newTestEcho()
	stub := &stubStudentService{
		attemptFn: func(ctx context.Context, in ports.QuizAttemptInput) (*domain.QuizAttempt, error) {
			if in.QuizID != 9 || len(in.Answers) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.QuizAttempt{ID: 1, QuizID: in.QuizID, Score: 1, TotalQuestions: 2}, nil
		},
	}
	handler := NewStudentHandler(stub)

	body := strings.NewReader(`{"answers":[1,3]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/student/quiz/9/attempt", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "student")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := handler.SubmitQuizAttempt(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	attempt, ok := resp["attempt"].(map[string]any)
	if !ok || attempt["score"] != float64(1) {
		t.Fatalf("unexpected attempt payload: %+v", resp["attempt"])
	}
}

func TestStudentHandler_SubmitQuizAttempt_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewStudentHandler(&stubStudentService{})

	body := strings.NewReader(`{"answers":[0]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/student/quiz/abc/attempt", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "student")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.SubmitQuizAttempt(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("got %v, want 400", err)
	}
}

func TestStudentHandler_BuildStudyPlan(t *testing.T) {
	e := newTestEcho()

	t.Run("threads all plan fields", func(t *testing.T) {
		stub := &stubStudentService{
			planFn: func(ctx context.Context, in ports.StudyPlanInput) (*ports.StudyPlanResult, error) {
				if in.Semester != "Semester 5" || in.ExamDate != "2026-11-15" {
					t.Fatalf("unexpected input: %+v", in)
				}
				if len(in.WeakSubjects) != 1 || in.WeakSubjects[0] != "CPC" {
					t.Fatalf("weak subjects = %v", in.WeakSubjects)
				}
				return &ports.StudyPlanResult{
					Plan:   &domain.StudyPlan{ID: 4, Semester: in.Semester, PlanText: "plan"},
					Source: ports.ResponseSourceFallback,
				}, nil
			},
		}
		handler := NewStudentHandler(stub)

		body := strings.NewReader(`{"semester":"Semester 5","subjects":["Evidence","CPC"],"exam_date":"2026-11-15","weak_subjects":["CPC"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/student/study-plan", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := authContext(e, req, rec, 42, "student")

		if err := handler.BuildStudyPlan(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("rejects missing semester", func(t *testing.T) {
		handler := NewStudentHandler(&stubStudentService{
			planFn: func(ctx context.Context, in ports.StudyPlanInput) (*ports.StudyPlanResult, error) {
				t.Fatalf("should not be called")
				return nil, nil
			},
		})

		body := strings.NewReader(`{"subjects":["Evidence"]}`)
		req := httptest.NewRequest(http.MethodPost, "/api/student/study-plan", body)
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := authContext(e, req, rec, 42, "student")

		err := handler.BuildStudyPlan(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("got %v, want 400", err)
		}
	})
}

func TestStudentHandler_Dashboard(t *testing.T) {
	e := newTestEcho()
	stub := &stubStudentService{
		dashboardFn: func(ctx context.Context, userID int64) (*ports.StudentDashboard, error) {
			if userID != 42 {
				t.Fatalf("unexpected user id: %d", userID)
			}
			return &ports.StudentDashboard{QuizzesGenerated: 3, AverageScore: 75}, nil
		},
	}
	handler := NewStudentHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/student/dashboard", nil)
	rec := httptest.NewRecorder()
	c := authContext(e, req, rec, 42, "student")

	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	dash, ok := resp["dashboard"].(map[string]any)
	if !ok || dash["quizzes_generated"] != float64(3) {
		t.Fatalf("unexpected dashboard payload: %+v", resp["dashboard"])
	}
}
