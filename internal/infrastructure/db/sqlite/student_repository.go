package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
)

// StudentRepository is the SQLite implementation of ports.StudentRepository.
type StudentRepository struct {
	store *Store
}

func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// saveWithActivity runs the insert and the activity log write in one
// transaction, returning the inserted row id.
func (r *StudentRepository) saveWithActivity(ctx context.Context, userID int64, activityType, description string, insert func(tx *sqlx.Tx) (int64, error)) (int64, error) {
	var id int64
	err := r.store.withTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		if id, err = insert(tx); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO user_activity (user_id, activity_type, activity_description, created_at)
			 VALUES (?, ?, ?, ?)`,
			userID, activityType, description, time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}
		return nil
	})
	return id, err
}

func (r *StudentRepository) SaveCaseStudy(ctx context.Context, a *domain.CaseStudyAnalysis) (*domain.CaseStudyAnalysis, error) {
	a.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, a.UserID, "case_study", "Analyzed a case study", func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO case_study_analysis (user_id, case_title, case_text, summary, legal_issues,
			 judgment, legal_principles, study_notes, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.UserID, a.CaseTitle, a.CaseText, a.Summary, a.LegalIssues,
			a.Judgment, a.LegalPrinciples, a.StudyNotes, a.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert case study: %w", err)
		}
		return res.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	a.ID = id
	return a, nil
}

func (r *StudentRepository) SaveStudySession(ctx context.Context, s *domain.StudySession) (*domain.StudySession, error) {
	s.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, s.UserID, "tutoring", "Completed a tutoring session", func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO study_sessions (user_id, subject, topic, question, response, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			s.UserID, s.Subject, s.Topic, s.Question, s.Response, s.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert study session: %w", err)
		}
		return res.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	s.ID = id
	return s, nil
}

func (r *StudentRepository) SaveQuiz(ctx context.Context, q *domain.GeneratedQuiz) (*domain.GeneratedQuiz, error) {
	questions, err := json.Marshal(q.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal questions: %w", err)
	}
	q.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, q.UserID, "quiz", "Generated a practice quiz", func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO generated_quizzes (user_id, subject, topic, difficulty, questions_json, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			q.UserID, q.Subject, q.Topic, q.Difficulty, string(questions), q.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert quiz: %w", err)
		}
		return res.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	q.ID = id
	return q, nil
}

func (r *StudentRepository) FindQuiz(ctx context.Context, id, userID int64) (*domain.GeneratedQuiz, error) {
	var row struct {
		domain.GeneratedQuiz
		QuestionsJSON string `db:"questions_json"`
	}
	err := r.store.db.GetContext(ctx, &row,
		`SELECT id, user_id, subject, topic, difficulty, questions_json, created_at
		 FROM generated_quizzes WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("find quiz: %w", err)
	}
	quiz := row.GeneratedQuiz
	if err := json.Unmarshal([]byte(row.QuestionsJSON), &quiz.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions: %w", err)
	}
	return &quiz, nil
}

func (r *StudentRepository) SaveQuizAttempt(ctx context.Context, a *domain.QuizAttempt) (*domain.QuizAttempt, error) {
	a.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, a.UserID, "quiz_attempt", "Attempted a quiz", func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO quiz_attempts (quiz_id, user_id, score, total_questions, answers_json, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			a.QuizID, a.UserID, a.Score, a.TotalQuestions, a.AnswersJSON, a.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert attempt: %w", err)
		}
		return res.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	a.ID = id
	return a, nil
}

func (r *StudentRepository) SaveStudyPlan(ctx context.Context, p *domain.StudyPlan) (*domain.StudyPlan, error) {
	p.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, p.UserID, "study_plan", "Created a study plan", func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO study_plans (user_id, semester, subjects, exam_date, weak_subjects, duration_weeks, hours_per_day, plan_text, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.UserID, p.Semester, p.Subjects, p.ExamDate, p.WeakSubjects, p.DurationWeeks, p.HoursPerDay, p.PlanText, p.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert study plan: %w", err)
		}
		return res.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

func (r *StudentRepository) SaveResearch(ctx context.Context, res *domain.LegalResearch) (*domain.LegalResearch, error) {
	res.CreatedAt = time.Now().UTC()
	id, err := r.saveWithActivity(ctx, res.UserID, "research", "Ran a legal research query", func(tx *sqlx.Tx) (int64, error) {
		row, err := tx.ExecContext(ctx,
			`INSERT INTO legal_research (user_id, topic, research_type, findings, key_points, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			res.UserID, res.Topic, res.ResearchType, res.Findings, res.KeyPoints, res.CreatedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("insert research: %w", err)
		}
		return row.LastInsertId()
	})
	if err != nil {
		return nil, err
	}
	res.ID = id
	return res, nil
}

func (r *StudentRepository) Dashboard(ctx context.Context, userID int64) (*ports.StudentDashboard, error) {
	dash := &ports.StudentDashboard{}
	counts := []struct {
		query string
		dst   *int
	}{
		{`SELECT COUNT(*) FROM case_study_analysis WHERE user_id = ?`, &dash.CaseStudiesAnalyzed},
		{`SELECT COUNT(*) FROM study_sessions WHERE user_id = ?`, &dash.StudySessions},
		{`SELECT COUNT(*) FROM generated_quizzes WHERE user_id = ?`, &dash.QuizzesGenerated},
		{`SELECT COUNT(*) FROM quiz_attempts WHERE user_id = ?`, &dash.QuizAttempts},
		{`SELECT COUNT(*) FROM study_plans WHERE user_id = ?`, &dash.StudyPlans},
		{`SELECT COUNT(*) FROM legal_research WHERE user_id = ?`, &dash.ResearchQueries},
	}
	for _, c := range counts {
		if err := r.store.db.GetContext(ctx, c.dst, c.query, userID); err != nil {
			return nil, fmt.Errorf("dashboard count: %w", err)
		}
	}

	err := r.store.db.GetContext(ctx, &dash.AverageScore,
		`SELECT COALESCE(AVG(CAST(score AS REAL) * 100.0 / total_questions), 0)
		 FROM quiz_attempts WHERE user_id = ? AND total_questions > 0`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard average: %w", err)
	}

	dash.RecentActivity = []*domain.ActivityLog{}
	err = r.store.db.SelectContext(ctx, &dash.RecentActivity,
		`SELECT id, user_id, activity_type, activity_description, created_at
		 FROM user_activity WHERE user_id = ? ORDER BY id DESC LIMIT 10`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard activity: %w", err)
	}
	return dash, nil
}
