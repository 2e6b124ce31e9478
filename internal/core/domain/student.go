package domain

import "time"

// CaseStudyAnalysis stores the structured breakdown produced for a case text.
type CaseStudyAnalysis struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	CaseTitle       string    `json:"case_title" db:"case_title"`
	CaseText        string    `json:"case_text" db:"case_text"`
	Summary         string    `json:"summary" db:"summary"`
	LegalIssues     string    `json:"legal_issues" db:"legal_issues"`
	Judgment        string    `json:"judgment" db:"judgment"`
	LegalPrinciples string    `json:"legal_principles" db:"legal_principles"`
	StudyNotes      string    `json:"study_notes" db:"study_notes"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// StudySession records one tutoring exchange on a subject.
type StudySession struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Subject   string    `json:"subject" db:"subject"`
	Topic     string    `json:"topic" db:"topic"`
	Question  string    `json:"question" db:"question"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// QuizQuestion is one multiple-choice item. CorrectIndex is a zero-based
// offset into Options.
type QuizQuestion struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// GeneratedQuiz is a stored quiz; Questions round-trips through the
// questions_json column.
type GeneratedQuiz struct {
	ID         int64          `json:"id" db:"id"`
	UserID     int64          `json:"user_id" db:"user_id"`
	Subject    string         `json:"subject" db:"subject"`
	Topic      string         `json:"topic" db:"topic"`
	Difficulty string         `json:"difficulty" db:"difficulty"`
	Questions  []QuizQuestion `json:"questions" db:"-"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

// QuizAttempt records a scored run through a generated quiz.
type QuizAttempt struct {
	ID             int64     `json:"id" db:"id"`
	QuizID         int64     `json:"quiz_id" db:"quiz_id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	Score          int       `json:"score" db:"score"`
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	AnswersJSON    string    `json:"-" db:"answers_json"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// StudyPlan is a generated multi-week schedule across subjects.
type StudyPlan struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Semester      string    `json:"semester" db:"semester"`
	Subjects      string    `json:"subjects" db:"subjects"`
	ExamDate      string    `json:"exam_date,omitempty" db:"exam_date"`
	WeakSubjects  string    `json:"weak_subjects,omitempty" db:"weak_subjects"`
	DurationWeeks int       `json:"duration_weeks" db:"duration_weeks"`
	HoursPerDay   float64   `json:"hours_per_day" db:"hours_per_day"`
	PlanText      string    `json:"plan_text" db:"plan_text"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// LegalResearch stores one research query and its compiled findings.
type LegalResearch struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	Topic        string    `json:"topic" db:"topic"`
	ResearchType string    `json:"research_type" db:"research_type"`
	Findings     string    `json:"findings" db:"findings"`
	KeyPoints    string    `json:"key_points" db:"key_points"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
