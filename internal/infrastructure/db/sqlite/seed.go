package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// seed loads the default content rows. Every insert is OR IGNORE keyed on a
// unique column, so reopening an existing database is a no-op.
func seed(db *sqlx.DB) error {
	for _, fn := range []func(*sqlx.DB) error{
		seedSettings,
		seedResources,
		seedTemplates,
		seedStudyMaterials,
		seedSampleQuestions,
		seedAdvocates,
	} {
		if err := fn(db); err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(db *sqlx.DB) error {
	settings := [][3]string{
		{"app_name", "LegalEase", "Application name"},
		{"app_version", "2.0.0", "Application version"},
		{"maintenance_mode", "false", "Maintenance mode status"},
		{"max_chat_sessions", "10", "Maximum chat sessions per user"},
		{"supported_languages", `["en", "hi", "ta", "te", "bn", "mr", "gu", "pa", "kn", "ml", "or", "as"]`, "Supported languages"},
		{"default_language", "en", "Default application language"},
		{"ai_model", "gemini-1.5-flash", "Default AI model"},
		{"enable_student_features", "true", "Enable student-specific features"},
		{"max_quiz_questions", "20", "Maximum questions per quiz"},
	}
	for _, s := range settings {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO system_settings (setting_key, setting_value, description) VALUES (?, ?, ?)`,
			s[0], s[1], s[2],
		); err != nil {
			return fmt.Errorf("seed setting %s: %w", s[0], err)
		}
	}
	return nil
}

func seedResources(db *sqlx.DB) error {
	_, err := db.Exec(
		`INSERT OR IGNORE INTO legal_resources (title, category, content, language) VALUES (?, ?, ?, ?)`,
		"Indian Constitution - Fundamental Rights", "Constitutional Law", fundamentalRightsArticle, "en",
	)
	if err != nil {
		return fmt.Errorf("seed resources: %w", err)
	}
	return nil
}

func seedTemplates(db *sqlx.DB) error {
	templates := []struct {
		name, category, description, body string
	}{
		{
			name:        "Consumer Complaint Format",
			category:    "Consumer Law",
			description: "Standard format for filing consumer complaints",
			body:        consumerComplaintTemplate,
		},
		{
			name:        "Rent Agreement Format",
			category:    "Property Law",
			description: "Standard rental agreement format",
			body:        rentAgreementTemplate,
		},
	}
	for _, t := range templates {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO legal_templates (name, category, description, template_body, language) VALUES (?, ?, ?, ?, 'en')`,
			t.name, t.category, t.description, t.body,
		); err != nil {
			return fmt.Errorf("seed template %s: %w", t.name, err)
		}
	}
	return nil
}

func seedStudyMaterials(db *sqlx.DB) error {
	materials := []struct {
		title, subject, difficulty, content string
	}{
		{"Introduction to Indian Constitution", "Constitutional Law", "beginner", constitutionNotes},
		{"Contract Law Fundamentals", "Contract Law", "intermediate", contractLawNotes},
		{"Criminal Law - IPC Overview", "Criminal Law", "intermediate", criminalLawNotes},
	}
	for _, m := range materials {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO study_materials (title, subject, content_type, content, difficulty) VALUES (?, ?, 'notes', ?, ?)`,
			m.title, m.subject, m.content, m.difficulty,
		); err != nil {
			return fmt.Errorf("seed study material %s: %w", m.title, err)
		}
	}
	return nil
}

func seedSampleQuestions(db *sqlx.DB) error {
	for _, q := range sampleQuestions {
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO sample_questions (question, answer, category, language) VALUES (?, ?, ?, 'en')`,
			q.question, q.answer, q.category,
		); err != nil {
			return fmt.Errorf("seed sample question: %w", err)
		}
	}
	return nil
}

// seedAdvocates inserts the demonstration advocate directory. The accounts
// carry an unmatchable password hash so they cannot be logged into.
func seedAdvocates(db *sqlx.DB) error {
	for _, a := range sampleAdvocates {
		res, err := db.Exec(
			`INSERT OR IGNORE INTO users (username, email, password_hash, user_type, full_name, phone, address, is_verified, is_active)
			 VALUES (?, ?, '!', 'advocate', ?, ?, ?, 1, 1)`,
			a.username, a.email, a.fullName, a.phone, a.address,
		)
		if err != nil {
			return fmt.Errorf("seed advocate user %s: %w", a.username, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			continue
		}
		var userID int64
		if err := db.Get(&userID, `SELECT id FROM users WHERE username = ?`, a.username); err != nil {
			return fmt.Errorf("seed advocate lookup %s: %w", a.username, err)
		}
		if _, err := db.Exec(
			`INSERT OR IGNORE INTO advocate_profiles
			 (user_id, bar_council_id, years_experience, specializations, practice_areas, languages,
			  court_locations, consultation_fee, hourly_rate, rating, total_cases, cases_won, bio,
			  office_address, consultation_modes, availability_status, verification_status, is_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'available', 'verified', 1)`,
			userID, a.barCouncilID, a.yearsExperience, a.specializations, a.practiceAreas,
			a.languages, a.courtLocations, a.consultationFee, a.hourlyRate, a.rating,
			a.totalCases, a.casesWon, a.bio, a.officeAddress, a.consultationModes,
		); err != nil {
			return fmt.Errorf("seed advocate profile %s: %w", a.username, err)
		}
	}
	return nil
}
