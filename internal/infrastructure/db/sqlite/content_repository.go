package sqlite

import (
	"context"
	"fmt"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ContentRepository is the SQLite implementation of ports.ContentRepository.
type ContentRepository struct {
	store *Store
}

func NewContentRepository(store *Store) *ContentRepository {
	return &ContentRepository{store: store}
}

func (r *ContentRepository) ListResources(ctx context.Context, category, language string) ([]*domain.LegalResource, error) {
	query := `SELECT id, title, category, content, language, is_published, view_count, created_at
		FROM legal_resources WHERE is_published = 1`
	args := []any{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if language != "" {
		query += ` AND language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY title`

	resources := []*domain.LegalResource{}
	if err := r.store.db.SelectContext(ctx, &resources, query, args...); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

func (r *ContentRepository) ListTemplates(ctx context.Context, category string) ([]*domain.LegalTemplate, error) {
	query := `SELECT id, name, category, description, template_body, language, is_active, download_count, created_at
		FROM legal_templates WHERE is_active = 1`
	args := []any{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	templates := []*domain.LegalTemplate{}
	if err := r.store.db.SelectContext(ctx, &templates, query, args...); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (r *ContentRepository) ListSampleQuestions(ctx context.Context, category, language string) ([]*domain.SampleQuestion, error) {
	query := `SELECT id, question, answer, category, language, is_active, created_at
		FROM sample_questions WHERE is_active = 1`
	args := []any{}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if language != "" {
		query += ` AND language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY id`

	questions := []*domain.SampleQuestion{}
	if err := r.store.db.SelectContext(ctx, &questions, query, args...); err != nil {
		return nil, fmt.Errorf("list sample questions: %w", err)
	}
	return questions, nil
}

func (r *ContentRepository) ListStudyMaterials(ctx context.Context, subject string) ([]*domain.StudyMaterial, error) {
	query := `SELECT id, title, subject, content_type, content, difficulty, is_active, created_at
		FROM study_materials WHERE is_active = 1`
	args := []any{}
	if subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY title`

	materials := []*domain.StudyMaterial{}
	if err := r.store.db.SelectContext(ctx, &materials, query, args...); err != nil {
		return nil, fmt.Errorf("list study materials: %w", err)
	}
	return materials, nil
}

func (r *ContentRepository) ListSettings(ctx context.Context) ([]*domain.SystemSetting, error) {
	settings := []*domain.SystemSetting{}
	err := r.store.db.SelectContext(ctx, &settings,
		`SELECT id, setting_key, setting_value, description FROM system_settings ORDER BY setting_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}
