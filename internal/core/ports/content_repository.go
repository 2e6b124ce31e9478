package ports

import (
	"context"

	"github.com/legalease/legalease-api/internal/core/domain"
)

// ContentRepository defines read access to published content tables.
type ContentRepository interface {
	ListResources(ctx context.Context, category, language string) ([]*domain.LegalResource, error)
	ListTemplates(ctx context.Context, category string) ([]*domain.LegalTemplate, error)
	ListSampleQuestions(ctx context.Context, category, language string) ([]*domain.SampleQuestion, error)
	ListStudyMaterials(ctx context.Context, subject string) ([]*domain.StudyMaterial, error)
	ListSettings(ctx context.Context) ([]*domain.SystemSetting, error)
}
