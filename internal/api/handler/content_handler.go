package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalease/legalease-api/internal/core/domain"
	"github.com/legalease/legalease-api/internal/core/ports"
	"github.com/legalease/legalease-api/internal/pkg/config"
)

// ContentHandler serves the published content tables. It reads the
// repository directly; there is no business logic between the two.
type ContentHandler struct {
	repo ports.ContentRepository
}

func NewContentHandler(repo ports.ContentRepository) *ContentHandler {
	return &ContentHandler{repo: repo}
}

type resourcesResponse struct {
	Success   bool                    `json:"success"`
	Resources []*domain.LegalResource `json:"resources"`
}

type templatesResponse struct {
	Success   bool                    `json:"success"`
	Templates []*domain.LegalTemplate `json:"templates"`
}

type questionsResponse struct {
	Success   bool                     `json:"success"`
	Questions []*domain.SampleQuestion `json:"questions"`
}

type materialsResponse struct {
	Success   bool                    `json:"success"`
	Materials []*domain.StudyMaterial `json:"materials"`
}

type languagesResponse struct {
	Success   bool              `json:"success"`
	Languages []config.Language `json:"languages"`
}

type settingsResponse struct {
	Success  bool                    `json:"success"`
	Settings []*domain.SystemSetting `json:"settings"`
}

// Resources lists published legal articles and guides.
//
// @Summary      List legal resources
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        language  query     string  false  "Filter by language code"
// @Success      200       {object}  resourcesResponse
// @Router       /api/resources [get]
func (h *ContentHandler) Resources(c echo.Context) error {
	resources, err := h.repo.ListResources(c.Request().Context(), c.QueryParam("category"), c.QueryParam("language"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resourcesResponse{Success: true, Resources: resources})
}

// Templates lists active document templates.
//
// @Summary      List legal templates
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Success      200       {object}  templatesResponse
// @Router       /api/templates [get]
func (h *ContentHandler) Templates(c echo.Context) error {
	templates, err := h.repo.ListTemplates(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, templatesResponse{Success: true, Templates: templates})
}

// SampleQuestions lists curated starter questions with vetted answers.
//
// @Summary      List sample questions
// @Tags         content
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        language  query     string  false  "Filter by language code"
// @Success      200       {object}  questionsResponse
// @Router       /api/sample-questions [get]
func (h *ContentHandler) SampleQuestions(c echo.Context) error {
	questions, err := h.repo.ListSampleQuestions(c.Request().Context(), c.QueryParam("category"), c.QueryParam("language"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, questionsResponse{Success: true, Questions: questions})
}

// StudyMaterials lists reading material for students.
//
// @Summary      List study materials
// @Tags         content
// @Produce      json
// @Param        subject  query     string  false  "Filter by subject"
// @Success      200      {object}  materialsResponse
// @Router       /api/study-materials [get]
func (h *ContentHandler) StudyMaterials(c echo.Context) error {
	materials, err := h.repo.ListStudyMaterials(c.Request().Context(), c.QueryParam("subject"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, materialsResponse{Success: true, Materials: materials})
}

// Languages lists the supported interface languages.
//
// @Summary      List supported languages
// @Tags         content
// @Produce      json
// @Success      200  {object}  languagesResponse
// @Router       /api/languages [get]
func (h *ContentHandler) Languages(c echo.Context) error {
	return c.JSON(http.StatusOK, languagesResponse{Success: true, Languages: config.SupportedLanguages})
}

// Settings lists the runtime system settings.
//
// @Summary      List system settings
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Router       /api/settings [get]
func (h *ContentHandler) Settings(c echo.Context) error {
	settings, err := h.repo.ListSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsResponse{Success: true, Settings: settings})
}
