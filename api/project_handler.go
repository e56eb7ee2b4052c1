package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectRepo    *database.ProjectRepo
	projectTagRepo *database.ProjectTagRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo, projectTagRepo *database.ProjectTagRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectRepo:    projectRepo,
		projectTagRepo: projectTagRepo,
	}
}

// ProjectView is a project with its tags flattened to plain strings
type ProjectView struct {
	models.Project
	Tags []string `json:"tags"`
}

// ProjectCollection is the public catalog response. Fallback marks whether
// the built-in sample list was substituted for an empty or unreachable table.
type ProjectCollection struct {
	Projects []ProjectView `json:"projects"`
	Total    int           `json:"total"`
	Fallback bool          `json:"fallback,omitempty"`
}

// CategoryCollection is the derived category facet, "All" first
type CategoryCollection struct {
	Categories []string `json:"categories"`
}

func newProjectView(project *models.Project) ProjectView {
	return ProjectView{Project: *project, Tags: project.TagValues()}
}

type projectRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Content      *string    `json:"content"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
	ImageURL     *string    `json:"image_url"`
	DemoURL      *string    `json:"demo_url"`
	GithubURL    *string    `json:"github_url"`
	YoutubeURL   *string    `json:"youtube_url"`
	Featured     bool       `json:"featured"`
	OwnerID      *uuid.UUID `json:"owner_id"`
	DisplayOrder int        `json:"display_order"`
}

// normalizeTags trims every entry, splits entries that arrive as one
// comma-separated string, and drops empties.
func normalizeTags(raw []string) []string {
	var values []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

func (r projectRequest) apply(project *models.Project) {
	project.Title = strings.TrimSpace(r.Title)
	project.Description = r.Description
	project.Content = r.Content
	project.Category = strings.TrimSpace(r.Category)
	project.ImageURL = r.ImageURL
	project.DemoURL = r.DemoURL
	project.GithubURL = r.GithubURL
	project.YoutubeURL = r.YoutubeURL
	project.Featured = r.Featured
	project.OwnerID = r.OwnerID
	project.DisplayOrder = r.DisplayOrder
}

// loadCatalog fetches the live catalog, substituting the built-in fallback
// list when the table is empty or the fetch fails so the listing is never
// blank.
func (h projectHandler) loadCatalog() ([]*models.Project, bool) {
	projects, err := h.projectRepo.FindAll()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch projects, serving fallback catalog")
		return models.FallbackProjects(), true
	}
	if len(projects) == 0 {
		return models.FallbackProjects(), true
	}
	return projects, false
}

// getAllProjects retrieves the catalog ordered by display order
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, fallback := h.loadCatalog()

		views := make([]ProjectView, 0, len(projects))
		for _, project := range projects {
			views = append(views, newProjectView(project))
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: views,
			Total:    len(views),
			Fallback: fallback,
		})
	}
}

// getCategories derives the distinct category facet from the catalog, in
// order of first appearance, with the synthetic "All" entry first.
func (h projectHandler) getCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, _ := h.loadCatalog()

		categories := []string{"All"}
		seen := map[string]bool{}
		for _, project := range projects {
			if project.Category == "" || seen[project.Category] {
				continue
			}
			seen[project.Category] = true
			categories = append(categories, project.Category)
		}

		h.responder.WriteJSON(w, CategoryCollection{Categories: categories})
	}
}

// findProject looks up a project by id, falling back to the built-in sample
// catalog so detail links stay valid while the table is empty.
func (h projectHandler) findProject(id uuid.UUID) (*models.Project, error) {
	project, err := h.projectRepo.FindByID(id)
	if err != nil || project != nil {
		return project, err
	}
	for _, fallback := range models.FallbackProjects() {
		if fallback.ID == id {
			return fallback, nil
		}
	}
	return nil, nil
}

// getProject retrieves a specific project by ID with its tags
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.findProject(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, newProjectView(project))
	}
}

// createProject creates a new project with its tags
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if strings.TrimSpace(payload.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		var project models.Project
		payload.apply(&project)

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		if tags := normalizeTags(payload.Tags); len(tags) > 0 {
			if err := h.projectTagRepo.Replace(project.ID, tags); err != nil {
				h.responder.WriteError(w, wrapDatabaseError("create tags", "project tags", err))
				return
			}
		}

		// Reload to pick up the stored tag rows
		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, newProjectView(created))
	}
}

// updateProject replaces an existing project and its tag set
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var payload projectRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if strings.TrimSpace(payload.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		payload.apply(existing)
		existing.Tags = nil

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}
		if err := h.projectTagRepo.Replace(projectID, normalizeTags(payload.Tags)); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update tags", "project tags", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated project", "project", err))
			return
		}

		h.responder.WriteJSON(w, newProjectView(updated))
	}
}

// deleteProject deletes a project and its tags by ID
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
