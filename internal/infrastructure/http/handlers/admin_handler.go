package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/manage"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

// AdminHandler serves the project, assignment and calendar management
// routes under /admin.
type AdminHandler struct {
	createProject      *manage.CreateProject
	listProjects       *manage.ListProjects
	updateProject      *manage.UpdateProject
	suppressProject    *manage.SuppressProject
	assignProject      *manage.AssignProject
	suppressAssignment *manage.SuppressAssignment
	setCalendarDay     *manage.SetCalendarDay
	monthOverrides     *manage.MonthOverrides
}

func NewAdminHandler(
	createProject *manage.CreateProject,
	listProjects *manage.ListProjects,
	updateProject *manage.UpdateProject,
	suppressProject *manage.SuppressProject,
	assignProject *manage.AssignProject,
	suppressAssignment *manage.SuppressAssignment,
	setCalendarDay *manage.SetCalendarDay,
	monthOverrides *manage.MonthOverrides,
) *AdminHandler {
	return &AdminHandler{
		createProject:      createProject,
		listProjects:       listProjects,
		updateProject:      updateProject,
		suppressProject:    suppressProject,
		assignProject:      assignProject,
		suppressAssignment: suppressAssignment,
		setCalendarDay:     setCalendarDay,
		monthOverrides:     monthOverrides,
	}
}

type projectPayload struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

type projectResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Suppressed bool   `json:"suppressed"`
	IsSystem   bool   `json:"is_system"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:         p.ID.String(),
		Name:       p.Name,
		Color:      p.Color,
		Suppressed: p.Suppressed,
		IsSystem:   p.IsSystem,
	}
}

// CreateProject adds a project to the catalogue.
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "name is required")
		return
	}
	project, err := h.createProject.Execute(r.Context(), manage.CreateProjectInput{Name: req.Name, Color: req.Color})
	if err != nil {
		respondProjectError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(project))
}

// ListProjects returns the full catalogue, suppressed rows included.
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.listProjects.Execute(r.Context(), true)
	if err != nil {
		respondError(w, err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateProject renames or recolors a project.
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid project id")
		return
	}
	var req projectPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "name is required")
		return
	}
	project, err := h.updateProject.Execute(r.Context(), manage.UpdateProjectInput{
		ProjectID: domain.NewProjectID(projectID),
		Name:      req.Name,
		Color:     req.Color,
	})
	if err != nil {
		respondProjectError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(project))
}

// SuppressProject soft-deletes a project; its entries keep reporting.
func (h *AdminHandler) SuppressProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid project id")
		return
	}
	if err := h.suppressProject.Execute(r.Context(), domain.NewProjectID(projectID)); err != nil {
		respondProjectError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// respondProjectError is respondError except that unexpected storage
// failures echo the error text, matching the admin screens.
func respondProjectError(w http.ResponseWriter, err error) {
	if domerrors.IsDomain(err) {
		respondError(w, err)
		return
	}
	writeErr(w, http.StatusInternalServerError, ErrCodeInternal, err.Error())
}

type assignPayload struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	ProjectID string `json:"project_id" validate:"required,uuid"`
}

// CreateAssignment links a worker to a project.
func (h *AdminHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req assignPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "user_id and project_id are required")
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	projectID, _ := uuid.Parse(req.ProjectID)
	assignment, err := h.assignProject.Execute(r.Context(), manage.AssignProjectInput{
		UserID:    domain.NewUserID(userID),
		ProjectID: domain.NewProjectID(projectID),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": assignment.ID.String()})
}

// SuppressAssignment soft-deletes a worker-project link.
func (h *AdminHandler) SuppressAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid assignment id")
		return
	}
	if err := h.suppressAssignment.Execute(r.Context(), domain.NewAssignmentID(assignmentID)); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type calendarPayload struct {
	DayType string `json:"day_type" validate:"required"`
}

// SetCalendarDay overrides the day type of one date.
func (h *AdminHandler) SetCalendarDay(w http.ResponseWriter, r *http.Request) {
	var req calendarPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid JSON body")
		return
	}
	if err := payloadValidator.Struct(req); err != nil {
		writeErr(w, http.StatusBadRequest, "", "day_type is required")
		return
	}
	day, err := h.setCalendarDay.Execute(r.Context(), manage.SetCalendarDayInput{
		Date:    chi.URLParam(r, "date"),
		DayType: req.DayType,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"date": day.Date, "day_type": string(day.DayType)})
}

// Calendar lists the overrides of one month.
func (h *AdminHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	days, err := h.monthOverrides.Execute(r.Context(), requestMonth(r))
	if err != nil {
		respondError(w, err)
		return
	}
	out := make([]map[string]string, 0, len(days))
	for _, d := range days {
		out = append(out, map[string]string{"date": d.Date, "day_type": string(d.DayType)})
	}
	writeJSON(w, http.StatusOK, out)
}
