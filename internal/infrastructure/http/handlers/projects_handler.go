package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/project"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

type ProjectsHandler struct {
	projects      ports.ProjectRepository
	createProject *project.CreateProject
	updateProject *project.UpdateProject
	log           zerolog.Logger
}

func NewProjectsHandler(projects ports.ProjectRepository, createProject *project.CreateProject, updateProject *project.UpdateProject, log zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{projects: projects, createProject: createProject, updateProject: updateProject, log: log}
}

// projectRequest takes dates as YYYY-MM-DD; omitted or blank optionals are stored as null.
type projectRequest struct {
	ClientID    *string `json:"clientId"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	Deadline    *string `json:"deadline"`
}

type projectResponse struct {
	ProjectID   string  `json:"projectId"`
	ClientID    *string `json:"clientId"`
	ClientName  *string `json:"clientName"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	Deadline    *string `json:"deadline"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ProjectID:   p.ID,
		ClientID:    p.ClientID,
		ClientName:  p.ClientName,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   formatDate(p.StartDate),
		Deadline:    formatDate(p.Deadline),
	}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list projects")
		return
	}
	items := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.projects.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, h.log, err, "get project")
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, err := decodeProject(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "create project")
		return
	}
	created, err := h.createProject.Execute(r.Context(), p)
	if err != nil {
		writeDomainErr(w, h.log, err, "create project")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"projectId": created.ID})
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, err := decodeProject(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "update project")
		return
	}
	p.ID = chi.URLParam(r, "id")
	if err := h.updateProject.Execute(r.Context(), p); err != nil {
		writeDomainErr(w, h.log, err, "update project")
		return
	}
	writeMessage(w, "project updated")
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err, "delete project")
		return
	}
	writeMessage(w, "project deleted")
}

func decodeProject(w http.ResponseWriter, r *http.Request) (domain.Project, error) {
	var body projectRequest
	if err := decodeBody(w, r, &body); err != nil {
		return domain.Project{}, err
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := validateStruct(&body); err != nil {
		return domain.Project{}, err
	}
	start, err := parseDate("startDate", body.StartDate)
	if err != nil {
		return domain.Project{}, err
	}
	deadline, err := parseDate("deadline", body.Deadline)
	if err != nil {
		return domain.Project{}, err
	}
	return domain.Project{
		ClientID:    optional(body.ClientID),
		Name:        body.Name,
		Description: optional(body.Description),
		StartDate:   start,
		Deadline:    deadline,
	}, nil
}
