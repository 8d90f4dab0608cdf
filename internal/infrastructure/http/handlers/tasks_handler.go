package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

type TasksHandler struct {
	tasks ports.TaskRepository
	log   zerolog.Logger
}

func NewTasksHandler(tasks ports.TaskRepository, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{tasks: tasks, log: log}
}

type taskRequest struct {
	ProjectID   string  `json:"projectId" validate:"required"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

type taskResponse struct {
	TaskID      string  `json:"taskId"`
	ProjectID   string  `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list tasks")
		return
	}
	items := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskResponse{
			TaskID:      t.ID,
			ProjectID:   t.ProjectID,
			ProjectName: t.ProjectName,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	t, err := decodeTask(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "create task")
		return
	}
	t.ID = uuid.NewString()
	if err := h.tasks.Create(r.Context(), &t); err != nil {
		writeDomainErr(w, h.log, err, "create task")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"taskId": t.ID})
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	t, err := decodeTask(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "update task")
		return
	}
	t.ID = chi.URLParam(r, "id")
	if err := h.tasks.Update(r.Context(), &t); err != nil {
		writeDomainErr(w, h.log, err, "update task")
		return
	}
	writeMessage(w, "task updated")
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err, "delete task")
		return
	}
	writeMessage(w, "task deleted")
}

func decodeTask(w http.ResponseWriter, r *http.Request) (domain.Task, error) {
	var body taskRequest
	if err := decodeBody(w, r, &body); err != nil {
		return domain.Task{}, err
	}
	body.ProjectID = strings.TrimSpace(body.ProjectID)
	body.Name = strings.TrimSpace(body.Name)
	if err := validateStruct(&body); err != nil {
		return domain.Task{}, err
	}
	return domain.Task{ProjectID: body.ProjectID, Name: body.Name, Description: optional(body.Description)}, nil
}
