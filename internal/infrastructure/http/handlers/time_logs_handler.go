package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/timelog"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/middleware"
)

type TimeLogsHandler struct {
	logs   ports.TimeLogRepository
	create *timelog.CreateTimeLog
	update *timelog.UpdateTimeLog
	log    zerolog.Logger
}

func NewTimeLogsHandler(logs ports.TimeLogRepository, create *timelog.CreateTimeLog, update *timelog.UpdateTimeLog, log zerolog.Logger) *TimeLogsHandler {
	return &TimeLogsHandler{logs: logs, create: create, update: update, log: log}
}

// timeLogRequest: userId may be omitted to log time for the caller.
type timeLogRequest struct {
	TaskID    string `json:"taskId" validate:"required"`
	UserID    string `json:"userId"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

type timeLogResponse struct {
	TimeLogID  string    `json:"timeLogId"`
	TaskID     string    `json:"taskId"`
	TaskName   string    `json:"taskName"`
	UserID     string    `json:"userId"`
	FullName   string    `json:"fullName"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	TotalHours float64   `json:"totalHours"`
}

func (h *TimeLogsHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logs.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list time logs")
		return
	}
	items := make([]timeLogResponse, 0, len(logs))
	for _, tl := range logs {
		items = append(items, timeLogResponse{
			TimeLogID:  tl.ID,
			TaskID:     tl.TaskID,
			TaskName:   tl.TaskName,
			UserID:     tl.UserID,
			FullName:   tl.FullName,
			StartTime:  tl.StartTime.UTC(),
			EndTime:    tl.EndTime.UTC(),
			TotalHours: tl.TotalHours(),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *TimeLogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	tl, err := decodeTimeLog(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "create time log")
		return
	}
	created, err := h.create.Execute(r.Context(), middleware.IdentityFromContext(r.Context()), tl)
	if err != nil {
		writeDomainErr(w, h.log, err, "create time log")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"timeLogId": created.ID})
}

func (h *TimeLogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	tl, err := decodeTimeLog(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "update time log")
		return
	}
	tl.ID = chi.URLParam(r, "id")
	if err := h.update.Execute(r.Context(), middleware.IdentityFromContext(r.Context()), tl); err != nil {
		writeDomainErr(w, h.log, err, "update time log")
		return
	}
	writeMessage(w, "time log updated")
}

func (h *TimeLogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.logs.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err, "delete time log")
		return
	}
	writeMessage(w, "time log deleted")
}

func decodeTimeLog(w http.ResponseWriter, r *http.Request) (domain.TimeLog, error) {
	var body timeLogRequest
	if err := decodeBody(w, r, &body); err != nil {
		return domain.TimeLog{}, err
	}
	start, err := parseTimestamp("startTime", body.StartTime)
	if err != nil {
		return domain.TimeLog{}, err
	}
	end, err := parseTimestamp("endTime", body.EndTime)
	if err != nil {
		return domain.TimeLog{}, err
	}
	return domain.TimeLog{
		TaskID:    strings.TrimSpace(body.TaskID),
		UserID:    strings.TrimSpace(body.UserID),
		StartTime: start,
		EndTime:   end,
	}, nil
}
