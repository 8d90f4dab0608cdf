package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/team"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

// TeamsHandler serves /teams and /team-members.
type TeamsHandler struct {
	teams      ports.TeamRepository
	createTeam *team.CreateTeam
	setMembers *team.SetMembers
	log        zerolog.Logger
}

func NewTeamsHandler(teams ports.TeamRepository, createTeam *team.CreateTeam, setMembers *team.SetMembers, log zerolog.Logger) *TeamsHandler {
	return &TeamsHandler{teams: teams, createTeam: createTeam, setMembers: setMembers, log: log}
}

type teamRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description"`
	MemberIDs   []string `json:"memberIds"`
}

type teamResponse struct {
	TeamID      string   `json:"teamId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Members     []string `json:"members"`
	MemberIDs   []string `json:"memberIds"`
}

type membershipRequest struct {
	TeamID string `json:"teamId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

func (h *TeamsHandler) List(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list teams")
		return
	}
	items := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamResponse{
			TeamID:      t.ID,
			Name:        t.Name,
			Description: t.Description,
			Members:     t.Members,
			MemberIDs:   t.MemberIDs,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Create accepts an optional initial roster, inserted with the team atomically.
func (h *TeamsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body teamRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeDomainErr(w, h.log, err, "create team")
		return
	}
	created, err := h.createTeam.Execute(r.Context(), team.CreateTeamInput{
		Name:        body.Name,
		Description: optional(body.Description),
		MemberIDs:   body.MemberIDs,
	})
	if err != nil {
		writeDomainErr(w, h.log, err, "create team")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"teamId": created.ID})
}

func (h *TeamsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body teamRequest
	if err := decodeBody(w, r, &body); err != nil {
		writeDomainErr(w, h.log, err, "update team")
		return
	}
	body.Name = strings.TrimSpace(body.Name)
	if err := validateStruct(&body); err != nil {
		writeDomainErr(w, h.log, err, "update team")
		return
	}
	t := &domain.Team{ID: chi.URLParam(r, "id"), Name: body.Name, Description: optional(body.Description)}
	if err := h.teams.Update(r.Context(), t); err != nil {
		writeDomainErr(w, h.log, err, "update team")
		return
	}
	writeMessage(w, "team updated")
}

func (h *TeamsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.teams.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err, "delete team")
		return
	}
	writeMessage(w, "team deleted")
}

// SetMembers handles PUT /teams/{id}/members. Body: { "memberIds": [...] }.
func (h *TeamsHandler) SetMembers(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MemberIDs []string `json:"memberIds"`
	}
	if err := decodeBody(w, r, &body); err != nil {
		writeDomainErr(w, h.log, err, "set team members")
		return
	}
	if err := h.setMembers.Execute(r.Context(), chi.URLParam(r, "id"), body.MemberIDs); err != nil {
		writeDomainErr(w, h.log, err, "set team members")
		return
	}
	writeMessage(w, "team members updated")
}

// AddMember handles POST /team-members.
func (h *TeamsHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	m, err := decodeMembership(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "add team member")
		return
	}
	if err := h.teams.AddMember(r.Context(), m); err != nil {
		writeDomainErr(w, h.log, err, "add team member")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "team member added"})
}

// RemoveMember handles DELETE /team-members with a JSON body.
func (h *TeamsHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	m, err := decodeMembership(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "remove team member")
		return
	}
	if err := h.teams.RemoveMember(r.Context(), m); err != nil {
		writeDomainErr(w, h.log, err, "remove team member")
		return
	}
	writeMessage(w, "team member removed")
}

func decodeMembership(w http.ResponseWriter, r *http.Request) (domain.TeamMembership, error) {
	var body membershipRequest
	if err := decodeBody(w, r, &body); err != nil {
		return domain.TeamMembership{}, err
	}
	body.TeamID = strings.TrimSpace(body.TeamID)
	body.UserID = strings.TrimSpace(body.UserID)
	if err := validateStruct(&body); err != nil {
		return domain.TeamMembership{}, err
	}
	return domain.TeamMembership{TeamID: body.TeamID, UserID: body.UserID}, nil
}
