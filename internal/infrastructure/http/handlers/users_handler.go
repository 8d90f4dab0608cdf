package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
)

// UsersHandler serves the read-only user directory used to pick team members
// and time log owners.
type UsersHandler struct {
	userRepo ports.UserRepository
	log      zerolog.Logger
}

func NewUsersHandler(userRepo ports.UserRepository, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{userRepo: userRepo, log: log}
}

// List handles GET /users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list users")
		return
	}
	items := make([]userResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse{UserID: u.ID, DisplayName: u.FullName})
	}
	writeJSON(w, http.StatusOK, items)
}
