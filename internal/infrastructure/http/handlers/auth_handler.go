package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/auth"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/http/middleware"
)

// AuthHandler serves the session lifecycle: login, check and logout.
type AuthHandler struct {
	login        *auth.Login
	authenticate *auth.Authenticate
	logout       *auth.Logout
	log          zerolog.Logger
}

func NewAuthHandler(login *auth.Login, authenticate *auth.Authenticate, logout *auth.Logout, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{login: login, authenticate: authenticate, logout: logout, log: log}
}

type userResponse struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type loginResponse struct {
	SessionToken string       `json:"sessionToken"`
	ExpiresAt    time.Time    `json:"expiresAt"`
	User         userResponse `json:"user"`
}

type sessionResponse struct {
	Valid     bool         `json:"valid"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

// Login handles POST /login. Body: { "email", "password" }.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	err := decodeJSON(w, r, &body)
	if err == nil {
		body.Email = SanitizeEmail(body.Email)
		err = validateStruct(&body)
	}
	if err != nil {
		middleware.RecordAuthEvent("login", false)
		writeDomainErr(w, h.log, err, "login")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		middleware.RecordAuthEvent("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			h.log.Warn().Str("remote", r.RemoteAddr).Msg("login rejected")
		}
		writeDomainErr(w, h.log, err, "login")
		return
	}
	middleware.RecordAuthEvent("login", true)
	h.log.Info().Str("user_id", result.User.ID).Msg("session created")
	writeJSON(w, http.StatusOK, loginResponse{
		SessionToken: result.SessionToken,
		ExpiresAt:    result.ExpiresAt,
		User:         userResponse{UserID: result.User.ID, DisplayName: result.User.FullName},
	})
}

// CheckSession handles GET /session/check. It reports validity instead of gating.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	identity, err := h.authenticate.Execute(r.Context(), r.Header.Get(middleware.SessionHeader))
	if err != nil {
		middleware.RecordAuthEvent("check", false)
		writeDomainErr(w, h.log, err, "check session")
		return
	}
	middleware.RecordAuthEvent("check", true)
	writeJSON(w, http.StatusOK, toSessionResponse(identity))
}

// Logout handles DELETE /session. A second call with the same token is a 404.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.logout.Execute(r.Context(), r.Header.Get(middleware.SessionHeader))
	if err != nil {
		middleware.RecordAuthEvent("logout", false)
		if errors.Is(err, domerrors.ErrMissingCredential) {
			writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
			return
		}
		writeDomainErr(w, h.log, err, "logout")
		return
	}
	middleware.RecordAuthEvent("logout", true)
	writeMessage(w, "logged out")
}

func toSessionResponse(id *domain.Identity) sessionResponse {
	return sessionResponse{
		Valid:     true,
		ExpiresAt: id.ExpiresAt,
		User:      userResponse{UserID: id.UserID, DisplayName: id.DisplayName},
	}
}
