package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/client"
	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

type ClientsHandler struct {
	clients      ports.ClientRepository
	deleteClient *client.DeleteClient
	log          zerolog.Logger
}

func NewClientsHandler(clients ports.ClientRepository, deleteClient *client.DeleteClient, log zerolog.Logger) *ClientsHandler {
	return &ClientsHandler{clients: clients, deleteClient: deleteClient, log: log}
}

type clientRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type clientResponse struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
}

func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.List(r.Context())
	if err != nil {
		writeDomainErr(w, h.log, err, "list clients")
		return
	}
	items := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, clientResponse{ClientID: c.ID, Name: c.Name})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeClient(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "create client")
		return
	}
	c := &domain.Client{ID: uuid.NewString(), Name: body.Name}
	if err := h.clients.Create(r.Context(), c); err != nil {
		writeDomainErr(w, h.log, err, "create client")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"clientId": c.ID})
}

func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	body, err := decodeClient(w, r)
	if err != nil {
		writeDomainErr(w, h.log, err, "update client")
		return
	}
	c := &domain.Client{ID: chi.URLParam(r, "id"), Name: body.Name}
	if err := h.clients.Update(r.Context(), c); err != nil {
		writeDomainErr(w, h.log, err, "update client")
		return
	}
	writeMessage(w, "client updated")
}

// Delete refuses while projects still reference the client.
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deleteClient.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, h.log, err, "delete client")
		return
	}
	writeMessage(w, "client deleted")
}

func decodeClient(w http.ResponseWriter, r *http.Request) (clientRequest, error) {
	var body clientRequest
	if err := decodeBody(w, r, &body); err != nil {
		return body, err
	}
	body.Name = strings.TrimSpace(body.Name)
	return body, validateStruct(&body)
}
