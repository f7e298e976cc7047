package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/relayops/clientreg/internal/registry/domain"
	"github.com/relayops/clientreg/internal/registry/service"
	"github.com/relayops/clientreg/pkg/httpx"
	"github.com/relayops/clientreg/pkg/registrysdk"
	"github.com/relayops/clientreg/pkg/slogx"
)

// ClientsHandler handles all client registry endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleList handles GET /clients
//
//	@Summary		List Clients
//	@Description	Returns every registered client in insertion order, each annotated with its registry key.
//	@Tags			Clients
//	@Produce		json
//	@Success		200	{array}		registrysdk.ClientInfo	"List of clients"
//	@Failure		500	{object}	registrysdk.ErrorResponse	"error, message"
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clients, err := h.ClientService.List(ctx)
	if err != nil {
		log.Error("failed to list clients", "error", err)
		writeInternalError(w, err)
		return
	}

	out := make([]registrysdk.ClientInfo, len(clients))
	for i, c := range clients {
		out[i] = clientInfo(c)
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /clients/{id}
//
//	@Summary		Get Client
//	@Description	Returns a single client by its registry key.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string					true	"Registry key (trimmed name at creation)"
//	@Success		200	{object}	registrysdk.ClientInfo	"Client record"
//	@Failure		404	{object}	registrysdk.ErrorResponse	"error"
//	@Failure		500	{object}	registrysdk.ErrorResponse	"error, message"
//	@Router			/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	key := r.PathValue("id")

	client, err := h.ClientService.Get(ctx, key)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Error("failed to get client", "error", err, "client_id", key)
		writeInternalError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientInfo(client))
}

// HandleCreate handles POST /clients
//
//	@Summary		Register Client
//	@Description	Registers a new client. The registry key is the trimmed name and is immutable afterwards.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registrysdk.ClientRequest	true	"name and downloadLink"
//	@Success		201		{object}	registrysdk.ClientRecord	"Created record"
//	@Failure		400		{object}	registrysdk.ErrorResponse	"invalid body, missing fields or invalid URL"
//	@Failure		409		{object}	registrysdk.ErrorResponse	"name already registered"
//	@Failure		500		{object}	registrysdk.ErrorResponse	"error, message"
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	name, link, ok := decodeClientRequest(w, r)
	if !ok {
		return
	}

	client, err := h.ClientService.Register(ctx, name, link)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNameTaken):
			writeError(w, http.StatusConflict, "Client name already exists")
		case errors.Is(err, service.ErrInvalidDownloadLink):
			writeError(w, http.StatusBadRequest, "downloadLink must be a valid absolute URL")
		default:
			log.Error("failed to register client", "error", err)
			writeInternalError(w, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, registrysdk.ClientRecord{
		Name:         client.Name,
		DownloadLink: client.DownloadLink,
	})
}

// HandleUpdate handles PUT /clients/{id}
//
//	@Summary		Update Client
//	@Description	Replaces the name and download link of an existing client. The registry key stays the same even when the name changes.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Registry key"
//	@Param			request	body		registrysdk.ClientRequest	true	"name and downloadLink"
//	@Success		200		{object}	registrysdk.ClientRecord	"Updated record"
//	@Failure		400		{object}	registrysdk.ErrorResponse	"invalid body, missing fields or invalid URL"
//	@Failure		404		{object}	registrysdk.ErrorResponse	"error"
//	@Failure		500		{object}	registrysdk.ErrorResponse	"error, message"
//	@Router			/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	key := r.PathValue("id")

	name, link, ok := decodeClientRequest(w, r)
	if !ok {
		return
	}

	client, err := h.ClientService.Update(ctx, key, name, link)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			writeError(w, http.StatusNotFound, "Client not found")
		case errors.Is(err, service.ErrInvalidDownloadLink):
			writeError(w, http.StatusBadRequest, "downloadLink must be a valid absolute URL")
		default:
			log.Error("failed to update client", "error", err, "client_id", key)
			writeInternalError(w, err)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, registrysdk.ClientRecord{
		Name:         client.Name,
		DownloadLink: client.DownloadLink,
	})
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary		Delete Client
//	@Description	Removes a client by its registry key.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path	string	true	"Registry key"
//	@Success		204	"Client deleted"
//	@Failure		404	{object}	registrysdk.ErrorResponse	"error"
//	@Failure		500	{object}	registrysdk.ErrorResponse	"error, message"
//	@Router			/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	key := r.PathValue("id")

	if err := h.ClientService.Remove(ctx, key); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			writeError(w, http.StatusNotFound, "Client not found")
			return
		}
		log.Error("failed to delete client", "error", err, "client_id", key)
		writeInternalError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeClientRequest parses and validates the shared create/update body.
// The order is contractual: JSON parse errors first, then post-trim field
// presence. On failure the response has already been written.
func decodeClientRequest(w http.ResponseWriter, r *http.Request) (name, link string, ok bool) {
	var req registrysdk.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return "", "", false
	}

	name = strings.TrimSpace(req.Name)
	link = strings.TrimSpace(req.DownloadLink)
	if name == "" || link == "" {
		writeError(w, http.StatusBadRequest, "Name and downloadLink are required")
		return "", "", false
	}

	return name, link, true
}

func clientInfo(c domain.Client) registrysdk.ClientInfo {
	return registrysdk.ClientInfo{
		ID:           c.ID,
		Name:         c.Name,
		DownloadLink: c.DownloadLink,
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	httpx.WriteJSON(w, code, registrysdk.ErrorResponse{Error: msg})
}

// writeInternalError reports an unexpected failure with the underlying
// error text alongside the generic message.
func writeInternalError(w http.ResponseWriter, err error) {
	httpx.WriteJSON(w, http.StatusInternalServerError, registrysdk.ErrorResponse{
		Error:   "Internal server error",
		Message: err.Error(),
	})
}
