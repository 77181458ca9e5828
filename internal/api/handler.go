// Package api provides the HTTP handlers and router for the registry REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sheetregistry/internal/domain"
	"sheetregistry/internal/middleware"
	"sheetregistry/internal/service"
)

// Handler holds the services the HTTP layer dispatches to.
type Handler struct {
	gate    *service.IdentityGate
	records *service.RecordCatalog
	logger  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(gate *service.IdentityGate, records *service.RecordCatalog, logger *slog.Logger) *Handler {
	return &Handler{gate: gate, records: records, logger: logger}
}

type loginRequest struct {
	Token string `json:"token"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

// handleGoogleLogin exchanges a Google ID token for a session credential.
func (h *Handler) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		h.writeError(r, w, domain.ErrAuth("token is required"))
		return
	}
	session, err := h.gate.Login(r.Context(), req.Token)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: session.Token, User: session.Identity})
}

// handleAuthenticate echoes the identity resolved by the session middleware.
func (h *Handler) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, id)
}

// handleListRecords returns every record, active and inactive.
func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.List(r.Context())
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// handleCreateRecord appends a new record.
func (h *Handler) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	var in domain.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(r, w, domain.ErrValidation("invalid request body"))
		return
	}
	rec, err := h.records.Create(r.Context(), actorFrom(r), &in)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// handleUpdateRecord overwrites the record with the given id, reactivating
// it if it was soft-deleted.
func (h *Handler) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	var in domain.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(r, w, domain.ErrValidation("invalid request body"))
		return
	}
	if err := h.records.Update(r.Context(), actorFrom(r), id, &in); err != nil {
		h.writeError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "record updated"})
}

// handleDeleteRecord soft-deletes the record with the given id. The route
// uses PUT, not DELETE — the row is rewritten, never removed.
func (h *Handler) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		h.writeError(r, w, err)
		return
	}
	if err := h.records.SoftDelete(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(r, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "record deactivated"})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// recordID parses the id path parameter. Ids are compared as strings in the
// sheet, so anything non-numeric can never match a row.
func recordID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrNotFound("record %q not found", raw)
	}
	return id, nil
}

func actorFrom(r *http.Request) domain.Actor {
	id, _ := middleware.IdentityFromContext(r.Context())
	return domain.Actor{Name: id.Name, Email: id.Email}
}

func (h *Handler) writeError(r *http.Request, w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"error", err)
	}
	writeJSON(w, status, map[string]interface{}{
		"code":    status,
		"message": err.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
