package handler

import (
	"net/http"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/service"
)

// PartyHandler holds the HTTP handlers for the party roster.
type PartyHandler struct {
	svc *service.PartyService
}

// NewPartyHandler constructs a PartyHandler.
func NewPartyHandler(svc *service.PartyService) *PartyHandler {
	return &PartyHandler{svc: svc}
}

// Add handles POST /events/{id}/parties
// The response includes the freshly generated invitation token.
func (h *PartyHandler) Add(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.AddPartyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	party, err := h.svc.Add(r.Context(), eventID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, party)
}

// List handles GET /events/{id}/parties
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	parties, err := h.svc.List(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if parties == nil {
		parties = []model.PartyWithSeating{}
	}
	writeJSON(w, http.StatusOK, parties)
}

// Update handles PUT /parties/{id}
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdatePartyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), id, req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// Reassign handles PUT /parties/{id}/table — body {"table_id": n} assigns,
// {"table_id": null} clears.
func (h *PartyHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.ReassignPartyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Reassign(r.Context(), id, req.TableID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// Delete handles DELETE /parties/{id}
func (h *PartyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}
