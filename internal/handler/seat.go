package handler

import (
	"net/http"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/service"
)

// SeatHandler holds the HTTP handlers for the seat assignment ledger.
type SeatHandler struct {
	svc *service.SeatService
}

// NewSeatHandler constructs a SeatHandler.
func NewSeatHandler(svc *service.SeatService) *SeatHandler {
	return &SeatHandler{svc: svc}
}

// Claim handles POST /tables/{id}/seats
// Replace-if-exists: claiming an occupied seat discards the previous
// occupant and installs the new one.
func (h *SeatHandler) Claim(w http.ResponseWriter, r *http.Request) {
	tableID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.ClaimSeatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	seat, err := h.svc.Claim(r.Context(), tableID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, seat)
}

// List handles GET /tables/{id}/seats
func (h *SeatHandler) List(w http.ResponseWriter, r *http.Request) {
	tableID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	seats, err := h.svc.List(r.Context(), tableID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if seats == nil {
		seats = []model.SeatAssignmentView{}
	}
	writeJSON(w, http.StatusOK, seats)
}

// Release handles DELETE /tables/{id}/seats/{seatNumber}
// Releasing an unoccupied seat still acknowledges.
func (h *SeatHandler) Release(w http.ResponseWriter, r *http.Request) {
	tableID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seatNumber, err := parseID(r, "seatNumber")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Release(r.Context(), tableID, int(seatNumber)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}
