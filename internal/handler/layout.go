package handler

import (
	"net/http"

	"github.com/tablemap/tablemap/internal/model"
	"github.com/tablemap/tablemap/internal/service"
)

// LayoutHandler holds the HTTP handlers for tables and icons on the canvas.
type LayoutHandler struct {
	svc *service.LayoutService
}

// NewLayoutHandler constructs a LayoutHandler.
func NewLayoutHandler(svc *service.LayoutService) *LayoutHandler {
	return &LayoutHandler{svc: svc}
}

// BulkCreateTables handles POST /events/{id}/tables
// The whole batch is created atomically; a duplicate name anywhere in it
// yields 409 and zero new tables.
func (h *LayoutHandler) BulkCreateTables(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.BulkCreateTablesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tables, err := h.svc.BulkCreateTables(r.Context(), eventID, req.Tables)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, model.BulkCreateTablesResponse{
		Created: len(tables),
		Tables:  tables,
	})
}

// ListTables handles GET /events/{id}/tables
func (h *LayoutHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tables, err := h.svc.ListTables(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if tables == nil {
		tables = []model.TableWithOccupancy{}
	}
	writeJSON(w, http.StatusOK, tables)
}

// UpdateTable handles PUT /tables/{id}
func (h *LayoutHandler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.UpdateTableRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.UpdateTable(r.Context(), id, req); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// RepositionTable handles PUT /tables/{id}/position
func (h *LayoutHandler) RepositionTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.RepositionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.RepositionTable(r.Context(), id, req.X, req.Y); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// DeleteTable handles DELETE /tables/{id}
func (h *LayoutHandler) DeleteTable(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.DeleteTable(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// ClearLayout handles DELETE /events/{id}/layout — wipes every table and
// icon of the event.
func (h *LayoutHandler) ClearLayout(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.ClearLayout(r.Context(), eventID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// AddIcon handles POST /events/{id}/icons
func (h *LayoutHandler) AddIcon(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.AddIconRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	icon, err := h.svc.AddIcon(r.Context(), eventID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, icon)
}

// ListIcons handles GET /events/{id}/icons
func (h *LayoutHandler) ListIcons(w http.ResponseWriter, r *http.Request) {
	eventID, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	icons, err := h.svc.ListIcons(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if icons == nil {
		icons = []model.LayoutIcon{}
	}
	writeJSON(w, http.StatusOK, icons)
}

// RepositionIcon handles PUT /icons/{id}/position
func (h *LayoutHandler) RepositionIcon(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.RepositionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.svc.RepositionIcon(r.Context(), id, req.X, req.Y); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}

// DeleteIcon handles DELETE /icons/{id}
func (h *LayoutHandler) DeleteIcon(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.DeleteIcon(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeAck(w)
}
