package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/tablemap/tablemap/internal/service"
)

// qrSize is the pixel width of the invitation QR code PNG.
const qrSize = 256

// GuestHandler holds the public, token-keyed guest endpoints. These expose
// only the token holder's own assignment; there is nothing here an admin
// would use.
type GuestHandler struct {
	svc *service.GuestService
}

// NewGuestHandler constructs a GuestHandler.
func NewGuestHandler(svc *service.GuestService) *GuestHandler {
	return &GuestHandler{svc: svc}
}

// Resolve handles GET /guest/{token}
func (h *GuestHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Resolve(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ResolveLayout handles GET /guest/{token}/layout — the hall's tables plus
// which one is the caller's, with no other party's identity attached.
func (h *GuestHandler) ResolveLayout(w http.ResponseWriter, r *http.Request) {
	layout, err := h.svc.ResolveLayout(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, layout)
}

// QR handles GET /guest/{token}/qr — the invitation token rendered as a PNG
// QR code. The token is resolved first so unknown tokens 404 instead of
// producing a dead QR image.
func (h *GuestHandler) QR(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if _, err := h.svc.Resolve(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := qrcode.Encode(token, qrcode.Medium, qrSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render qr code")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
