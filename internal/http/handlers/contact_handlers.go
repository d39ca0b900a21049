package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/http/response"
)

// Contact handles POST /api/contact.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	if _, err := h.contactService.Submit(r.Context(), &req); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
