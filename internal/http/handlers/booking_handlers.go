package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/http/response"
)

// Book handles POST /api/book: validate, admit against room-type capacity,
// persist, and answer. Confirmation email happens downstream of the
// booking.created event and never delays or fails this request.
func (h *Handlers) Book(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	booking, err := h.bookingService.AdmitBooking(r.Context(), &req)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"booking": booking,
	})
}

// CheckAvailability handles POST /api/check-availability. Available means no
// existing stay of the room type overlaps the requested range.
func (h *Handlers) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req domain.AvailabilityReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	available, err := h.bookingService.CheckAvailability(r.Context(), &req)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

// Health handles GET /health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "King Resort API is running!",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Root handles GET /, returning an endpoint directory.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Welcome to King Resort API",
		"endpoints": map[string]string{
			"health":            "GET /health",
			"admin":             "GET /admin",
			"book":              "POST /api/book",
			"checkAvailability": "POST /api/check-availability",
			"contact":           "POST /api/contact",
		},
	})
}
