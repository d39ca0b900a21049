package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/http/response"
)

// ListBookings handles GET /admin/bookings, newest first.
func (h *Handlers) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingService.ListBookings(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to retrieve bookings")
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}

// ListContacts handles GET /admin/contacts, newest first.
func (h *Handlers) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.ListContacts(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to retrieve contact messages")
		return
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// UpdateBooking handles PATCH /admin/bookings/{id}. Fields are overwritten
// as given; the capacity check is not re-run for admin edits.
func (h *Handlers) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	var patch domain.BookingPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "Invalid JSON format")
		return
	}

	booking, err := h.bookingService.UpdateBooking(r.Context(), id, patch)
	if err != nil {
		response.WriteDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// DeleteBooking handles DELETE /admin/bookings/{id}.
func (h *Handlers) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid booking id")
		return
	}

	if err := h.bookingService.DeleteBooking(r.Context(), id); err != nil {
		response.WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
