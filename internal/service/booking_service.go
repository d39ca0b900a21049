package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/repository"
	"github.com/kingresort/booking-api/pkg/events"
	"github.com/kingresort/booking-api/pkg/logger"
)

type BookingService interface {
	AdmitBooking(ctx context.Context, req *domain.BookingReq) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, req *domain.AvailabilityReq) (bool, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	inventory   domain.Inventory
	publisher   events.Publisher
	validate    *validator.Validate
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	inventory domain.Inventory,
	publisher events.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		inventory:   inventory,
		publisher:   publisher,
		validate:    validator.New(),
	}
}

// AdmitBooking grants a time-bounded lease against the room type's capacity.
// The overlap count and the insert are serialized per room type inside the
// repository, so concurrent requests cannot overbook.
func (s *bookingService) AdmitBooking(ctx context.Context, req *domain.BookingReq) (*domain.Booking, error) {
	if err := s.validateBookingRequest(req); err != nil {
		return nil, err
	}

	maxRooms := s.inventory.Capacity(req.RoomType)

	booking, err := s.bookingRepo.CreateIfAvailable(ctx, req, maxRooms)
	if err != nil {
		if err == domain.ErrCapacityExceeded {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	event := events.BookingCreatedEvent{
		BookingID:  booking.ID,
		GuestName:  booking.Name,
		GuestEmail: booking.Email,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		RoomType:   booking.RoomType,
		CreatedAt:  booking.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, events.BookingCreated, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking created event", "error", err, "booking_id", booking.ID)
	}

	return booking, nil
}

// CheckAvailability is the plain availability query: available means zero
// overlapping bookings of the room type, regardless of capacity. The
// admission path is capacity-relative instead; the two are intentionally
// not the same question.
func (s *bookingService) CheckAvailability(ctx context.Context, req *domain.AvailabilityReq) (bool, error) {
	if err := s.validate.Struct(req); err != nil {
		return false, fmt.Errorf("%w: check_in, check_out and room_type are required", domain.ErrValidation)
	}
	if err := validateStay(req.CheckIn, req.CheckOut); err != nil {
		return false, err
	}

	count, err := s.bookingRepo.CountOverlapping(ctx, req.RoomType, req.CheckIn, req.CheckOut)
	if err != nil {
		return false, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}
	return count == 0, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// UpdateBooking overwrites the given fields unconditionally. It does not
// re-run the capacity check against the new dates; updates are a trusted
// admin operation.
func (s *bookingService) UpdateBooking(ctx context.Context, id int64, patch domain.BookingPatch) (*domain.Booking, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	existing, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	updated, err := s.bookingRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	changes := detectChanges(existing, updated)
	if len(changes) > 0 {
		event := events.BookingUpdatedEvent{
			BookingID:  updated.ID,
			GuestEmail: updated.Email,
			Changes:    changes,
			UpdatedAt:  time.Now(),
		}
		if err := s.publisher.Publish(ctx, events.BookingUpdated, event); err != nil {
			logger.ErrorContext(ctx, "Failed to publish booking updated event", "error", err, "booking_id", updated.ID)
		}
	}

	return updated, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id int64) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get booking: %w", err)
	}
	if booking == nil {
		return domain.ErrNotFound
	}

	deleted, err := s.bookingRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	event := events.BookingCanceledEvent{
		BookingID:  booking.ID,
		GuestEmail: booking.Email,
		Reason:     "admin_deleted",
		CanceledAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, events.BookingCanceled, event); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking canceled event", "error", err, "booking_id", booking.ID)
	}

	return nil
}

func (s *bookingService) validateBookingRequest(req *domain.BookingReq) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: name, email, check_in, check_out, guests and room_type are required", domain.ErrValidation)
	}
	return validateStay(req.CheckIn, req.CheckOut)
}

func validateStay(checkIn, checkOut string) error {
	if !domain.ValidDate(checkIn) || !domain.ValidDate(checkOut) {
		return fmt.Errorf("%w: dates must be YYYY-MM-DD", domain.ErrValidation)
	}
	if checkOut <= checkIn {
		return fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation)
	}
	return nil
}

func validatePatch(patch domain.BookingPatch) error {
	if patch.CheckIn != nil && !domain.ValidDate(*patch.CheckIn) {
		return fmt.Errorf("%w: check_in must be YYYY-MM-DD", domain.ErrValidation)
	}
	if patch.CheckOut != nil && !domain.ValidDate(*patch.CheckOut) {
		return fmt.Errorf("%w: check_out must be YYYY-MM-DD", domain.ErrValidation)
	}
	if patch.CheckIn != nil && patch.CheckOut != nil && *patch.CheckOut <= *patch.CheckIn {
		return fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation)
	}
	return nil
}

func detectChanges(old, new *domain.Booking) []string {
	var changes []string

	if old.Name != new.Name {
		changes = append(changes, "name")
	}
	if old.Email != new.Email {
		changes = append(changes, "email")
	}
	if old.CheckIn != new.CheckIn {
		changes = append(changes, "check_in")
	}
	if old.CheckOut != new.CheckOut {
		changes = append(changes, "check_out")
	}
	if old.Guests != new.Guests {
		changes = append(changes, "guests")
	}
	if old.RoomType != new.RoomType {
		changes = append(changes, "room_type")
	}

	return changes
}
