package domain

import "time"

// DateLayout is the calendar-date wire format for stays. Dates are kept as
// ISO-8601 strings end to end so lexical ordering equals chronological
// ordering.
const DateLayout = "2006-01-02"

// Booking represents one reserved stay. The interval [CheckIn, CheckOut) is
// half-open: the checkout day is not counted as occupied.
type Booking struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	Guests    int       `json:"guests"`
	RoomType  string    `json:"room_type"`
	CreatedAt time.Time `json:"created_at"`
}

type BookingReq struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
}

type AvailabilityReq struct {
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	RoomType string `json:"room_type" validate:"required"`
}

// BookingPatch is a partial update applied by admin operations. Nil fields
// are left unchanged.
type BookingPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Guests   *int    `json:"guests,omitempty"`
	RoomType *string `json:"room_type,omitempty"`
}

// Overlaps reports whether the stays [aIn, aOut) and [bIn, bOut) intersect.
// Adjacent stays (checkout day equals the next check-in) do not overlap.
func Overlaps(aIn, aOut, bIn, bOut string) bool {
	return bIn < aOut && bOut > aIn
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
