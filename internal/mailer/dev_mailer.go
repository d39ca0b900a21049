package mailer

import (
	"github.com/kingresort/booking-api/pkg/logger"
)

// DevMailer prints emails to the log instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendBookingConfirmation(toEmail, toName, roomType, checkIn, checkOut string, guests int) error {
	logger.Info("[DEV MAIL] Booking confirmation",
		"to", toEmail,
		"name", toName,
		"room_type", roomType,
		"check_in", checkIn,
		"check_out", checkOut,
		"guests", guests,
	)
	return nil
}

func (d *DevMailer) SendBookingAlert(guestName, guestEmail, roomType, checkIn, checkOut string, guests int) error {
	logger.Info("[DEV MAIL] Booking alert for hotel inbox",
		"guest_name", guestName,
		"guest_email", guestEmail,
		"room_type", roomType,
		"check_in", checkIn,
		"check_out", checkOut,
		"guests", guests,
	)
	return nil
}

func (d *DevMailer) SendContactNotice(name, email, subject, message string) error {
	logger.Info("[DEV MAIL] Contact form notice",
		"name", name,
		"email", email,
		"subject", subject,
	)
	return nil
}
