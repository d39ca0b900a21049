package mailer

// Service sends the outbound emails triggered by guest activity. All sends
// are best effort; callers log failures and move on.
type Service interface {
	SendBookingConfirmation(toEmail, toName, roomType, checkIn, checkOut string, guests int) error
	SendBookingAlert(guestName, guestEmail, roomType, checkIn, checkOut string, guests int) error
	SendContactNotice(name, email, subject, message string) error
}
