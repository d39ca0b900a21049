package notify

import (
	"encoding/json"

	"github.com/kingresort/booking-api/internal/mailer"
	"github.com/kingresort/booking-api/pkg/events"
	"github.com/kingresort/booking-api/pkg/logger"
)

// Consumer turns booking and contact events into outbound emails. Every send
// is best effort: a failed email is logged and dropped, it never reaches the
// request that produced the event.
type Consumer struct {
	bus    events.Subscriber
	mailer mailer.Service
}

func NewConsumer(bus events.Subscriber, m mailer.Service) *Consumer {
	return &Consumer{bus: bus, mailer: m}
}

// Start subscribes to the notification-relevant subjects. Returns after the
// subscriptions are registered; delivery happens on the bus's goroutines.
func (c *Consumer) Start() error {
	if err := c.bus.QueueSubscribe(events.BookingCreated, "notify", c.handleBookingCreated); err != nil {
		return err
	}
	return c.bus.QueueSubscribe(events.ContactReceived, "notify", c.handleContactReceived)
}

func (c *Consumer) handleBookingCreated(msg *events.Message) {
	var event events.BookingCreatedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode booking created event", "error", err)
		return
	}

	if err := c.mailer.SendBookingConfirmation(
		event.GuestEmail, event.GuestName,
		event.RoomType, event.CheckIn, event.CheckOut, event.Guests,
	); err != nil {
		logger.Error("Guest confirmation email failed", "error", err, "booking_id", event.BookingID)
	}

	if err := c.mailer.SendBookingAlert(
		event.GuestName, event.GuestEmail,
		event.RoomType, event.CheckIn, event.CheckOut, event.Guests,
	); err != nil {
		logger.Error("Hotel alert email failed", "error", err, "booking_id", event.BookingID)
	}
}

func (c *Consumer) handleContactReceived(msg *events.Message) {
	var event events.ContactReceivedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode contact received event", "error", err)
		return
	}

	if err := c.mailer.SendContactNotice(event.Name, event.Email, event.Subject, event.Message); err != nil {
		logger.Error("Contact notice email failed", "error", err, "contact_id", event.ContactID)
	}
}
