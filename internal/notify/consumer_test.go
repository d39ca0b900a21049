package notify_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/kingresort/booking-api/internal/notify"
	"github.com/kingresort/booking-api/pkg/events"
)

type mockBus struct {
	handlers map[string]func(*events.Message)
}

func newMockBus() *mockBus {
	return &mockBus{handlers: make(map[string]func(*events.Message))}
}

func (m *mockBus) Subscribe(subject string, handler func(*events.Message)) error {
	m.handlers[subject] = handler
	return nil
}

func (m *mockBus) QueueSubscribe(subject, _ string, handler func(*events.Message)) error {
	m.handlers[subject] = handler
	return nil
}

func (m *mockBus) Close() error { return nil }

func (m *mockBus) deliver(t *testing.T, subject string, payload interface{}) {
	t.Helper()
	handler, ok := m.handlers[subject]
	if !ok {
		t.Fatalf("no handler subscribed for %q", subject)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	handler(&events.Message{Subject: subject, Data: data, Timestamp: time.Now()})
}

type mockMailer struct {
	confirmations int
	alerts        int
	notices       int
	sendErr       error
}

func (m *mockMailer) SendBookingConfirmation(_, _, _, _, _ string, _ int) error {
	m.confirmations++
	return m.sendErr
}

func (m *mockMailer) SendBookingAlert(_, _, _, _, _ string, _ int) error {
	m.alerts++
	return m.sendErr
}

func (m *mockMailer) SendContactNotice(_, _, _, _ string) error {
	m.notices++
	return m.sendErr
}

func TestBookingCreatedSendsBothEmails(t *testing.T) {
	bus := newMockBus()
	m := &mockMailer{}
	if err := notify.NewConsumer(bus, m).Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	bus.deliver(t, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:  1,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		Guests:     2,
		RoomType:   "Deluxe Ocean View",
	})

	if m.confirmations != 1 || m.alerts != 1 {
		t.Errorf("confirmations = %d, alerts = %d, want 1 and 1", m.confirmations, m.alerts)
	}
}

func TestMailerFailureDoesNotStopDelivery(t *testing.T) {
	bus := newMockBus()
	m := &mockMailer{sendErr: errors.New("smtp down")}
	if err := notify.NewConsumer(bus, m).Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Both sends must still be attempted; failures are log-only.
	bus.deliver(t, events.BookingCreated, events.BookingCreatedEvent{BookingID: 2, GuestEmail: "x@example.com"})
	if m.confirmations != 1 || m.alerts != 1 {
		t.Errorf("confirmations = %d, alerts = %d, want 1 and 1", m.confirmations, m.alerts)
	}
}

func TestContactReceivedSendsNotice(t *testing.T) {
	bus := newMockBus()
	m := &mockMailer{}
	if err := notify.NewConsumer(bus, m).Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	bus.deliver(t, events.ContactReceived, events.ContactReceivedEvent{
		ContactID: 7,
		Name:      "Grace Hopper",
		Email:     "grace@example.com",
		Subject:   "Late checkout",
	})

	if m.notices != 1 {
		t.Errorf("notices = %d, want 1", m.notices)
	}
}

func TestMalformedEventIsDropped(t *testing.T) {
	bus := newMockBus()
	m := &mockMailer{}
	if err := notify.NewConsumer(bus, m).Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	handler := bus.handlers[events.BookingCreated]
	handler(&events.Message{Subject: events.BookingCreated, Data: []byte("{not json"), Timestamp: time.Now()})

	if m.confirmations != 0 || m.alerts != 0 {
		t.Error("malformed event should not trigger emails")
	}
}
