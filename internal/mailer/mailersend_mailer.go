package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

type MailerSendClient struct {
	client     *mailersend.Mailersend
	from       mailersend.From
	hotelInbox string
	enabled    bool
}

func NewMailerSend(apiKey, fromName, fromEmail, hotelInbox string) *MailerSendClient {
	m := &MailerSendClient{
		enabled:    apiKey != "" && fromEmail != "",
		hotelInbox: hotelInbox,
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}

	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}

	return m
}

func (m *MailerSendClient) SendBookingConfirmation(toEmail, toName, roomType, checkIn, checkOut string, guests int) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := "Your booking at King Resort is confirmed"
	html := fmt.Sprintf(`
		<h2>Thank you for booking with King Resort!</h2>
		<p>Dear %s,</p>
		<p>We're thrilled to welcome you. Your reservation details:</p>
		<ul>
			<li>Room: <strong>%s</strong></li>
			<li>Check-in: %s</li>
			<li>Check-out: %s</li>
			<li>Guests: %d</li>
		</ul>
		<p>We'll be in touch if we need anything else. See you soon!</p>
		<p>– King Resort Team</p>
	`, toName, roomType, checkIn, checkOut, guests)

	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for booking with King Resort!\n\nRoom: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d\n\n– King Resort Team",
		toName, roomType, checkIn, checkOut, guests)

	return m.sendEmail(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendBookingAlert(guestName, guestEmail, roomType, checkIn, checkOut string, guests int) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	subject := fmt.Sprintf("New booking from %s", guestName)
	text := fmt.Sprintf(
		"A new reservation has been made:\n\nName: %s\nEmail: %s\nRoom type: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d",
		guestName, guestEmail, roomType, checkIn, checkOut, guests)

	return m.sendEmail(m.hotelInbox, "", subject, text, "")
}

func (m *MailerSendClient) SendContactNotice(name, email, subject, message string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend not configured")
	}

	text := fmt.Sprintf("New contact form message:\n\nFrom: %s <%s>\nSubject: %s\n\n%s", name, email, subject, message)

	return m.sendEmail(m.hotelInbox, "", "Contact form: "+subject, text, "")
}

func (m *MailerSendClient) sendEmail(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)

	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
