package mailer

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	Host       string
	Port       int
	From       string
	User       string
	Pass       string
	UseTLS     bool
	HotelInbox string
}

func NewSMTPMailer(host string, port int, from, user, pass string, useTLS bool, hotelInbox string) *SMTPMailer {
	return &SMTPMailer{
		Host:       strings.TrimSpace(host),
		Port:       port,
		From:       strings.TrimSpace(from),
		User:       strings.TrimSpace(user),
		Pass:       strings.TrimSpace(pass),
		UseTLS:     useTLS,
		HotelInbox: strings.TrimSpace(hotelInbox),
	}
}

func (s *SMTPMailer) SendBookingConfirmation(toEmail, toName, roomType, checkIn, checkOut string, guests int) error {
	subject := "Your booking at King Resort is confirmed"
	text := fmt.Sprintf(
		"Dear %s,\n\nThank you for booking with King Resort!\n\nRoom: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d\n\n– King Resort Team",
		toName, roomType, checkIn, checkOut, guests)
	html := fmt.Sprintf(`
		<h2>Thank you for booking with King Resort!</h2>
		<p>Dear %s,</p>
		<ul>
			<li>Room: <strong>%s</strong></li>
			<li>Check-in: %s</li>
			<li>Check-out: %s</li>
			<li>Guests: %d</li>
		</ul>
		<p>See you soon!</p>
	`, toName, roomType, checkIn, checkOut, guests)

	return s.sendEmail(toEmail, subject, text, html)
}

func (s *SMTPMailer) SendBookingAlert(guestName, guestEmail, roomType, checkIn, checkOut string, guests int) error {
	subject := fmt.Sprintf("New booking from %s", guestName)
	text := fmt.Sprintf(
		"A new reservation has been made:\n\nName: %s\nEmail: %s\nRoom type: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d",
		guestName, guestEmail, roomType, checkIn, checkOut, guests)

	return s.sendEmail(s.HotelInbox, subject, text, "")
}

func (s *SMTPMailer) SendContactNotice(name, email, subject, message string) error {
	text := fmt.Sprintf("New contact form message:\n\nFrom: %s <%s>\nSubject: %s\n\n%s", name, email, subject, message)
	return s.sendEmail(s.HotelInbox, "Contact form: "+subject, text, "")
}

func (s *SMTPMailer) sendEmail(toEmail, subject, text, html string) error {
	toEmail = strings.TrimSpace(toEmail)
	if toEmail == "" {
		return fmt.Errorf("empty recipient email")
	}

	var buf bytes.Buffer
	boundary := "mixed-boundary"

	fmt.Fprintf(&buf, "From: %s\r\n", s.From)
	fmt.Fprintf(&buf, "To: %s\r\n", toEmail)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&buf, "%s\r\n\r\n", text)

	if html != "" {
		fmt.Fprintf(&buf, "--%s\r\n", boundary)
		fmt.Fprintf(&buf, "Content-Type: text/html; charset=utf-8\r\n\r\n")
		fmt.Fprintf(&buf, "%s\r\n\r\n", html)
	}

	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	// Mailpit or development SMTP (no auth, no TLS)
	if !s.UseTLS && s.User == "" {
		return smtp.SendMail(addr, nil, s.From, []string{toEmail}, buf.Bytes())
	}

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	// Try plain SMTP first (with STARTTLS if supported)
	if err := smtp.SendMail(addr, auth, s.From, []string{toEmail}, buf.Bytes()); err == nil {
		return nil
	}

	// Fallback to implicit TLS (port 465)
	if s.UseTLS {
		tlsCfg := &tls.Config{ServerName: s.Host}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		if s.User != "" {
			if err := c.Auth(auth); err != nil {
				return err
			}
		}

		if err := c.Mail(s.From); err != nil {
			return err
		}
		if err := c.Rcpt(toEmail); err != nil {
			return err
		}

		w, err := c.Data()
		if err != nil {
			return err
		}

		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}

		return w.Close()
	}

	return fmt.Errorf("smtp send failed")
}
