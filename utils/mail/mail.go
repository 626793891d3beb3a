package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/namankalra/TicketReservation/config"
	"github.com/namankalra/TicketReservation/logger"
	gomail "gopkg.in/gomail.v2"
)

const ticketConfirmationTemplate = "templates/email/ticket_confirmation.html"

func init() {
	config.LoadEnv()
}

// TicketConfirmationData feeds the confirmation email template.
type TicketConfirmationData struct {
	PassengerName  string
	UniqueTicketID string
	TravelDate     string
	TravelMode     string
	SeatNumber     string
	Price          string
	ViewTicketURL  string
	CancelURL      string
}

// IsConfigured reports whether outgoing mail is set up. Booking works fine
// without it; the view/cancel URLs are always in the API response too.
func IsConfigured() bool {
	return os.Getenv("SMTP_HOST") != ""
}

// SendTicketConfirmation emails the booking agent the ticket details with
// the passenger view/cancel URLs to forward out-of-band.
func SendTicketConfirmation(toEmail string, data TicketConfirmationData) error {
	subject := fmt.Sprintf("Ticket %s confirmed", data.UniqueTicketID)
	return sendEmail(toEmail, subject, ticketConfirmationTemplate, data)
}

func sendEmail(toEmail, subject, templatePath string, data interface{}) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)

	t, err := template.ParseFiles(templatePath)
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to parse email template %s: %v", templatePath, err)
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		logger.ErrorLogger.Errorf("Failed to execute email template %s: %v", templatePath, err)
		return fmt.Errorf("failed to execute email template: %w", err)
	}
	mailer.SetBody("text/html", body.String())

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		logger.ErrorLogger.Errorf("Invalid SMTP port: %v", err)
		return fmt.Errorf("invalid SMTP port: %w", err)
	}

	smtpHost := os.Getenv("SMTP_HOST")
	dialer := gomail.NewDialer(smtpHost, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	dialer.TLSConfig = &tls.Config{ServerName: smtpHost}

	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send email to %s: %v", toEmail, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.InfoLogger.Infof("Sent confirmation email to %s", toEmail)
	return nil
}
