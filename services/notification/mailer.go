// File: services/notification/mailer.go
package notification

import (
	"context"
	"fmt"
	"time"
)

// Message is one outgoing email.
type Message struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// OTPMessage renders the registration code email.
func OTPMessage(email, code string, validFor time.Duration) Message {
	minutes := int(validFor.Minutes())
	return Message{
		To:      email,
		Subject: "Your AttendAI verification code",
		PlainText: fmt.Sprintf(
			"Your AttendAI verification code is %s. It expires in %d minutes.", code, minutes),
		HTML: fmt.Sprintf(
			"<p>Your AttendAI verification code is <strong>%s</strong>.</p><p>It expires in %d minutes.</p>", code, minutes),
	}
}
