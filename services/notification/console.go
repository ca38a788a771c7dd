package notification

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// ConsoleMailer logs messages instead of sending them. Used when no
// SendGrid key is configured.
type ConsoleMailer struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []Message
}

func NewConsoleMailer(logger *zap.Logger) *ConsoleMailer {
	return &ConsoleMailer{logger: logger}
}

func (c *ConsoleMailer) Send(_ context.Context, msg Message) error {
	c.logger.Info("Email (console)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.PlainText))

	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	return nil
}

// Sent returns every message logged so far.
func (c *ConsoleMailer) Sent() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message{}, c.sent...)
}
