package notifier

import "context"

// LogChannel пишет подтверждение в лог вместо отправки
type LogChannel struct {
	log Logger
}

// NewLogChannel создает канал логирования
func NewLogChannel(log Logger) *LogChannel {
	return &LogChannel{log: log}
}

func (c *LogChannel) Name() string { return "log" }

// Send логирует письмо целиком
func (c *LogChannel) Send(_ context.Context, msg *Message) error {
	c.log.Info("--- Confirmation email (simulation) ---\nTo: %s\nSubject: %s\n\n%s\n--------------------------------------",
		msg.To, msg.Subject, msg.Body)
	return nil
}
