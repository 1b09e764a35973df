package notify

import (
	"context"
	"log/slog"
)

// ResetSink receives the plaintext password-reset token exactly once
// for out-of-band delivery. The plaintext is never persisted.
type ResetSink interface {
	DeliverResetToken(ctx context.Context, email, rawToken string) error
}

// LogSink surfaces reset tokens in the server log instead of sending
// them anywhere. Email delivery is deliberately out of scope.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "reset_sink")}
}

func (s *LogSink) DeliverResetToken(ctx context.Context, email, rawToken string) error {
	s.logger.InfoContext(ctx, "password reset token issued", "email", email, "token", rawToken)
	return nil
}
