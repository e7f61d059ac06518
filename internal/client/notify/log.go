package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes notifications to the log. Used locally when no transport is configured.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, userID int64, text string, image []byte) error {
	n.logger.Info("Notification",
		zap.Int64("user_id", userID),
		zap.String("text", text),
		zap.Int("image_bytes", len(image)),
	)
	return nil
}

func (n *LogNotifier) Alert(_ context.Context, subject, body string) error {
	n.logger.Warn("Operator alert", zap.String("subject", subject), zap.String("body", body))
	return nil
}
