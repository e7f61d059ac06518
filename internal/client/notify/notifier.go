package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Notifier delivers a user-facing message, optionally with an image such as a QR code
type Notifier interface {
	Send(ctx context.Context, userID int64, text string, image []byte) error
}

// OperatorAlerter raises operational alerts to the team running the service
type OperatorAlerter interface {
	Alert(ctx context.Context, subject, body string) error
}

// Notification is the payload published to queue-based transports.
// Image is base64 encoded by encoding/json.
type Notification struct {
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Image     []byte    `json:"image,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newNotification(userID int64, text string, image []byte, now time.Time) Notification {
	return Notification{
		UserID:    userID,
		Text:      text,
		Image:     image,
		Timestamp: now.UTC(),
	}
}

func (n Notification) marshal() ([]byte, error) {
	body, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification: %w", err)
	}
	return body, nil
}

func userKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
