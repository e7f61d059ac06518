package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "user.notification."

// AMQPChannel is the subset of *amqp091.Channel used for publishing
type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQNotifier publishes notifications to a durable topic exchange,
// routed by "user.notification.<userID>".
type RabbitMQNotifier struct {
	conn     *amqp091.Connection
	channel  AMQPChannel
	exchange string
	now      func() time.Time

	declareOnce sync.Once
	declareErr  error
}

// NewRabbitMQNotifier dials amqpURL and opens a publishing channel
func NewRabbitMQNotifier(amqpURL, exchange string) (*RabbitMQNotifier, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	n := NewRabbitMQNotifierWithChannel(ch, exchange)
	n.conn = conn
	return n, nil
}

// NewRabbitMQNotifierWithChannel builds a notifier over an existing channel
func NewRabbitMQNotifierWithChannel(ch AMQPChannel, exchange string) *RabbitMQNotifier {
	return &RabbitMQNotifier{channel: ch, exchange: exchange, now: time.Now}
}

func (n *RabbitMQNotifier) Send(ctx context.Context, userID int64, text string, image []byte) error {
	n.declareOnce.Do(func() {
		n.declareErr = n.channel.ExchangeDeclare(n.exchange, "topic", true, false, false, false, nil)
	})
	if n.declareErr != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", n.exchange, n.declareErr)
	}

	body, err := newNotification(userID, text, image, n.now()).marshal()
	if err != nil {
		return err
	}

	err = n.channel.PublishWithContext(ctx, n.exchange, routingKeyPrefix+userKey(userID), false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    n.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Close releases the channel and connection when the notifier owns them
func (n *RabbitMQNotifier) Close() {
	if ch, ok := n.channel.(*amqp091.Channel); ok && ch != nil {
		ch.Close()
	}
	if n.conn != nil {
		n.conn.Close()
	}
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}
