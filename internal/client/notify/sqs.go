package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the subset of the SQS client used for publishing
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSNotifier publishes notifications to a queue drained by the chat delivery worker
type SQSNotifier struct {
	client   SQSAPI
	queueURL string
	now      func() time.Time
}

// NewSQSNotifier creates a notifier for queueURL
func NewSQSNotifier(client SQSAPI, queueURL string) *SQSNotifier {
	return &SQSNotifier{client: client, queueURL: queueURL, now: time.Now}
}

func (n *SQSNotifier) Send(ctx context.Context, userID int64, text string, image []byte) error {
	body, err := newNotification(userID, text, image, n.now()).marshal()
	if err != nil {
		return err
	}

	_, err = n.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(n.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"UserID": {
				StringValue: aws.String(userKey(userID)),
				DataType:    aws.String("Number"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to queue notification: %w", err)
	}
	return nil
}
