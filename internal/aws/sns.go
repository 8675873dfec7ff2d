package aws

import (
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/ppiankov/idlespectre/internal/notify"
)

// SNSAPI defines the subset of the SNS API used by the notifier.
type SNSAPI interface {
	Publish(ctx context.Context, input *sns.PublishInput, opts ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// TopicNotifier publishes notifications to a single SNS topic.
type TopicNotifier struct {
	client   SNSAPI
	topicARN string
}

var _ notify.Notifier = (*TopicNotifier)(nil)

// NewTopicNotifier creates a notifier for topicARN.
func NewTopicNotifier(client SNSAPI, topicARN string) *TopicNotifier {
	return &TopicNotifier{client: client, topicARN: topicARN}
}

// Send publishes msg. Delivery is not acknowledged beyond the API call.
func (n *TopicNotifier) Send(ctx context.Context, msg notify.Message) error {
	out, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: awssdk.String(n.topicARN),
		Subject:  awssdk.String(msg.Subject),
		Message:  awssdk.String(msg.Body),
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", n.topicARN, err)
	}
	slog.Debug("Published notification", "topic", n.topicARN, "message_id", awssdk.ToString(out.MessageId))
	return nil
}
