package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/lenddesk/los/internal/domain/valueobject"
)

// snsPublisher is the slice of the SNS client the notifier uses; narrowed
// for test doubles.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSDecisionNotifier implements port.DecisionNotifier by publishing the
// decision outcome to an SNS topic.
type SNSDecisionNotifier struct {
	client   snsPublisher
	topicARN string
}

// NewSNSDecisionNotifier loads AWS configuration and builds a notifier for
// the given topic.
func NewSNSDecisionNotifier(ctx context.Context, region, topicARN string) (*SNSDecisionNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SNSDecisionNotifier{
		client:   sns.NewFromConfig(cfg),
		topicARN: topicARN,
	}, nil
}

// NewSNSDecisionNotifierWithClient builds a notifier around an existing
// client.
func NewSNSDecisionNotifierWithClient(client snsPublisher, topicARN string) *SNSDecisionNotifier {
	return &SNSDecisionNotifier{client: client, topicARN: topicARN}
}

type decisionNotification struct {
	ApplicationID string `json:"application_id"`
	Decision      string `json:"decision"`
}

// NotifyDecision publishes the decision outcome keyed by application ID.
func (n *SNSDecisionNotifier) NotifyDecision(
	ctx context.Context,
	applicationID string,
	decision valueobject.DecisionOutcome,
) error {
	payload, err := json.Marshal(decisionNotification{
		ApplicationID: applicationID,
		Decision:      string(decision),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, err = n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(fmt.Sprintf("Loan Application %s", decision)),
		Message:  aws.String(string(payload)),
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}
