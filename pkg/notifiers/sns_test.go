package notifiers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSNSNotifierSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	n := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::pauses",
		client:   client,
		log:      noopLogger{},
	}

	err := n.Notify(context.Background(), Event{
		Action: ActionResume,
		Host:   "pihole.local",
	})
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::pauses" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["action"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != ActionResume {
		t.Fatalf("action attribute missing or wrong: %#v", attr)
	}
	if client.input.Message == nil || !strings.Contains(aws.ToString(client.input.Message), `"action":"resume"`) {
		t.Fatalf("Message missing action: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSNotifierError(t *testing.T) {
	client := &fakeSNSClient{err: errors.New("denied")}
	n := &snsNotifier{
		id:       "topic",
		typ:      TypeSNS,
		topicARN: "arn:aws:sns:::pauses",
		client:   client,
		log:      noopLogger{},
	}

	if err := n.Notify(context.Background(), Event{Action: ActionResume}); err == nil {
		t.Fatalf("expected publish error to propagate")
	}
}
