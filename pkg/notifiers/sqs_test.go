package notifiers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-123")}, nil
}

func TestSQSNotifierSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	n := &sqsNotifier{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	err := n.Notify(context.Background(), Event{
		Action:          ActionPause,
		Host:            "pihole.local",
		DurationSeconds: 30,
		Succeeded:       true,
	})
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://example.com/queue" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["action"]
	if !ok || attr.StringValue == nil || aws.ToString(attr.StringValue) != ActionPause {
		t.Fatalf("action attribute missing or wrong: %#v", attr)
	}
	if attr.DataType == nil || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("DataType should be String, got %#v", attr.DataType)
	}
	if client.input.MessageBody == nil || !strings.Contains(aws.ToString(client.input.MessageBody), `"action":"pause"`) {
		t.Fatalf("MessageBody missing action: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSNotifierError(t *testing.T) {
	client := &fakeSQSClient{err: errors.New("throttled")}
	n := &sqsNotifier{
		id:       "queue",
		typ:      TypeSQS,
		queueURL: "https://example.com/queue",
		client:   client,
		log:      noopLogger{},
	}

	if err := n.Notify(context.Background(), Event{Action: ActionPause}); err == nil {
		t.Fatalf("expected send error to propagate")
	}
}
