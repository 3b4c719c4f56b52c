package notifiers

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
)

func TestPubSubNotifierPublishes(t *testing.T) {
	// Use the in-memory Pub/Sub emulator.
	server := pstest.NewServer()
	defer server.Close()
	defer os.Unsetenv("PUBSUB_EMULATOR_HOST")
	os.Setenv("PUBSUB_EMULATOR_HOST", server.Addr)

	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	if _, err := client.CreateTopic(ctx, "pauses"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	n, err := newPubSubNotifier(ctx, NotifierConfig{
		ID:   "broadcast",
		Type: TypePubSub,
		PubSub: &PubSubNotifierConfig{
			ProjectID: "test-project",
			Topic:     "pauses",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newPubSubNotifier: %v", err)
	}

	err = n.Notify(ctx, NewEvent(ActionPause, "pihole.local", 30, true))
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
}
