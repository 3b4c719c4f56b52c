package notifiers

import "context"

// Notifier announces an event to a downstream sink (webhook, SQS, etc).
type Notifier interface {
	ID() string
	Type() string
	Notify(ctx context.Context, evt Event) error
}
