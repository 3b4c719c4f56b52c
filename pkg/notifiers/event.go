package notifiers

import "time"

// Actions carried by events.
const (
	ActionPause  = "pause"
	ActionResume = "resume"
)

// Event is the payload announced downstream after an attempt against the
// appliance.
type Event struct {
	Action          string    `json:"action"`
	Host            string    `json:"host"`
	DurationSeconds float64   `json:"duration_seconds,omitempty"`
	Succeeded       bool      `json:"succeeded"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewEvent constructs an Event stamped with the current time.
func NewEvent(action, host string, durationSeconds float64, succeeded bool) Event {
	return Event{
		Action:          action,
		Host:            host,
		DurationSeconds: durationSeconds,
		Succeeded:       succeeded,
		OccurredAt:      time.Now().UTC(),
	}
}
