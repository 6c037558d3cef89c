package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "COMPONENT_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields every concrete event needs.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewComponentGeneratedEvent is emitted after a generation round trip has
// been persisted, so downstream consumers see only committed state.
func NewComponentGeneratedEvent(sessionID, userID, provider, model string) Event {
	return BaseEvent{
		Type: "COMPONENT_GENERATED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
			"provider":   provider,
			"model":      model,
		},
		OccurredAt: time.Now(),
	}
}

// NewSessionDeletedEvent is emitted once a session and its transcript are gone.
func NewSessionDeletedEvent(sessionID, userID string) Event {
	return BaseEvent{
		Type: "SESSION_DELETED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"user_id":    userID,
		},
		OccurredAt: time.Now(),
	}
}
