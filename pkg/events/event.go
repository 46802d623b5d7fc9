package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RECOMMENDATION_RESOLVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by concrete event constructors.
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

const TypeRecommendationResolved = "RECOMMENDATION_RESOLVED"

// NewRecommendationResolved builds the event emitted after a session is
// consumed and its ranked results are final.
func NewRecommendationResolved(requestId string, payload map[string]interface{}) Event {
	data := map[string]interface{}{"request_id": requestId}
	for k, v := range payload {
		data[k] = v
	}
	return BaseEvent{
		Type:       TypeRecommendationResolved,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
