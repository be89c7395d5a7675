package events

import (
	"encoding/json"
	"time"
)

// Envelope is the shared event shape published on the in-process bus.
// Outbox rows store the marshaled envelope as their payload.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	SourceService string          `json:"source_service"`
	OccurredAt    time.Time       `json:"occurred_at"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	Data          json.RawMessage `json:"data"`
}
