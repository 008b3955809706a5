package model

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// EventBatch is the analytics payload container posted to the event sink.
// Individual payloads are opaque JSON documents owned by the emitting
// player; the SDK only guarantees the container contract.
type EventBatch struct {
	SessionID    string            `json:"sessionId"`
	DispatchTime int64             `json:"dispatchTime"`
	Payloads     []json.RawMessage `json:"payload"`
}

// EventTypes peeks the EventType member of each payload without decoding the
// full documents. Payloads without one yield an empty string at their index.
func (b *EventBatch) EventTypes() []string {
	types := make([]string, len(b.Payloads))
	for i, p := range b.Payloads {
		types[i] = gjson.GetBytes(p, "EventType").String()
	}

	return types
}
