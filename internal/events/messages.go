package events

import (
	"encoding/json"
	"time"
)

// RecordSavedMessage announces that a record was appended to one of the
// persisted collections. Consumers fetch whatever detail they need from
// the store; the message carries only the key and the new record's id.
type RecordSavedMessage struct {
	Key       string    `json:"key"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecordSavedMessage(key string, id int64) *RecordSavedMessage {
	return &RecordSavedMessage{
		Key:       key,
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *RecordSavedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
