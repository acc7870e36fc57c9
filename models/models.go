package models

import "encoding/json"

type User struct {
	Id       string
	Email    string
	Password string
	Name     string
}

// Note timestamps are millisecond epoch values to match what the mobile
// client stores locally. Location and SensorData are opaque to the server:
// the client owns their schema, we only round-trip them.
type Note struct {
	Id         string          `json:"id"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	CreatedAt  int64           `json:"createdAt"`
	UpdatedAt  int64           `json:"updatedAt"`
	IsSynced   bool            `json:"isSynced"`
	Tags       []string        `json:"tags"`
	Location   json.RawMessage `json:"location"`
	SensorData json.RawMessage `json:"sensorData"`
	UserId     string          `json:"userId"`
}

// NoteUpdate is a presence-checked partial update: a nil field means the
// client omitted it and the stored value is kept. An empty string or empty
// tag list is an explicit value, not an omission.
type NoteUpdate struct {
	Title      *string
	Content    *string
	Tags       *[]string
	Location   json.RawMessage
	SensorData json.RawMessage
}
