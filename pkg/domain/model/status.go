package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusCheckID is a UUID-based identifier for StatusCheck
type StatusCheckID string

// NewStatusCheckID generates a new UUID v4 StatusCheckID
func NewStatusCheckID() StatusCheckID {
	return StatusCheckID(uuid.New().String())
}

// StatusCheck is a legacy health-probe record. Append-only; never updated
// or deleted.
type StatusCheck struct {
	ID         StatusCheckID `json:"id"`
	ClientName string        `json:"client_name"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NewStatusCheck constructs a StatusCheck for the given client.
func NewStatusCheck(clientName string, now time.Time) *StatusCheck {
	return &StatusCheck{
		ID:         NewStatusCheckID(),
		ClientName: clientName,
		Timestamp:  now,
	}
}
