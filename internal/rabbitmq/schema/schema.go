package schema

import (
	"encoding/json"
	"time"
)

const (
	EventRegistered = "account.registered"
	EventActivated  = "account.activated"
)

type AccountEvent struct {
	Type   string    `json:"type"`
	UserID int64     `json:"userId"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

func (e *AccountEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

func (e *AccountEvent) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
