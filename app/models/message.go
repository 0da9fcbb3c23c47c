package models

import "time"

type Message struct {
	ID          string    `json:"id"`
	PlantelID   *string   `json:"plantel_id,omitempty"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`

	Sender    *User `json:"sender,omitempty"`
	Recipient *User `json:"recipient,omitempty"`
}
