package model

import "time"

// ContactMessage is an append-only record of a contact form submission.
type ContactMessage struct {
	ID        uint64    `json:"id"`        // contact_messages.id
	Name      string    `json:"name"`      // contact_messages.name
	Email     string    `json:"email"`     // contact_messages.email
	Subject   string    `json:"subject"`   // contact_messages.subject
	Message   string    `json:"message"`   // contact_messages.message
	CreatedAt time.Time `json:"createdAt"` // contact_messages.created_at
}

// NewContactMessage carries the caller-supplied fields of a message.
type NewContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}
