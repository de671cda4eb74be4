package model

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a contact message.
type Status string

const (
	StatusNew      Status = "new"      // Freshly submitted, not yet seen by an admin
	StatusRead     Status = "read"     // Opened by an admin at least once
	StatusReplied  Status = "replied"  // A response has been recorded
	StatusArchived Status = "archived" // Filed away
)

// ContactMessage is an inquiry submitted through the public contact form.
type ContactMessage struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone,omitempty"`
	Company         *string    `json:"company,omitempty"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	Status          Status     `json:"status"`
	ResponseMessage *string    `json:"response_message,omitempty"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MessageFilter narrows and pages the admin message listing.
type MessageFilter struct {
	Status *Status
	Page   int
	Limit  int
}
