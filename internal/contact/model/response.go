package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           *string    `json:"phone"`
	Company         *string    `json:"company"`
	Subject         string     `json:"subject"`
	Message         string     `json:"message"`
	Status          Status     `json:"status"`
	ResponseMessage *string    `json:"response_message"`
	RespondedAt     *time.Time `json:"responded_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (m *ContactMessage) ToResponse() *MessageResponse {
	return &MessageResponse{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Company:         m.Company,
		Subject:         m.Subject,
		Message:         m.Message,
		Status:          m.Status,
		ResponseMessage: m.ResponseMessage,
		RespondedAt:     m.RespondedAt,
		CreatedAt:       m.CreatedAt,
	}
}
