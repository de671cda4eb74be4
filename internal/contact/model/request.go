package model

type SubmitMessageRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=20"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Subject string  `json:"subject" validate:"required,max=200"`
	Message string  `json:"message" validate:"required,max=2000"`
}

type UpdateMessageRequest struct {
	Status          string  `json:"status" validate:"required,contact_status"`
	ResponseMessage *string `json:"response_message" validate:"omitempty,max=2000"`
}

type ListMessagesRequest struct {
	Status string `form:"status" validate:"omitempty,contact_status"`
	Page   int    `form:"page" validate:"omitempty,min=1"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
}
