package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trading-storefront/internal/contact/lifecycle"
	"trading-storefront/internal/contact/model"
	"trading-storefront/internal/logger"
	appErrors "trading-storefront/pkg/errors"
	"trading-storefront/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Repository is the persistence surface the contact service needs.
type Repository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	GetByID(ctx context.Context, messageID uuid.UUID) (*model.ContactMessage, error)
	List(ctx context.Context, filter *model.MessageFilter) ([]*model.ContactMessage, int64, error)
	UpdateStatus(ctx context.Context, messageID uuid.UUID, status model.Status) error
	Update(ctx context.Context, message *model.ContactMessage) error
	Delete(ctx context.Context, messageID uuid.UUID) error
}

type ContactService struct {
	repo Repository
}

func NewService(repo Repository) *ContactService {
	return &ContactService{repo: repo}
}

// SubmitMessage records a public contact form submission. New messages
// always start in the "new" status.
func (s *ContactService) SubmitMessage(ctx context.Context, request *model.SubmitMessageRequest) (*model.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	message := &model.ContactMessage{
		Name:    request.Name,
		Email:   request.Email,
		Phone:   request.Phone,
		Company: request.Company,
		Subject: request.Subject,
		Message: request.Message,
		Status:  model.StatusNew,
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}

	logger.Info("Contact message submitted",
		zap.String("message_id", message.ID.String()),
		zap.String("subject", message.Subject),
	)

	return message.ToResponse(), nil
}

// ListResult carries one page of messages plus the pagination that
// produced it.
type ListResult struct {
	Messages []*model.MessageResponse
	Total    int64
	Page     int
	Limit    int
}

func (s *ContactService) ListMessages(ctx context.Context, request *model.ListMessagesRequest) (*ListResult, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	filter := &model.MessageFilter{
		Page:  request.Page,
		Limit: request.Limit,
	}
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if request.Status != "" {
		status := model.Status(request.Status)
		filter.Status = &status
	}

	messages, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]*model.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, message.ToResponse())
	}

	return &ListResult{
		Messages: responses,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

// GetMessage fetches a single message for an admin. The first retrieval of
// a new message marks it read; re-fetching an already-read message is a
// no-op.
func (s *ContactService) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.MessageResponse, error) {
	message, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	if message.Status == model.StatusNew {
		if err := s.repo.UpdateStatus(ctx, messageID, model.StatusRead); err != nil {
			return nil, err
		}
		message.Status = model.StatusRead
	}

	return message.ToResponse(), nil
}

// UpdateMessage applies an explicit admin status change and, when response
// text is supplied, records it with a responded-at timestamp. Omitting the
// response text leaves a previously recorded response untouched.
func (s *ContactService) UpdateMessage(ctx context.Context, messageID uuid.UUID, request *model.UpdateMessageRequest) (*model.MessageResponse, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	message, err := s.repo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	newStatus := model.Status(request.Status)
	if err := lifecycle.ValidateStatusTransition(message.Status, newStatus); err != nil {
		return nil, err
	}
	message.Status = newStatus

	if request.ResponseMessage != nil && *request.ResponseMessage != "" {
		now := time.Now()
		message.ResponseMessage = request.ResponseMessage
		message.RespondedAt = &now
	}

	if err := s.repo.Update(ctx, message); err != nil {
		return nil, err
	}

	logger.Info("Contact message updated",
		zap.String("message_id", messageID.String()),
		zap.String("status", string(message.Status)),
	)

	return message.ToResponse(), nil
}

func (s *ContactService) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	if err := s.repo.Delete(ctx, messageID); err != nil {
		return err
	}

	logger.Info("Contact message deleted",
		zap.String("message_id", messageID.String()),
	)

	return nil
}
