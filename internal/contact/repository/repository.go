package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-storefront/internal/contact/model"
	"trading-storefront/internal/database"
	appErrors "trading-storefront/pkg/errors"
)

type ContactRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	message.ID = uuid.New()
	message.CreatedAt = time.Now()
	message.UpdatedAt = time.Now()
	if message.Status == "" {
		message.Status = model.StatusNew
	}

	if err := r.db.DB.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, messageID uuid.UUID) (*model.ContactMessage, error) {
	var message model.ContactMessage
	err := r.db.DB.WithContext(ctx).First(&message, "id = ?", messageID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return &message, nil
}

func (r *ContactRepository) List(ctx context.Context, filter *model.MessageFilter) ([]*model.ContactMessage, int64, error) {
	var messages []*model.ContactMessage
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&model.ContactMessage{})

	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contact messages: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contact messages: %w", err)
	}

	return messages, total, nil
}

func (r *ContactRepository) UpdateStatus(ctx context.Context, messageID uuid.UUID, status model.Status) error {
	result := r.db.DB.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", messageID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update message status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrMessageNotFound
	}

	return nil
}

// Update persists status, response text and responded-at in one write.
// CreatedAt is never touched.
func (r *ContactRepository) Update(ctx context.Context, message *model.ContactMessage) error {
	message.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("id = ?", message.ID).
		Updates(map[string]interface{}{
			"status":           string(message.Status),
			"response_message": message.ResponseMessage,
			"responded_at":     message.RespondedAt,
			"updated_at":       message.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrMessageNotFound
	}

	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, messageID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", messageID).
		Delete(&model.ContactMessage{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete contact message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrMessageNotFound
	}

	return nil
}
