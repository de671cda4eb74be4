package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trading-storefront/internal/database"
	"trading-storefront/internal/product/model"
	appErrors "trading-storefront/pkg/errors"
)

type ProductRepository struct {
	db *database.Database
}

func NewRepository(db *database.Database) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	if err := r.db.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.DB.WithContext(ctx).First(&product, "id = ?", productID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context, filter *model.ProductFilter) ([]*model.Product, int64, error) {
	var products []*model.Product
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&model.Product{})

	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}
	if filter.Featured != nil {
		db = db.Where("featured = ?", *filter.Featured)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now()

	result := r.db.DB.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"category":    product.Category,
			"price":       product.Price,
			"unit":        product.Unit,
			"image_url":   product.ImageURL,
			"featured":    product.Featured,
			"in_stock":    product.InStock,
			"updated_at":  product.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrProductNotFound
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).
		Where("id = ?", productID).
		Delete(&model.Product{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrProductNotFound
	}

	return nil
}
