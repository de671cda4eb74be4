package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trading-storefront/internal/logger"
	"trading-storefront/internal/product/model"
	appErrors "trading-storefront/pkg/errors"
	"trading-storefront/pkg/utils"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Repository is the persistence surface the product service needs.
type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, productID uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]*model.Product, int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

type ProductService struct {
	repo Repository
}

func NewService(repo Repository) *ProductService {
	return &ProductService{repo: repo}
}

// ListResult carries one page of products plus the pagination that
// produced it.
type ListResult struct {
	Products []*model.Product
	Total    int64
	Page     int
	Limit    int
}

func (s *ProductService) CreateProduct(ctx context.Context, request *model.CreateProductRequest) (*model.Product, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	inStock := true
	if request.InStock != nil {
		inStock = *request.InStock
	}

	product := &model.Product{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		Price:       request.Price,
		Unit:        request.Unit,
		ImageURL:    request.ImageURL,
		Featured:    request.Featured,
		InStock:     inStock,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("category", product.Category),
	)

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*model.Product, error) {
	return s.repo.GetByID(ctx, productID)
}

func (s *ProductService) ListProducts(ctx context.Context, request *model.ListProductsRequest) (*ListResult, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	filter := &model.ProductFilter{
		Featured: request.Featured,
		Search:   request.Search,
		Page:     request.Page,
		Limit:    request.Limit,
	}
	if request.Category != "" {
		filter.Category = &request.Category
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

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, productID uuid.UUID, request *model.UpdateProductRequest) (*model.Product, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", err.Error(), err)
	}

	product, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		product.Name = *request.Name
	}
	if request.Description != nil {
		product.Description = *request.Description
	}
	if request.Category != nil {
		product.Category = *request.Category
	}
	if request.Price != nil {
		product.Price = *request.Price
	}
	if request.Unit != nil {
		product.Unit = request.Unit
	}
	if request.ImageURL != nil {
		product.ImageURL = request.ImageURL
	}
	if request.Featured != nil {
		product.Featured = *request.Featured
	}
	if request.InStock != nil {
		product.InStock = *request.InStock
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}

	logger.Info("Product deleted",
		zap.String("product_id", productID.String()),
	)

	return nil
}
