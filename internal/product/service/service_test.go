package service

import (
	"context"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-storefront/internal/logger"
	"trading-storefront/internal/product/model"
	appErrors "trading-storefront/pkg/errors"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

// mockProductRepository is a map-backed in-memory implementation of Repository.
type mockProductRepository struct {
	products map[uuid.UUID]*model.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[uuid.UUID]*model.Product)}
}

func (r *mockProductRepository) Create(ctx context.Context, product *model.Product) error {
	product.ID = uuid.New()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *mockProductRepository) GetByID(ctx context.Context, productID uuid.UUID) (*model.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, appErrors.ErrProductNotFound
	}
	copied := *product
	return &copied, nil
}

func (r *mockProductRepository) List(ctx context.Context, filter *model.ProductFilter) ([]*model.Product, int64, error) {
	var matched []*model.Product
	for _, product := range r.products {
		if filter.Category != nil && product.Category != *filter.Category {
			continue
		}
		if filter.Featured != nil && product.Featured != *filter.Featured {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *mockProductRepository) Update(ctx context.Context, product *model.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return appErrors.ErrProductNotFound
	}
	stored := *product
	r.products[product.ID] = &stored
	return nil
}

func (r *mockProductRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	if _, ok := r.products[productID]; !ok {
		return appErrors.ErrProductNotFound
	}
	delete(r.products, productID)
	return nil
}

func createRequest() *model.CreateProductRequest {
	return &model.CreateProductRequest{
		Name:        "Copper Cable Drum",
		Description: "25mm armored copper cable, 500m drum.",
		Category:    "electrical",
		Price:       1250.00,
	}
}

func TestCreateProductDefaults(t *testing.T) {
	svc := NewService(newMockProductRepository())

	product, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.True(t, product.InStock)
	assert.False(t, product.Featured)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.CreateProduct(context.Background(), &model.CreateProductRequest{})
	require.Error(t, err)

	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdateProductPartial(t *testing.T) {
	svc := NewService(newMockProductRepository())

	created, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)

	price := 1395.50
	featured := true
	updated, err := svc.UpdateProduct(context.Background(), created.ID, &model.UpdateProductRequest{
		Price:    &price,
		Featured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, price, updated.Price)
	assert.True(t, updated.Featured)
	assert.Equal(t, created.Name, updated.Name)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.UpdateProduct(context.Background(), uuid.New(), &model.UpdateProductRequest{})
	assert.ErrorIs(t, err, appErrors.ErrProductNotFound)
}

func TestDeleteProductTwice(t *testing.T) {
	svc := NewService(newMockProductRepository())

	created, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), created.ID), appErrors.ErrProductNotFound)
}

func TestListProductsFilters(t *testing.T) {
	svc := NewService(newMockProductRepository())

	_, err := svc.CreateProduct(context.Background(), createRequest())
	require.NoError(t, err)

	other := createRequest()
	other.Category = "plumbing"
	other.Featured = true
	_, err = svc.CreateProduct(context.Background(), other)
	require.NoError(t, err)

	byCategory, err := svc.ListProducts(context.Background(), &model.ListProductsRequest{Category: "plumbing"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byCategory.Total)

	featured := true
	byFeatured, err := svc.ListProducts(context.Background(), &model.ListProductsRequest{Featured: &featured})
	require.NoError(t, err)
	assert.Equal(t, int64(1), byFeatured.Total)

	all, err := svc.ListProducts(context.Background(), &model.ListProductsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)
	assert.Equal(t, 1, all.Page)
	assert.Equal(t, 10, all.Limit)
}
