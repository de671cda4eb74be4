package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"trading-storefront/internal/logger"
	"trading-storefront/internal/product/model"
	"trading-storefront/internal/product/service"
	appErrors "trading-storefront/pkg/errors"
	"trading-storefront/pkg/utils"
)

type ProductHandler struct {
	service *service.ProductService
}

func NewHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes wires the public catalog endpoints.
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
	}
}

// RegisterAdminRoutes wires the catalog write endpoints. The caller is
// responsible for wrapping the group with authentication and the admin
// role check.
func (h *ProductHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var request model.ListProductsRequest

	if err := c.ShouldBindQuery(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.ListProducts(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, "Products retrieved successfully",
		result.Products, len(result.Products), result.Total, result.Page, result.Limit)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var request model.CreateProductRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Description = utils.SanitizeText(request.Description)
	request.Category = utils.SanitizeString(request.Category)

	product, err := h.service.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var request model.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.Name != nil {
		sanitized := utils.SanitizeString(*request.Name)
		request.Name = &sanitized
	}
	if request.Description != nil {
		sanitized := utils.SanitizeText(*request.Description)
		request.Description = &sanitized
	}
	if request.Category != nil {
		sanitized := utils.SanitizeString(*request.Category)
		request.Category = &sanitized
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), productID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, appErrors.ErrProductNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		logger.Error("Unexpected error handling product request", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
