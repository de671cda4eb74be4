package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-storefront/internal/logger"
	"trading-storefront/internal/user/model"
	"trading-storefront/internal/user/service"
	appErrors "trading-storefront/pkg/errors"
	"trading-storefront/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service *service.UserService
}

func NewHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	{
		user.POST("/register", h.Register)
		user.POST("/login", h.Login)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var request model.RegisterRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)
	request.Name = utils.SanitizeString(request.Name)
	if request.Phone != nil {
		sanitized := utils.SanitizePhone(*request.Phone)
		request.Phone = &sanitized
	}
	if request.Company != nil {
		sanitized := utils.SanitizeString(*request.Company)
		request.Company = &sanitized
	}

	authResponse, err := h.service.Register(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", authResponse)
}

func (h *UserHandler) Login(c *gin.Context) {
	var request model.LoginRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Email = utils.SanitizeEmail(request.Email)

	authResponse, err := h.service.Login(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", authResponse)
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, appErrors.ErrUserAlreadyExists):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, appErrors.ErrUserNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		logger.Error("Unexpected error handling user request", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
