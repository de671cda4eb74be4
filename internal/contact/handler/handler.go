package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"trading-storefront/internal/contact/model"
	"trading-storefront/internal/contact/service"
	"trading-storefront/internal/logger"
	appErrors "trading-storefront/pkg/errors"
	"trading-storefront/pkg/utils"
)

type ContactHandler struct {
	service *service.ContactService
}

func NewHandler(service *service.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes wires the public contact form endpoint.
func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/contact", h.SubmitMessage)
}

// RegisterAdminRoutes wires the admin message management endpoints. The
// caller is responsible for wrapping the group with authentication and the
// admin role check.
func (h *ContactHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	messages := router.Group("/contact/messages")
	{
		messages.GET("", h.ListMessages)
		messages.GET("/:id", h.GetMessage)
		messages.PUT("/:id", h.UpdateMessage)
		messages.DELETE("/:id", h.DeleteMessage)
	}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var request model.SubmitMessageRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Email = utils.SanitizeEmail(request.Email)
	request.Subject = utils.SanitizeString(request.Subject)
	request.Message = utils.SanitizeText(request.Message)
	if request.Phone != nil {
		sanitized := utils.SanitizePhone(*request.Phone)
		request.Phone = &sanitized
	}
	if request.Company != nil {
		sanitized := utils.SanitizeString(*request.Company)
		request.Company = &sanitized
	}

	message, err := h.service.SubmitMessage(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated,
		"Your message has been sent successfully. We will get back to you soon.", message)
}

func (h *ContactHandler) ListMessages(c *gin.Context) {
	var request model.ListMessagesRequest

	if err := c.ShouldBindQuery(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	result, err := h.service.ListMessages(c.Request.Context(), &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.ListResponse(c, http.StatusOK, "Messages retrieved successfully",
		result.Messages, len(result.Messages), result.Total, result.Page, result.Limit)
}

func (h *ContactHandler) GetMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	message, err := h.service.GetMessage(c.Request.Context(), messageID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message retrieved successfully", message)
}

func (h *ContactHandler) UpdateMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var request model.UpdateMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if request.ResponseMessage != nil {
		sanitized := utils.SanitizeText(*request.ResponseMessage)
		request.ResponseMessage = &sanitized
	}

	message, err := h.service.UpdateMessage(c.Request.Context(), messageID, &request)
	if err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Message updated successfully", message)
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), messageID); err != nil {
		respondWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Contact message deleted successfully", nil)
}

func respondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var appErr *appErrors.AppError

	switch {
	case errors.Is(err, appErrors.ErrMessageNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrInvalidStatus):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &appErr):
		utils.ErrorResponse(c, http.StatusBadRequest, appErr.Message)
	default:
		logger.Error("Unexpected error handling contact request", zap.Error(err))
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
