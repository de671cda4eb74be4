package utils

import (
	"github.com/gin-gonic/gin"
)

// Response is the uniform JSON envelope returned by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginatedResponse extends the envelope with pagination metadata for
// list endpoints.
type PaginatedResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message,omitempty"`
	Count       int         `json:"count"`
	Total       int64       `json:"total"`
	TotalPages  int64       `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
	Data        interface{} `json:"data"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

func ListResponse(c *gin.Context, statusCode int, message string, data interface{}, count int, total int64, page, limit int) {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	c.JSON(statusCode, PaginatedResponse{
		Success:     true,
		Message:     message,
		Count:       count,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
		Data:        data,
	})
}
