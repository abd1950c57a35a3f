// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// respondInternalError logs an unexpected failure and answers with a
// generic 500. Store errors never reach the client verbatim.
func respondInternalError(ctx *gin.Context, message string, err error) {
	slog.Error(message,
		"request_id", middleware.GetRequestID(ctx),
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: message,
		Code:  string(domainerror.ErrCodeInternalError),
	})
}

// respondInvalidBody answers a request whose body is not valid JSON.
func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    string(domainerror.ErrCodeInvalidBody),
		Details: err.Error(),
	})
}
