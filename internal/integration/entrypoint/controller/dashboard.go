// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	getDashboardUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getDashboardUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getDashboardUseCase: getDashboardUseCase,
	}
}

// Get handles GET /dashboard?month=YYYY-MM requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		Month: ctx.Query("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) {
		respondInternalError(ctx, "Failed to build dashboard", err)
		return
	}

	status := c.getStatusCodeForDashboardError(dashErr.Code)
	if status >= http.StatusInternalServerError {
		slog.Error("Dashboard data integrity failure", "code", dashErr.Code, "error", err)
	}
	ctx.JSON(status, dto.ErrorResponse{
		Error: dashErr.Message,
		Code:  string(dashErr.Code),
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidDashboardMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
