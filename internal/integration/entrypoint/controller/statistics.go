// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fin-ledger/backend/internal/application/usecase/statistics"
	"github.com/fin-ledger/backend/internal/integration/entrypoint/dto"
)

// StatisticsController handles aggregate statistics endpoints.
type StatisticsController struct {
	summaryUseCase *statistics.GetSummaryUseCase
}

// NewStatisticsController creates a new statistics controller instance.
func NewStatisticsController(summaryUseCase *statistics.GetSummaryUseCase) *StatisticsController {
	return &StatisticsController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /statistics/summary requests.
func (c *StatisticsController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
