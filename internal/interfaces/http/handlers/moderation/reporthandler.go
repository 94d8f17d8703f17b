package moderation

import (
	stderrors "errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EchoNews615/komibot/internal/application/moderation/usecases"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
	"github.com/EchoNews615/komibot/internal/shared/utils"
)

// ReportHandler serves the monthly history slice and the report export.
type ReportHandler struct {
	periodSliceUC usecases.PeriodSliceExecutor
	buildReportUC usecases.BuildMonthlyReportExecutor
	logger        logger.Interface
}

func NewReportHandler(periodSliceUC usecases.PeriodSliceExecutor, buildReportUC usecases.BuildMonthlyReportExecutor) *ReportHandler {
	return &ReportHandler{
		periodSliceUC: periodSliceUC,
		buildReportUC: buildReportUC,
		logger:        logger.NewLogger(),
	}
}

// History handles GET /api/history/:month
func (h *ReportHandler) History(c *gin.Context) {
	slice, err := h.periodSliceUC.Execute(c.Request.Context(), usecases.PeriodSliceQuery{Month: c.Param("month")})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{
		"month":       slice.Month,
		"logs":        slice.Logs,
		"punishments": slice.Punishments,
		"tickets":     slice.Tickets,
	})
}

// ExportMonthly handles POST /api/export/monthly. An absent month means
// the current calendar month.
func (h *ReportHandler) ExportMonthly(c *gin.Context) {
	var req ExportMonthlyRequest
	// Body is optional; an empty or absent body selects the current month.
	if err := c.ShouldBindJSON(&req); err != nil && !stderrors.Is(err, io.EOF) {
		utils.ErrorResponseWithError(c, errors.NewValidationError("month must be in YYYY-MM format", "month"))
		return
	}
	if req.Month == "" {
		req.Month = time.Now().UTC().Format("2006-01")
	}

	files, err := h.buildReportUC.Execute(c.Request.Context(), usecases.BuildMonthlyReportCommand{Month: req.Month})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"month": req.Month, "files": files})
}
