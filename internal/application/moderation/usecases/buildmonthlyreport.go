package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type BuildMonthlyReportCommand struct {
	Month string
}

type BuildMonthlyReportUseCase struct {
	periodSlice PeriodSliceExecutor
	renderer    ReportRenderer
	logger      logger.Interface
}

func NewBuildMonthlyReportUseCase(periodSlice PeriodSliceExecutor, renderer ReportRenderer, logger logger.Interface) *BuildMonthlyReportUseCase {
	return &BuildMonthlyReportUseCase{
		periodSlice: periodSlice,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute assembles the month's slice and renders it to files. A render
// failure never implies anything about the stored data, so it is
// reported as an internal error distinct from the slice query itself.
func (uc *BuildMonthlyReportUseCase) Execute(ctx context.Context, cmd BuildMonthlyReportCommand) (*dto.ReportFilesDTO, error) {
	period, err := moderation.ParsePeriod(cmd.Month)
	if err != nil {
		return nil, errors.NewValidationError("month must be in YYYY-MM format", "month")
	}

	slice, err := uc.periodSlice.Execute(ctx, PeriodSliceQuery{Month: period.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble report slice: %w", err)
	}

	files, err := uc.renderer.Render(period, slice)
	if err != nil {
		uc.logger.Errorw("failed to render monthly report", "month", period.String(), "error", err)
		return nil, errors.NewInternalError("failed to render monthly report", err.Error())
	}

	uc.logger.Infow("monthly report rendered", "month", period.String(), "xlsx", files.XLSX, "pdf", files.PDF)
	return files, nil
}
