package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type PeriodSliceQuery struct {
	Month string
}

type PeriodSliceUseCase struct {
	logRepo        moderation.LogRepository
	punishmentRepo moderation.PunishmentRepository
	ticketRepo     moderation.TicketRepository
	logger         logger.Interface
}

func NewPeriodSliceUseCase(logRepo moderation.LogRepository, punishmentRepo moderation.PunishmentRepository, ticketRepo moderation.TicketRepository, logger logger.Interface) *PeriodSliceUseCase {
	return &PeriodSliceUseCase{
		logRepo:        logRepo,
		punishmentRepo: punishmentRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute returns every fact whose timestamp falls inside the calendar
// month. The month boundary is half-open, so facts on the first instant
// of the next month belong to the next slice.
func (uc *PeriodSliceUseCase) Execute(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error) {
	period, err := moderation.ParsePeriod(query.Month)
	if err != nil {
		return nil, errors.NewValidationError("month must be in YYYY-MM format", "month")
	}

	logs, err := uc.logRepo.ListByPeriod(ctx, period)
	if err != nil {
		uc.logger.Errorw("failed to load logs for period", "month", period.String(), "error", err)
		return nil, fmt.Errorf("failed to load logs for period: %w", err)
	}
	punishments, err := uc.punishmentRepo.ListByPeriod(ctx, period)
	if err != nil {
		uc.logger.Errorw("failed to load punishments for period", "month", period.String(), "error", err)
		return nil, fmt.Errorf("failed to load punishments for period: %w", err)
	}
	tickets, err := uc.ticketRepo.ListByPeriod(ctx, period)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for period", "month", period.String(), "error", err)
		return nil, fmt.Errorf("failed to load tickets for period: %w", err)
	}

	return &dto.PeriodSliceDTO{
		Month:       period.String(),
		Logs:        dto.ToLogEntryDTOs(logs),
		Punishments: dto.ToPunishmentDTOs(punishments),
		Tickets:     dto.ToTicketBatchDTOs(tickets),
	}, nil
}
