package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type ClearAllUseCase struct {
	logRepo        moderation.LogRepository
	punishmentRepo moderation.PunishmentRepository
	ticketRepo     moderation.TicketRepository
	logger         logger.Interface
}

func NewClearAllUseCase(logRepo moderation.LogRepository, punishmentRepo moderation.PunishmentRepository, ticketRepo moderation.TicketRepository, logger logger.Interface) *ClearAllUseCase {
	return &ClearAllUseCase{
		logRepo:        logRepo,
		punishmentRepo: punishmentRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute purges every fact table. Member rows stay.
func (uc *ClearAllUseCase) Execute(ctx context.Context) (*dto.ClearAllResultDTO, error) {
	deletedLogs, err := uc.logRepo.DeleteAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to clear logs", "error", err)
		return nil, fmt.Errorf("failed to clear logs: %w", err)
	}

	deletedPunishments, err := uc.punishmentRepo.DeleteAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to clear punishments", "error", err)
		return nil, fmt.Errorf("failed to clear punishments: %w", err)
	}

	deletedTickets, err := uc.ticketRepo.DeleteAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to clear ticket batches", "error", err)
		return nil, fmt.Errorf("failed to clear ticket batches: %w", err)
	}

	uc.logger.Warnw("all facts cleared", "logs", deletedLogs, "punishments", deletedPunishments, "tickets", deletedTickets)
	return &dto.ClearAllResultDTO{
		Logs:        deletedLogs,
		Punishments: deletedPunishments,
		Tickets:     deletedTickets,
	}, nil
}
