package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type RecordTicketBatchCommand struct {
	AgentID   string
	AgentName string
	Count     int
}

type RecordTicketBatchUseCase struct {
	ticketRepo moderation.TicketRepository
	logger     logger.Interface
}

func NewRecordTicketBatchUseCase(ticketRepo moderation.TicketRepository, logger logger.Interface) *RecordTicketBatchUseCase {
	return &RecordTicketBatchUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *RecordTicketBatchUseCase) Execute(ctx context.Context, cmd RecordTicketBatchCommand) error {
	if cmd.AgentID == "" {
		return errors.NewValidationError("agentId is required", "agentId")
	}

	// Count below one is clamped, not rejected: the bot occasionally
	// reports a closed ticket without a count.
	batch, err := moderation.NewTicketBatch(cmd.AgentID, cmd.AgentName, cmd.Count, time.Now().UTC())
	if err != nil {
		return errors.NewValidationError(err.Error(), "agentId")
	}

	if _, err := uc.ticketRepo.Append(ctx, batch); err != nil {
		uc.logger.Errorw("failed to record ticket batch", "agent_id", cmd.AgentID, "error", err)
		return fmt.Errorf("failed to record ticket batch: %w", err)
	}

	return nil
}
