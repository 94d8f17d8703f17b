package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type NextActionQuery struct {
	MemberID string
	Now      time.Time
}

type NextActionUseCase struct {
	punishmentRepo moderation.PunishmentRepository
	logger         logger.Interface
}

func NewNextActionUseCase(punishmentRepo moderation.PunishmentRepository, logger logger.Interface) *NextActionUseCase {
	return &NextActionUseCase{
		punishmentRepo: punishmentRepo,
		logger:         logger,
	}
}

// Execute loads the member's punishment history and runs the escalation
// ladder over it. An unknown member simply has empty history and starts
// at warn; absence is valid input, not an error.
func (uc *NextActionUseCase) Execute(ctx context.Context, query NextActionQuery) (*moderation.NextAction, error) {
	if query.MemberID == "" {
		return nil, errors.NewValidationError("memberId is required", "memberId")
	}

	history, err := uc.punishmentRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to load punishment history", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to load punishment history: %w", err)
	}

	next := moderation.ComputeNextAction(history, query.Now)
	return &next, nil
}
