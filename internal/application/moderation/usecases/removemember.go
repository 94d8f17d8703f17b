package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type RemoveMemberCommand struct {
	MemberID string
}

type RemoveMemberUseCase struct {
	memberRepo moderation.MemberRepository
	logger     logger.Interface
}

func NewRemoveMemberUseCase(memberRepo moderation.MemberRepository, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Execute deletes the member row only. Logs, punishments and ticket
// batches survive as orphaned audit facts.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	if cmd.MemberID == "" {
		return errors.NewValidationError("memberId is required", "memberId")
	}

	if err := uc.memberRepo.Delete(ctx, cmd.MemberID); err != nil {
		uc.logger.Errorw("failed to remove member", "member_id", cmd.MemberID, "error", err)
		return fmt.Errorf("failed to remove member: %w", err)
	}

	uc.logger.Infow("member removed", "member_id", cmd.MemberID)
	return nil
}
