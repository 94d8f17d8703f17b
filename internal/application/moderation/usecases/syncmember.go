package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type SyncMemberCommand struct {
	MemberID   string
	MemberName string
	JoinedAt   *time.Time
	GuildScope *string
}

type SyncMemberUseCase struct {
	memberRepo moderation.MemberRepository
	logger     logger.Interface
}

func NewSyncMemberUseCase(memberRepo moderation.MemberRepository, logger logger.Interface) *SyncMemberUseCase {
	return &SyncMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *SyncMemberUseCase) Execute(ctx context.Context, cmd SyncMemberCommand) error {
	if cmd.MemberID == "" {
		return errors.NewValidationError("memberId is required", "memberId")
	}

	joinedAt := time.Time{}
	if cmd.JoinedAt != nil {
		joinedAt = *cmd.JoinedAt
	}
	member, err := moderation.NewMember(cmd.MemberID, cmd.MemberName, joinedAt, cmd.GuildScope)
	if err != nil {
		return errors.NewValidationError(err.Error(), "memberId")
	}

	if err := uc.memberRepo.Upsert(ctx, member); err != nil {
		uc.logger.Errorw("failed to sync member", "member_id", cmd.MemberID, "error", err)
		return fmt.Errorf("failed to sync member: %w", err)
	}

	uc.logger.Debugw("member synced", "member_id", cmd.MemberID)
	return nil
}
