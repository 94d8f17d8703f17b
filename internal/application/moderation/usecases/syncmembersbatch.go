package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type BatchMember struct {
	MemberID   string
	MemberName string
	JoinedAt   *time.Time
}

type SyncMembersBatchCommand struct {
	GuildScope *string
	Members    []BatchMember
}

type SyncMembersBatchResult struct {
	Upserted int `json:"upserted"`
}

type SyncMembersBatchUseCase struct {
	memberRepo moderation.MemberRepository
	logger     logger.Interface
}

func NewSyncMembersBatchUseCase(memberRepo moderation.MemberRepository, logger logger.Interface) *SyncMembersBatchUseCase {
	return &SyncMembersBatchUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Execute upserts the whole batch atomically: the repository runs it in
// one transaction, so a bad row leaves the store unchanged.
func (uc *SyncMembersBatchUseCase) Execute(ctx context.Context, cmd SyncMembersBatchCommand) (*SyncMembersBatchResult, error) {
	if cmd.Members == nil {
		return nil, errors.NewValidationError("members array is required", "members")
	}

	members := make([]moderation.Member, 0, len(cmd.Members))
	for _, bm := range cmd.Members {
		joinedAt := time.Time{}
		if bm.JoinedAt != nil {
			joinedAt = *bm.JoinedAt
		}
		member, err := moderation.NewMember(bm.MemberID, bm.MemberName, joinedAt, cmd.GuildScope)
		if err != nil {
			return nil, errors.NewValidationError(err.Error(), "members")
		}
		members = append(members, member)
	}

	upserted, err := uc.memberRepo.UpsertBatch(ctx, members)
	if err != nil {
		uc.logger.Errorw("failed to sync member batch", "size", len(members), "error", err)
		return nil, fmt.Errorf("failed to sync member batch: %w", err)
	}

	uc.logger.Infow("member batch synced", "upserted", upserted)
	return &SyncMembersBatchResult{Upserted: upserted}, nil
}
