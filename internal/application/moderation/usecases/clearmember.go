package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type ClearMemberCommand struct {
	MemberID string
}

type ClearMemberUseCase struct {
	logRepo        moderation.LogRepository
	punishmentRepo moderation.PunishmentRepository
	logger         logger.Interface
}

func NewClearMemberUseCase(logRepo moderation.LogRepository, punishmentRepo moderation.PunishmentRepository, logger logger.Interface) *ClearMemberUseCase {
	return &ClearMemberUseCase{
		logRepo:        logRepo,
		punishmentRepo: punishmentRepo,
		logger:         logger,
	}
}

// Execute purges one member's logs and punishments. The member row
// itself stays.
func (uc *ClearMemberUseCase) Execute(ctx context.Context, cmd ClearMemberCommand) (*dto.ClearMemberResultDTO, error) {
	if cmd.MemberID == "" {
		return nil, errors.NewValidationError("memberId is required", "memberId")
	}

	deletedLogs, err := uc.logRepo.DeleteByMember(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to clear member logs", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to clear member logs: %w", err)
	}

	deletedPunishments, err := uc.punishmentRepo.DeleteByMember(ctx, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to clear member punishments", "member_id", cmd.MemberID, "error", err)
		return nil, fmt.Errorf("failed to clear member punishments: %w", err)
	}

	uc.logger.Infow("member facts cleared", "member_id", cmd.MemberID, "logs", deletedLogs, "punishments", deletedPunishments)
	return &dto.ClearMemberResultDTO{
		Logs:        deletedLogs,
		Punishments: deletedPunishments,
	}, nil
}
