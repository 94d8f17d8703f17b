package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type MemberLogsQuery struct {
	MemberID string
}

type MemberLogsUseCase struct {
	logRepo moderation.LogRepository
	logger  logger.Interface
}

func NewMemberLogsUseCase(logRepo moderation.LogRepository, logger logger.Interface) *MemberLogsUseCase {
	return &MemberLogsUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *MemberLogsUseCase) Execute(ctx context.Context, query MemberLogsQuery) ([]dto.LogEntryDTO, error) {
	if query.MemberID == "" {
		return nil, errors.NewValidationError("memberId is required", "memberId")
	}

	logs, err := uc.logRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to load member logs", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to load member logs: %w", err)
	}
	return dto.ToLogEntryDTOs(logs), nil
}

type MemberPunishmentsQuery struct {
	MemberID string
}

type MemberPunishmentsUseCase struct {
	punishmentRepo moderation.PunishmentRepository
	logger         logger.Interface
}

func NewMemberPunishmentsUseCase(punishmentRepo moderation.PunishmentRepository, logger logger.Interface) *MemberPunishmentsUseCase {
	return &MemberPunishmentsUseCase{
		punishmentRepo: punishmentRepo,
		logger:         logger,
	}
}

func (uc *MemberPunishmentsUseCase) Execute(ctx context.Context, query MemberPunishmentsQuery) ([]dto.PunishmentDTO, error) {
	if query.MemberID == "" {
		return nil, errors.NewValidationError("memberId is required", "memberId")
	}

	punishments, err := uc.punishmentRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to load member punishments", "member_id", query.MemberID, "error", err)
		return nil, fmt.Errorf("failed to load member punishments: %w", err)
	}
	return dto.ToPunishmentDTOs(punishments), nil
}
