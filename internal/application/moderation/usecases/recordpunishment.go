package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type RecordPunishmentCommand struct {
	Kind          string
	MemberID      string
	MemberName    string
	Reason        string
	ChannelID     string
	ChannelName   string
	Timestamp     *time.Time
	DurationHours *int
	EndAt         *time.Time
}

type RecordPunishmentUseCase struct {
	punishmentRepo moderation.PunishmentRepository
	logger         logger.Interface
}

func NewRecordPunishmentUseCase(punishmentRepo moderation.PunishmentRepository, logger logger.Interface) *RecordPunishmentUseCase {
	return &RecordPunishmentUseCase{
		punishmentRepo: punishmentRepo,
		logger:         logger,
	}
}

// Execute appends one punishment fact. The row is immutable once
// written; mute expiry is derived from EndAt at query time.
func (uc *RecordPunishmentUseCase) Execute(ctx context.Context, cmd RecordPunishmentCommand) error {
	kind := moderation.PunishmentKind(cmd.Kind)
	if !kind.IsValid() {
		return errors.NewValidationError("kind must be warn, mute or ban", "kind")
	}
	if cmd.MemberID == "" {
		return errors.NewValidationError("memberId is required", "memberId")
	}

	timestamp := time.Time{}
	if cmd.Timestamp != nil {
		timestamp = *cmd.Timestamp
	}
	punishment, err := moderation.NewPunishment(kind, cmd.MemberID, cmd.MemberName, cmd.Reason, cmd.ChannelID, cmd.ChannelName, timestamp, cmd.DurationHours, cmd.EndAt)
	if err != nil {
		return errors.NewValidationError(err.Error(), "memberId")
	}

	id, err := uc.punishmentRepo.Append(ctx, punishment)
	if err != nil {
		uc.logger.Errorw("failed to record punishment", "member_id", cmd.MemberID, "kind", cmd.Kind, "error", err)
		return fmt.Errorf("failed to record punishment: %w", err)
	}

	uc.logger.Infow("punishment recorded", "id", id, "member_id", cmd.MemberID, "kind", cmd.Kind)
	return nil
}
