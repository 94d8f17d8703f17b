package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type AppendLogCommand struct {
	MemberID    string
	MemberName  string
	GuildScope  *string
	ChannelID   string
	ChannelName string
	Message     string
	Timestamp   *time.Time
}

type AppendLogUseCase struct {
	logRepo moderation.LogRepository
	logger  logger.Interface
}

func NewAppendLogUseCase(logRepo moderation.LogRepository, logger logger.Interface) *AppendLogUseCase {
	return &AppendLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *AppendLogUseCase) Execute(ctx context.Context, cmd AppendLogCommand) error {
	if cmd.MemberID == "" {
		return errors.NewValidationError("memberId is required", "memberId")
	}
	if cmd.Message == "" {
		return errors.NewValidationError("message is required", "message")
	}

	timestamp := time.Time{}
	if cmd.Timestamp != nil {
		timestamp = *cmd.Timestamp
	}
	entry, err := moderation.NewLogEntry(cmd.MemberID, cmd.MemberName, cmd.Message, cmd.GuildScope, cmd.ChannelID, cmd.ChannelName, timestamp)
	if err != nil {
		return errors.NewValidationError(err.Error(), "message")
	}

	if _, err := uc.logRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append log entry", "member_id", cmd.MemberID, "error", err)
		return fmt.Errorf("failed to append log entry: %w", err)
	}

	return nil
}
