package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/errors"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type MemberDetailQuery struct {
	MemberID string
	Now      time.Time
}

type MemberDetailUseCase struct {
	memberRepo     moderation.MemberRepository
	punishmentRepo moderation.PunishmentRepository
	logRepo        moderation.LogRepository
	ticketRepo     moderation.TicketRepository
	logger         logger.Interface
}

func NewMemberDetailUseCase(memberRepo moderation.MemberRepository, punishmentRepo moderation.PunishmentRepository, logRepo moderation.LogRepository, ticketRepo moderation.TicketRepository, logger logger.Interface) *MemberDetailUseCase {
	return &MemberDetailUseCase{
		memberRepo:     memberRepo,
		punishmentRepo: punishmentRepo,
		logRepo:        logRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute assembles the full per-member view: identity (or an empty
// default for unknown members), rollup, punishments split by kind, and
// the log history. Unknown members are data, not errors.
func (uc *MemberDetailUseCase) Execute(ctx context.Context, query MemberDetailQuery) (*dto.MemberDetailDTO, error) {
	if query.MemberID == "" {
		return nil, errors.NewValidationError("memberId is required", "memberId")
	}

	member, err := uc.memberRepo.FindByID(ctx, query.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to find member: %w", err)
	}

	history, err := uc.punishmentRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load punishment history: %w", err)
	}

	logs, err := uc.logRepo.ListByMember(ctx, query.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load log history: %w", err)
	}

	ticketTotal, err := uc.ticketRepo.TotalByAgent(ctx, query.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket total: %w", err)
	}

	detail := &dto.MemberDetailDTO{
		Member: dto.MemberDTO{ID: query.MemberID},
		Punishments: dto.PunishmentsByKindDTO{
			Warns: []dto.PunishmentDTO{},
			Mutes: []dto.PunishmentDTO{},
			Bans:  []dto.PunishmentDTO{},
		},
		Logs: dto.ToLogEntryDTOs(logs),
	}
	if member != nil {
		detail.Member = dto.ToMemberDTO(*member)
	}

	// history is most-recent-first, so each kind bucket stays
	// most-recent-first too.
	for _, p := range history {
		pDTO := dto.ToPunishmentDTO(p)
		switch p.Kind {
		case moderation.KindWarn:
			detail.Punishments.Warns = append(detail.Punishments.Warns, pDTO)
		case moderation.KindMute:
			detail.Punishments.Mutes = append(detail.Punishments.Mutes, pDTO)
		case moderation.KindBan:
			detail.Punishments.Bans = append(detail.Punishments.Bans, pDTO)
		}
	}

	detail.Stats = dto.RollupDTO{
		Warns:   int64(len(detail.Punishments.Warns)),
		Mutes:   int64(len(detail.Punishments.Mutes)),
		Bans:    int64(len(detail.Punishments.Bans)),
		Tickets: ticketTotal,
	}
	if len(history) > 0 {
		last := dto.ToPunishmentDTO(history[0])
		detail.Stats.LastPunishment = &last
	}
	if active := moderation.ActiveMute(history, query.Now); active != nil {
		activeDTO := dto.ToPunishmentDTO(*active)
		detail.Stats.ActiveMute = &activeDTO
	}

	return detail, nil
}
