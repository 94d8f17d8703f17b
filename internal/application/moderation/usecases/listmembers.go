package usecases

import (
	"context"
	"fmt"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type ListMembersQuery struct {
	GuildScope *string
}

type ListMembersUseCase struct {
	memberRepo     moderation.MemberRepository
	punishmentRepo moderation.PunishmentRepository
	ticketRepo     moderation.TicketRepository
	logger         logger.Interface
}

func NewListMembersUseCase(memberRepo moderation.MemberRepository, punishmentRepo moderation.PunishmentRepository, ticketRepo moderation.TicketRepository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo:     memberRepo,
		punishmentRepo: punishmentRepo,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Execute joins the member list with per-member rollups computed from
// three grouped queries, so the result never goes N+1 against the store.
func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) ([]dto.MemberListItem, error) {
	members, err := uc.memberRepo.List(ctx, query.GuildScope)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	counts, err := uc.punishmentRepo.CountsByMember(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load punishment counts: %w", err)
	}
	latest, err := uc.punishmentRepo.LatestByMember(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest punishments: %w", err)
	}
	tickets, err := uc.ticketRepo.TotalsByAgent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket totals: %w", err)
	}

	items := make([]dto.MemberListItem, 0, len(members))
	for _, m := range members {
		item := dto.MemberListItem{
			UserID:  m.MemberID,
			UserTag: m.Name,
			Tickets: tickets[m.MemberID],
		}
		if item.UserTag == "" {
			item.UserTag = m.MemberID
		}
		if c, ok := counts[m.MemberID]; ok {
			item.TotalWarns = c.Warns
			item.TotalMutes = c.Mutes
			item.TotalBans = c.Bans
		}
		if last, ok := latest[m.MemberID]; ok {
			lastDTO := dto.ToPunishmentDTO(last)
			item.LastPunishment = &lastDTO
		}
		items = append(items, item)
	}
	return items, nil
}
