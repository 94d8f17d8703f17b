// Package dto holds the wire shapes the moderation API returns. Key
// names mirror what the dashboard frontend and the bot already consume.
package dto

import (
	"time"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
)

type MemberDTO struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	JoinedAt *time.Time `json:"joinedAt"`
}

type LogEntryDTO struct {
	ID          int64     `json:"id"`
	MemberID    string    `json:"memberId"`
	MemberName  string    `json:"memberName"`
	GuildID     *string   `json:"guildId"`
	ChannelID   string    `json:"channelId"`
	ChannelName string    `json:"channelName"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

type PunishmentDTO struct {
	ID            int64      `json:"id"`
	MemberID      string     `json:"memberId"`
	MemberName    string     `json:"memberName"`
	Kind          string     `json:"kind"`
	Reason        string     `json:"reason"`
	ChannelID     string     `json:"channelId"`
	ChannelName   string     `json:"channelName"`
	Timestamp     time.Time  `json:"timestamp"`
	DurationHours *int       `json:"durationHours,omitempty"`
	EndAt         *time.Time `json:"endAt,omitempty"`
}

type TicketBatchDTO struct {
	ID        int64     `json:"id"`
	AgentID   string    `json:"agentId"`
	AgentName string    `json:"agentName"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// MemberListItem keeps the flat snake_case keys the member table view
// binds to.
type MemberListItem struct {
	UserID         string         `json:"user_id"`
	UserTag        string         `json:"user_tag"`
	TotalWarns     int64          `json:"total_warns"`
	TotalMutes     int64          `json:"total_mutes"`
	TotalBans      int64          `json:"total_bans"`
	LastPunishment *PunishmentDTO `json:"last_punishment"`
	Tickets        int64          `json:"tickets"`
}

// RollupDTO is the per-member aggregate computed on demand.
type RollupDTO struct {
	Warns          int64          `json:"warns"`
	Mutes          int64          `json:"mutes"`
	Bans           int64          `json:"bans"`
	Tickets        int64          `json:"tickets"`
	LastPunishment *PunishmentDTO `json:"lastPunishment"`
	ActiveMute     *PunishmentDTO `json:"activeMute"`
}

type PunishmentsByKindDTO struct {
	Warns []PunishmentDTO `json:"warns"`
	Mutes []PunishmentDTO `json:"mutes"`
	Bans  []PunishmentDTO `json:"bans"`
}

type MemberDetailDTO struct {
	Member      MemberDTO            `json:"member"`
	Stats       RollupDTO            `json:"stats"`
	Punishments PunishmentsByKindDTO `json:"punishments"`
	Logs        []LogEntryDTO        `json:"logs"`
}

type PeriodSliceDTO struct {
	Month       string           `json:"month"`
	Logs        []LogEntryDTO    `json:"logs"`
	Punishments []PunishmentDTO  `json:"punishments"`
	Tickets     []TicketBatchDTO `json:"tickets"`
}

// ReportFilesDTO carries URL paths of the rendered monthly report files.
type ReportFilesDTO struct {
	XLSX string `json:"xlsx"`
	PDF  string `json:"pdf"`
}

type ClearMemberResultDTO struct {
	Logs        int64 `json:"logs"`
	Punishments int64 `json:"punishments"`
}

type ClearAllResultDTO struct {
	Logs        int64 `json:"logs"`
	Punishments int64 `json:"punishments"`
	Tickets     int64 `json:"tickets"`
}

func ToMemberDTO(m moderation.Member) MemberDTO {
	joined := m.JoinedAt
	return MemberDTO{
		ID:       m.MemberID,
		Name:     m.Name,
		JoinedAt: &joined,
	}
}

func ToLogEntryDTO(e moderation.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:          e.ID,
		MemberID:    e.MemberID,
		MemberName:  e.MemberName,
		GuildID:     e.GuildScope,
		ChannelID:   e.ChannelID,
		ChannelName: e.ChannelName,
		Message:     e.Message,
		Timestamp:   e.Timestamp,
	}
}

func ToLogEntryDTOs(entries []moderation.LogEntry) []LogEntryDTO {
	out := make([]LogEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToLogEntryDTO(e))
	}
	return out
}

func ToPunishmentDTO(p moderation.Punishment) PunishmentDTO {
	return PunishmentDTO{
		ID:            p.ID,
		MemberID:      p.MemberID,
		MemberName:    p.MemberName,
		Kind:          p.Kind.String(),
		Reason:        p.Reason,
		ChannelID:     p.ChannelID,
		ChannelName:   p.ChannelName,
		Timestamp:     p.Timestamp,
		DurationHours: p.DurationHours,
		EndAt:         p.EndAt,
	}
}

func ToPunishmentDTOs(punishments []moderation.Punishment) []PunishmentDTO {
	out := make([]PunishmentDTO, 0, len(punishments))
	for _, p := range punishments {
		out = append(out, ToPunishmentDTO(p))
	}
	return out
}

func ToTicketBatchDTO(b moderation.TicketBatch) TicketBatchDTO {
	return TicketBatchDTO{
		ID:        b.ID,
		AgentID:   b.AgentID,
		AgentName: b.AgentName,
		Count:     b.Count,
		Timestamp: b.Timestamp,
	}
}

func ToTicketBatchDTOs(batches []moderation.TicketBatch) []TicketBatchDTO {
	out := make([]TicketBatchDTO, 0, len(batches))
	for _, b := range batches {
		out = append(out, ToTicketBatchDTO(b))
	}
	return out
}
