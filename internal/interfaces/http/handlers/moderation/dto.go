package moderation

import (
	"time"

	"github.com/EchoNews615/komibot/internal/application/moderation/usecases"
)

type SyncMemberRequest struct {
	MemberID   string     `json:"memberId" binding:"required"`
	MemberName string     `json:"memberName"`
	JoinedAt   *time.Time `json:"joinedAt"`
	GuildID    *string    `json:"guildId"`
}

func (r SyncMemberRequest) ToCommand() usecases.SyncMemberCommand {
	return usecases.SyncMemberCommand{
		MemberID:   r.MemberID,
		MemberName: r.MemberName,
		JoinedAt:   r.JoinedAt,
		GuildScope: r.GuildID,
	}
}

type BatchMemberRequest struct {
	MemberID   string     `json:"memberId" binding:"required"`
	MemberName string     `json:"memberName"`
	JoinedAt   *time.Time `json:"joinedAt"`
}

type SyncMembersBatchRequest struct {
	GuildID *string              `json:"guildId"`
	Members []BatchMemberRequest `json:"members"`
}

func (r SyncMembersBatchRequest) ToCommand() usecases.SyncMembersBatchCommand {
	cmd := usecases.SyncMembersBatchCommand{GuildScope: r.GuildID}
	if r.Members != nil {
		cmd.Members = make([]usecases.BatchMember, 0, len(r.Members))
		for _, m := range r.Members {
			cmd.Members = append(cmd.Members, usecases.BatchMember{
				MemberID:   m.MemberID,
				MemberName: m.MemberName,
				JoinedAt:   m.JoinedAt,
			})
		}
	}
	return cmd
}

type MemberIDRequest struct {
	MemberID string `json:"memberId" binding:"required"`
}

type AppendLogRequest struct {
	MemberID    string     `json:"memberId" binding:"required"`
	MemberName  string     `json:"memberName"`
	GuildID     *string    `json:"guildId"`
	ChannelID   string     `json:"channelId"`
	ChannelName string     `json:"channelName"`
	Message     string     `json:"message" binding:"required"`
	Timestamp   *time.Time `json:"timestamp"`
}

func (r AppendLogRequest) ToCommand() usecases.AppendLogCommand {
	return usecases.AppendLogCommand{
		MemberID:    r.MemberID,
		MemberName:  r.MemberName,
		GuildScope:  r.GuildID,
		ChannelID:   r.ChannelID,
		ChannelName: r.ChannelName,
		Message:     r.Message,
		Timestamp:   r.Timestamp,
	}
}

type PunishRequest struct {
	MemberID      string     `json:"memberId" binding:"required"`
	MemberName    string     `json:"memberName"`
	Reason        string     `json:"reason"`
	ChannelID     string     `json:"channelId"`
	ChannelName   string     `json:"channelName"`
	Timestamp     *time.Time `json:"timestamp"`
	DurationHours *int       `json:"durationHours"`
	EndAt         *time.Time `json:"endAt"`
}

func (r PunishRequest) ToCommand(kind string) usecases.RecordPunishmentCommand {
	return usecases.RecordPunishmentCommand{
		Kind:          kind,
		MemberID:      r.MemberID,
		MemberName:    r.MemberName,
		Reason:        r.Reason,
		ChannelID:     r.ChannelID,
		ChannelName:   r.ChannelName,
		Timestamp:     r.Timestamp,
		DurationHours: r.DurationHours,
		EndAt:         r.EndAt,
	}
}

type TicketRequest struct {
	AgentID   string `json:"agentId" binding:"required"`
	AgentName string `json:"agentName"`
	Count     int    `json:"count"`
}

func (r TicketRequest) ToCommand() usecases.RecordTicketBatchCommand {
	return usecases.RecordTicketBatchCommand{
		AgentID:   r.AgentID,
		AgentName: r.AgentName,
		Count:     r.Count,
	}
}

type ExportMonthlyRequest struct {
	Month string `json:"month" binding:"omitempty,month"`
}
