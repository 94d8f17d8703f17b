// Package models holds the gorm row models backing the moderation fact
// tables. Fact rows are append-only: nothing here is ever updated in
// place except the member upsert.
package models

import "time"

type MemberModel struct {
	ID       string    `gorm:"column:id;primaryKey"`
	GuildID  *string   `gorm:"column:guild_id"`
	Name     string    `gorm:"column:name"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (MemberModel) TableName() string { return "members" }

type LogModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID    string    `gorm:"column:member_id"`
	MemberName  string    `gorm:"column:member_name"`
	GuildID     *string   `gorm:"column:guild_id"`
	ChannelID   string    `gorm:"column:channel_id"`
	ChannelName string    `gorm:"column:channel_name"`
	Message     string    `gorm:"column:message"`
	Timestamp   time.Time `gorm:"column:timestamp"`
}

func (LogModel) TableName() string { return "logs" }

type PunishmentModel struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	MemberID      string     `gorm:"column:member_id"`
	MemberName    string     `gorm:"column:member_name"`
	Kind          string     `gorm:"column:kind"`
	Reason        string     `gorm:"column:reason"`
	ChannelID     string     `gorm:"column:channel_id"`
	ChannelName   string     `gorm:"column:channel_name"`
	Timestamp     time.Time  `gorm:"column:timestamp"`
	DurationHours *int       `gorm:"column:duration_hours"`
	EndAt         *time.Time `gorm:"column:end_at"`
}

func (PunishmentModel) TableName() string { return "punishments" }

type TicketModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	AgentID   string    `gorm:"column:agent_id"`
	AgentName string    `gorm:"column:agent_name"`
	Count     int       `gorm:"column:count"`
	Timestamp time.Time `gorm:"column:timestamp"`
}

func (TicketModel) TableName() string { return "tickets" }
