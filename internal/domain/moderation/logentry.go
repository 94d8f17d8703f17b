package moderation

import (
	"fmt"
	"time"
)

// LogEntry is an immutable message log fact. MemberName is a snapshot
// taken at insert time; it is never backfilled when the member renames.
// ID is assigned by the store and is the canonical ordering, independent
// of Timestamp.
type LogEntry struct {
	ID          int64
	MemberID    string
	MemberName  string
	GuildScope  *string
	ChannelID   string
	ChannelName string
	Message     string
	Timestamp   time.Time
}

func NewLogEntry(memberID, memberName, message string, guildScope *string, channelID, channelName string, timestamp time.Time) (LogEntry, error) {
	if memberID == "" {
		return LogEntry{}, fmt.Errorf("member ID is required")
	}
	if message == "" {
		return LogEntry{}, fmt.Errorf("message is required")
	}
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return LogEntry{
		MemberID:    memberID,
		MemberName:  memberName,
		GuildScope:  guildScope,
		ChannelID:   channelID,
		ChannelName: channelName,
		Message:     message,
		Timestamp:   timestamp,
	}, nil
}
