package moderation

import (
	"fmt"
	"time"
)

// Member is the upserted identity row. GuildScope is nil for members not
// pinned to a guild; all fact tables reference members by MemberID but are
// never cascaded when the row is removed.
type Member struct {
	MemberID   string
	GuildScope *string
	Name       string
	JoinedAt   time.Time
}

func NewMember(memberID, name string, joinedAt time.Time, guildScope *string) (Member, error) {
	if memberID == "" {
		return Member{}, fmt.Errorf("member ID is required")
	}
	if joinedAt.IsZero() {
		joinedAt = time.Now().UTC()
	}
	return Member{
		MemberID:   memberID,
		GuildScope: guildScope,
		Name:       name,
		JoinedAt:   joinedAt,
	}, nil
}
