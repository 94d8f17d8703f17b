package moderation

import (
	"fmt"
	"time"
)

// PunishmentKind enumerates the three disciplinary actions recorded in
// the fact log.
type PunishmentKind string

const (
	KindWarn PunishmentKind = "warn"
	KindMute PunishmentKind = "mute"
	KindBan  PunishmentKind = "ban"
)

func (k PunishmentKind) IsValid() bool {
	switch k {
	case KindWarn, KindMute, KindBan:
		return true
	}
	return false
}

func (k PunishmentKind) String() string {
	return string(k)
}

// Punishment is an immutable disciplinary fact. Rows are never updated:
// mute expiry is derived by comparing EndAt against the evaluation
// instant, not stored as a state transition. ID is assigned by the store
// and totally orders punishments even when timestamps collide.
type Punishment struct {
	ID            int64
	MemberID      string
	MemberName    string
	Kind          PunishmentKind
	Reason        string
	ChannelID     string
	ChannelName   string
	Timestamp     time.Time
	DurationHours *int
	EndAt         *time.Time
}

func NewPunishment(kind PunishmentKind, memberID, memberName, reason, channelID, channelName string, timestamp time.Time, durationHours *int, endAt *time.Time) (Punishment, error) {
	if !kind.IsValid() {
		return Punishment{}, fmt.Errorf("invalid punishment kind %q", kind)
	}
	if memberID == "" {
		return Punishment{}, fmt.Errorf("member ID is required")
	}
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	return Punishment{
		MemberID:      memberID,
		MemberName:    memberName,
		Kind:          kind,
		Reason:        reason,
		ChannelID:     channelID,
		ChannelName:   channelName,
		Timestamp:     timestamp,
		DurationHours: durationHours,
		EndAt:         endAt,
	}, nil
}
