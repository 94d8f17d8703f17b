package moderation

import "time"

// ActionType enumerates policy engine results.
type ActionType string

const (
	ActionWarn       ActionType = "warn"
	ActionMute       ActionType = "mute"
	ActionActiveMute ActionType = "activeMute"
)

// NextAction is the policy engine decision. Hours is set only for mute
// results; Until only for activeMute results.
type NextAction struct {
	Action ActionType `json:"action"`
	Hours  int        `json:"hours,omitempty"`
	Until  *time.Time `json:"until,omitempty"`
}

// ActiveMute returns the most recent mute whose window is still open at
// now, or nil. history must be ordered most-recent-first by insertion id.
func ActiveMute(history []Punishment, now time.Time) *Punishment {
	for i := range history {
		p := &history[i]
		if p.Kind == KindMute && p.EndAt != nil && p.EndAt.After(now) {
			return p
		}
	}
	return nil
}

// ComputeNextAction derives the next step on the escalation ladder
// (warn, mute 2h, mute 4h, mute 6h, reset to warn) from a member's
// punishment history. It is a pure function of the ordered history and
// the evaluation instant: no stored cursor, no writes, so replaying the
// same facts always yields the same decision.
//
// history must be ordered most-recent-first by insertion id. An empty
// history (including an unknown member) starts the ladder at warn.
func ComputeNextAction(history []Punishment, now time.Time) NextAction {
	// A member still serving a mute is never offered a new action,
	// regardless of anything recorded after the mute.
	if active := ActiveMute(history, now); active != nil {
		until := *active.EndAt
		return NextAction{Action: ActionActiveMute, Until: &until}
	}

	// Most recent completed action: a warn, or a mute that is expired or
	// was never time-boxed. Bans neither feed nor reset the ladder.
	for i := range history {
		p := &history[i]
		switch p.Kind {
		case KindWarn:
			return NextAction{Action: ActionMute, Hours: 2}
		case KindMute:
			if p.EndAt != nil && p.EndAt.After(now) {
				continue
			}
			hours := 0
			if p.DurationHours != nil {
				hours = *p.DurationHours
			}
			switch {
			case hours <= 2:
				return NextAction{Action: ActionMute, Hours: 4}
			case hours <= 4:
				return NextAction{Action: ActionMute, Hours: 6}
			default:
				// Completed the 6h rung, or any duration past the 4h
				// threshold: the ladder resets.
				return NextAction{Action: ActionWarn}
			}
		}
	}

	return NextAction{Action: ActionWarn}
}
