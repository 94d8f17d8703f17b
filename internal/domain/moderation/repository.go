package moderation

import "context"

// KindCounts groups punishment counts by kind for one member.
type KindCounts struct {
	Warns int64
	Mutes int64
	Bans  int64
}

type MemberRepository interface {
	Upsert(ctx context.Context, m Member) error
	// UpsertBatch applies every upsert inside one transaction; a failure
	// on any row leaves the store unchanged. Returns the rows upserted.
	UpsertBatch(ctx context.Context, members []Member) (int, error)
	Delete(ctx context.Context, memberID string) error
	FindByID(ctx context.Context, memberID string) (*Member, error)
	// List returns all members, or when guildScope is set, members with
	// that scope plus unscoped (NULL) members.
	List(ctx context.Context, guildScope *string) ([]Member, error)
}

type LogRepository interface {
	Append(ctx context.Context, e LogEntry) (int64, error)
	ListByMember(ctx context.Context, memberID string) ([]LogEntry, error)
	ListByPeriod(ctx context.Context, p Period) ([]LogEntry, error)
	DeleteByMember(ctx context.Context, memberID string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type PunishmentRepository interface {
	Append(ctx context.Context, p Punishment) (int64, error)
	// ListByMember returns the member's punishments most-recent-first by
	// insertion id, the ordering the policy engine requires.
	ListByMember(ctx context.Context, memberID string) ([]Punishment, error)
	ListByPeriod(ctx context.Context, p Period) ([]Punishment, error)
	CountsByMember(ctx context.Context) (map[string]KindCounts, error)
	// LatestByMember returns each member's single most recent punishment.
	LatestByMember(ctx context.Context) (map[string]Punishment, error)
	DeleteByMember(ctx context.Context, memberID string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type TicketRepository interface {
	Append(ctx context.Context, b TicketBatch) (int64, error)
	TotalByAgent(ctx context.Context, agentID string) (int64, error)
	TotalsByAgent(ctx context.Context) (map[string]int64, error)
	ListByPeriod(ctx context.Context, p Period) ([]TicketBatch, error)
	DeleteAll(ctx context.Context) (int64, error)
}
