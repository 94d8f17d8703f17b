package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/infrastructure/persistence/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.MemberModel{},
		&models.LogModel{},
		&models.PunishmentModel{},
		&models.TicketModel{},
	))

	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestMemberRepository_UpsertAndFind(t *testing.T) {
	db := setupDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, moderation.Member{MemberID: "100", Name: "alpha", JoinedAt: joined}))

	found, err := repo.FindByID(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "alpha", found.Name)

	// Same id again replaces name and scope instead of erroring.
	require.NoError(t, repo.Upsert(ctx, moderation.Member{MemberID: "100", Name: "alpha-renamed", GuildScope: strPtr("g1"), JoinedAt: joined}))

	found, err = repo.FindByID(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, "alpha-renamed", found.Name)
	require.NotNil(t, found.GuildScope)
	assert.Equal(t, "g1", *found.GuildScope)

	var count int64
	require.NoError(t, db.Model(&models.MemberModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	missing, err := repo.FindByID(ctx, "ghost")
	require.NoError(t, err, "unknown member is not an error")
	assert.Nil(t, missing)
}

func TestMemberRepository_ListGuildScope(t *testing.T) {
	db := setupDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, moderation.Member{MemberID: "a", GuildScope: strPtr("g1"), JoinedAt: joined}))
	require.NoError(t, repo.Upsert(ctx, moderation.Member{MemberID: "b", GuildScope: strPtr("g2"), JoinedAt: joined}))
	require.NoError(t, repo.Upsert(ctx, moderation.Member{MemberID: "c", JoinedAt: joined}))

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Scoped listing keeps unscoped members visible in every guild view.
	scoped, err := repo.List(ctx, strPtr("g1"))
	require.NoError(t, err)
	ids := make([]string, 0, len(scoped))
	for _, m := range scoped {
		ids = append(ids, m.MemberID)
	}
	assert.ElementsMatch(t, []string{"a", "c"}, ids)
}

func TestMemberRepository_UpsertBatch_RollsBackOnFailure(t *testing.T) {
	db := setupDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	// Reject one specific id at the storage level to force a mid-batch
	// failure.
	require.NoError(t, db.Exec(`
		CREATE TRIGGER reject_bad_member BEFORE INSERT ON members
		WHEN NEW.id = 'bad'
		BEGIN SELECT RAISE(ABORT, 'rejected'); END
	`).Error)

	joined := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.UpsertBatch(ctx, []moderation.Member{
		{MemberID: "good", JoinedAt: joined},
		{MemberID: "bad", JoinedAt: joined},
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MemberModel{}).Count(&count).Error)
	assert.Zero(t, count, "a failed batch leaves the store unchanged")
}

func TestPunishmentRepository_ListByMemberOrdering(t *testing.T) {
	db := setupDB(t)
	repo := NewPunishmentRepository(db)
	ctx := context.Background()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Same timestamp on purpose: insertion id breaks the tie.
	for _, kind := range []moderation.PunishmentKind{moderation.KindWarn, moderation.KindMute, moderation.KindBan} {
		_, err := repo.Append(ctx, moderation.Punishment{MemberID: "100", Kind: kind, Timestamp: ts})
		require.NoError(t, err)
	}
	_, err := repo.Append(ctx, moderation.Punishment{MemberID: "200", Kind: moderation.KindWarn, Timestamp: ts})
	require.NoError(t, err)

	history, err := repo.ListByMember(ctx, "100")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, moderation.KindBan, history[0].Kind)
	assert.Equal(t, moderation.KindMute, history[1].Kind)
	assert.Equal(t, moderation.KindWarn, history[2].Kind)
	assert.Greater(t, history[0].ID, history[1].ID)
}

func TestPunishmentRepository_Aggregates(t *testing.T) {
	db := setupDB(t)
	repo := NewPunishmentRepository(db)
	ctx := context.Background()

	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := []moderation.Punishment{
		{MemberID: "100", Kind: moderation.KindWarn, Timestamp: ts},
		{MemberID: "100", Kind: moderation.KindWarn, Timestamp: ts},
		{MemberID: "100", Kind: moderation.KindMute, Timestamp: ts, DurationHours: intPtr(2), EndAt: timePtr(ts.Add(2 * time.Hour))},
		{MemberID: "200", Kind: moderation.KindBan, Timestamp: ts},
	}
	for _, p := range seed {
		_, err := repo.Append(ctx, p)
		require.NoError(t, err)
	}

	counts, err := repo.CountsByMember(ctx)
	require.NoError(t, err)
	assert.Equal(t, moderation.KindCounts{Warns: 2, Mutes: 1}, counts["100"])
	assert.Equal(t, moderation.KindCounts{Bans: 1}, counts["200"])

	latest, err := repo.LatestByMember(ctx)
	require.NoError(t, err)
	assert.Equal(t, moderation.KindMute, latest["100"].Kind)
	assert.Equal(t, moderation.KindBan, latest["200"].Kind)

	deleted, err := repo.DeleteByMember(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	remaining, err := repo.ListByMember(ctx, "100")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	other, err := repo.ListByMember(ctx, "200")
	require.NoError(t, err)
	assert.Len(t, other, 1, "clearing one member leaves others untouched")
}

func TestLogRepository_PeriodBoundaries(t *testing.T) {
	db := setupDB(t)
	repo := NewLogRepository(db)
	ctx := context.Background()

	period, err := moderation.ParsePeriod("2024-02")
	require.NoError(t, err)

	entries := []moderation.LogEntry{
		{MemberID: "100", Message: "first instant", Timestamp: period.Start()},
		{MemberID: "100", Message: "mid month", Timestamp: period.Start().AddDate(0, 0, 14)},
		{MemberID: "100", Message: "boundary instant", Timestamp: period.End()},
		{MemberID: "100", Message: "before", Timestamp: period.Start().Add(-time.Second)},
	}
	for _, e := range entries {
		_, err := repo.Append(ctx, e)
		require.NoError(t, err)
	}

	inside, err := repo.ListByPeriod(ctx, period)
	require.NoError(t, err)
	require.Len(t, inside, 2)
	assert.Equal(t, "first instant", inside[0].Message)
	assert.Equal(t, "mid month", inside[1].Message)
}

func TestLogRepository_DeleteAll(t *testing.T) {
	db := setupDB(t)
	repo := NewLogRepository(db)
	ctx := context.Background()

	ts := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Append(ctx, moderation.LogEntry{MemberID: "100", Message: "m", Timestamp: ts})
		require.NoError(t, err)
	}

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	deleted, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestTicketRepository_Totals(t *testing.T) {
	db := setupDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	ts := time.Date(2024, 2, 5, 9, 0, 0, 0, time.UTC)
	for _, b := range []moderation.TicketBatch{
		{AgentID: "300", AgentName: "gamma", Count: 5, Timestamp: ts},
		{AgentID: "300", AgentName: "gamma", Count: 2, Timestamp: ts.Add(time.Hour)},
		{AgentID: "400", AgentName: "delta", Count: 1, Timestamp: ts},
	} {
		_, err := repo.Append(ctx, b)
		require.NoError(t, err)
	}

	total, err := repo.TotalByAgent(ctx, "300")
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)

	none, err := repo.TotalByAgent(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, none, "no batches means zero, not an error")

	totals, err := repo.TotalsByAgent(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"300": 7, "400": 1}, totals)

	period, err := moderation.ParsePeriod("2024-02")
	require.NoError(t, err)
	batches, err := repo.ListByPeriod(ctx, period)
	require.NoError(t, err)
	assert.Len(t, batches, 3)

	deleted, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
