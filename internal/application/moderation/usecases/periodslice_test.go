package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EchoNews615/komibot/internal/domain/moderation"
	apperrors "github.com/EchoNews615/komibot/internal/shared/errors"
)

func TestPeriodSliceUseCase_Execute_Success(t *testing.T) {
	var seenPeriod moderation.Period
	useCase := NewPeriodSliceUseCase(
		&mockLogRepository{
			ListByPeriodFunc: func(ctx context.Context, p moderation.Period) ([]moderation.LogEntry, error) {
				seenPeriod = p
				return []moderation.LogEntry{{ID: 1, MemberID: "100", Message: "hello"}}, nil
			},
		},
		&mockPunishmentRepository{
			ListByPeriodFunc: func(ctx context.Context, p moderation.Period) ([]moderation.Punishment, error) {
				return []moderation.Punishment{{ID: 2, MemberID: "100", Kind: moderation.KindWarn}}, nil
			},
		},
		&mockTicketRepository{
			ListByPeriodFunc: func(ctx context.Context, p moderation.Period) ([]moderation.TicketBatch, error) {
				return []moderation.TicketBatch{{ID: 3, AgentID: "200", Count: 5}}, nil
			},
		},
		&mockLogger{},
	)

	slice, err := useCase.Execute(context.Background(), PeriodSliceQuery{Month: "2024-02"})

	require.NoError(t, err)
	assert.Equal(t, "2024-02", slice.Month)
	assert.Len(t, slice.Logs, 1)
	assert.Len(t, slice.Punishments, 1)
	assert.Len(t, slice.Tickets, 1)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), seenPeriod.Start())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), seenPeriod.End())
}

func TestPeriodSliceUseCase_Execute_EmptyMonth(t *testing.T) {
	useCase := NewPeriodSliceUseCase(
		&mockLogRepository{},
		&mockPunishmentRepository{},
		&mockTicketRepository{},
		&mockLogger{},
	)

	slice, err := useCase.Execute(context.Background(), PeriodSliceQuery{Month: "2024-11"})

	require.NoError(t, err)
	assert.NotNil(t, slice.Logs)
	assert.NotNil(t, slice.Punishments)
	assert.NotNil(t, slice.Tickets)
	assert.Empty(t, slice.Logs)
}

func TestPeriodSliceUseCase_Execute_MalformedMonth(t *testing.T) {
	tests := []string{"", "2024", "2024-2", "2024/02", "2024-13", "2024-02-01", "junk"}

	useCase := NewPeriodSliceUseCase(
		&mockLogRepository{
			ListByPeriodFunc: func(ctx context.Context, p moderation.Period) ([]moderation.LogEntry, error) {
				t.Fatal("store must not be queried for a malformed month")
				return nil, nil
			},
		},
		&mockPunishmentRepository{},
		&mockTicketRepository{},
		&mockLogger{},
	)

	for _, month := range tests {
		t.Run("month "+month, func(t *testing.T) {
			slice, err := useCase.Execute(context.Background(), PeriodSliceQuery{Month: month})

			require.Error(t, err)
			assert.Nil(t, slice)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
