package usecases

import (
	"context"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

type mockMemberRepository struct {
	UpsertFunc      func(ctx context.Context, m moderation.Member) error
	UpsertBatchFunc func(ctx context.Context, members []moderation.Member) (int, error)
	DeleteFunc      func(ctx context.Context, memberID string) error
	FindByIDFunc    func(ctx context.Context, memberID string) (*moderation.Member, error)
	ListFunc        func(ctx context.Context, guildScope *string) ([]moderation.Member, error)
}

func (m *mockMemberRepository) Upsert(ctx context.Context, member moderation.Member) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, member)
	}
	return nil
}

func (m *mockMemberRepository) UpsertBatch(ctx context.Context, members []moderation.Member) (int, error) {
	if m.UpsertBatchFunc != nil {
		return m.UpsertBatchFunc(ctx, members)
	}
	return len(members), nil
}

func (m *mockMemberRepository) Delete(ctx context.Context, memberID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, memberID)
	}
	return nil
}

func (m *mockMemberRepository) FindByID(ctx context.Context, memberID string) (*moderation.Member, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *mockMemberRepository) List(ctx context.Context, guildScope *string) ([]moderation.Member, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, guildScope)
	}
	return nil, nil
}

type mockLogRepository struct {
	AppendFunc         func(ctx context.Context, e moderation.LogEntry) (int64, error)
	ListByMemberFunc   func(ctx context.Context, memberID string) ([]moderation.LogEntry, error)
	ListByPeriodFunc   func(ctx context.Context, p moderation.Period) ([]moderation.LogEntry, error)
	DeleteByMemberFunc func(ctx context.Context, memberID string) (int64, error)
	DeleteAllFunc      func(ctx context.Context) (int64, error)
}

func (m *mockLogRepository) Append(ctx context.Context, e moderation.LogEntry) (int64, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, e)
	}
	return 1, nil
}

func (m *mockLogRepository) ListByMember(ctx context.Context, memberID string) ([]moderation.LogEntry, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *mockLogRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.LogEntry, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, p)
	}
	return nil, nil
}

func (m *mockLogRepository) DeleteByMember(ctx context.Context, memberID string) (int64, error) {
	if m.DeleteByMemberFunc != nil {
		return m.DeleteByMemberFunc(ctx, memberID)
	}
	return 0, nil
}

func (m *mockLogRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockPunishmentRepository struct {
	AppendFunc         func(ctx context.Context, p moderation.Punishment) (int64, error)
	ListByMemberFunc   func(ctx context.Context, memberID string) ([]moderation.Punishment, error)
	ListByPeriodFunc   func(ctx context.Context, p moderation.Period) ([]moderation.Punishment, error)
	CountsByMemberFunc func(ctx context.Context) (map[string]moderation.KindCounts, error)
	LatestByMemberFunc func(ctx context.Context) (map[string]moderation.Punishment, error)
	DeleteByMemberFunc func(ctx context.Context, memberID string) (int64, error)
	DeleteAllFunc      func(ctx context.Context) (int64, error)
}

func (m *mockPunishmentRepository) Append(ctx context.Context, p moderation.Punishment) (int64, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, p)
	}
	return 1, nil
}

func (m *mockPunishmentRepository) ListByMember(ctx context.Context, memberID string) ([]moderation.Punishment, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *mockPunishmentRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.Punishment, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, p)
	}
	return nil, nil
}

func (m *mockPunishmentRepository) CountsByMember(ctx context.Context) (map[string]moderation.KindCounts, error) {
	if m.CountsByMemberFunc != nil {
		return m.CountsByMemberFunc(ctx)
	}
	return nil, nil
}

func (m *mockPunishmentRepository) LatestByMember(ctx context.Context) (map[string]moderation.Punishment, error) {
	if m.LatestByMemberFunc != nil {
		return m.LatestByMemberFunc(ctx)
	}
	return nil, nil
}

func (m *mockPunishmentRepository) DeleteByMember(ctx context.Context, memberID string) (int64, error) {
	if m.DeleteByMemberFunc != nil {
		return m.DeleteByMemberFunc(ctx, memberID)
	}
	return 0, nil
}

func (m *mockPunishmentRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockTicketRepository struct {
	AppendFunc        func(ctx context.Context, b moderation.TicketBatch) (int64, error)
	TotalByAgentFunc  func(ctx context.Context, agentID string) (int64, error)
	TotalsByAgentFunc func(ctx context.Context) (map[string]int64, error)
	ListByPeriodFunc  func(ctx context.Context, p moderation.Period) ([]moderation.TicketBatch, error)
	DeleteAllFunc     func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepository) Append(ctx context.Context, b moderation.TicketBatch) (int64, error) {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, b)
	}
	return 1, nil
}

func (m *mockTicketRepository) TotalByAgent(ctx context.Context, agentID string) (int64, error) {
	if m.TotalByAgentFunc != nil {
		return m.TotalByAgentFunc(ctx, agentID)
	}
	return 0, nil
}

func (m *mockTicketRepository) TotalsByAgent(ctx context.Context) (map[string]int64, error) {
	if m.TotalsByAgentFunc != nil {
		return m.TotalsByAgentFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByPeriod(ctx context.Context, p moderation.Period) ([]moderation.TicketBatch, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, p)
	}
	return nil, nil
}

func (m *mockTicketRepository) DeleteAll(ctx context.Context) (int64, error) {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return 0, nil
}

type mockReportRenderer struct {
	RenderFunc func(p moderation.Period, slice *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error)
}

func (m *mockReportRenderer) Render(p moderation.Period, slice *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(p, slice)
	}
	return &dto.ReportFilesDTO{}, nil
}

type mockLogger struct {
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, args ...any) { m.record(msg) }
func (m *mockLogger) Info(msg string, args ...any)  { m.record(msg) }
func (m *mockLogger) Warn(msg string, args ...any)  { m.record(msg) }
func (m *mockLogger) Error(msg string, args ...any) { m.record(msg) }

func (m *mockLogger) With(args ...any) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) { m.record(msg) }
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  { m.record(msg) }
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  { m.record(msg) }
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) { m.record(msg) }
