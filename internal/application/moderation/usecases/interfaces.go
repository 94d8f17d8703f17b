package usecases

import (
	"context"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
)

// Executor interfaces let the HTTP layer depend on behavior instead of
// concrete use cases.

type SyncMemberExecutor interface {
	Execute(ctx context.Context, cmd SyncMemberCommand) error
}

type SyncMembersBatchExecutor interface {
	Execute(ctx context.Context, cmd SyncMembersBatchCommand) (*SyncMembersBatchResult, error)
}

type RemoveMemberExecutor interface {
	Execute(ctx context.Context, cmd RemoveMemberCommand) error
}

type AppendLogExecutor interface {
	Execute(ctx context.Context, cmd AppendLogCommand) error
}

type RecordPunishmentExecutor interface {
	Execute(ctx context.Context, cmd RecordPunishmentCommand) error
}

type ClearMemberExecutor interface {
	Execute(ctx context.Context, cmd ClearMemberCommand) (*dto.ClearMemberResultDTO, error)
}

type ClearAllExecutor interface {
	Execute(ctx context.Context) (*dto.ClearAllResultDTO, error)
}

type RecordTicketBatchExecutor interface {
	Execute(ctx context.Context, cmd RecordTicketBatchCommand) error
}

type NextActionExecutor interface {
	Execute(ctx context.Context, query NextActionQuery) (*moderation.NextAction, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) ([]dto.MemberListItem, error)
}

type MemberDetailExecutor interface {
	Execute(ctx context.Context, query MemberDetailQuery) (*dto.MemberDetailDTO, error)
}

type MemberLogsExecutor interface {
	Execute(ctx context.Context, query MemberLogsQuery) ([]dto.LogEntryDTO, error)
}

type MemberPunishmentsExecutor interface {
	Execute(ctx context.Context, query MemberPunishmentsQuery) ([]dto.PunishmentDTO, error)
}

type PeriodSliceExecutor interface {
	Execute(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error)
}

type BuildMonthlyReportExecutor interface {
	Execute(ctx context.Context, cmd BuildMonthlyReportCommand) (*dto.ReportFilesDTO, error)
}

// ReportRenderer is the external reporting collaborator. It only reads
// the slice it is handed; a rendering failure can never touch stored
// facts.
type ReportRenderer interface {
	Render(p moderation.Period, slice *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error)
}
