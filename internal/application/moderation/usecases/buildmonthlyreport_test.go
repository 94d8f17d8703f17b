package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	apperrors "github.com/EchoNews615/komibot/internal/shared/errors"
)

type stubPeriodSlice struct {
	ExecuteFunc func(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error)
}

func (s *stubPeriodSlice) Execute(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error) {
	return s.ExecuteFunc(ctx, query)
}

func TestBuildMonthlyReportUseCase_Execute_Success(t *testing.T) {
	slice := &dto.PeriodSliceDTO{Month: "2024-02"}
	periodSlice := &stubPeriodSlice{
		ExecuteFunc: func(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error) {
			assert.Equal(t, "2024-02", query.Month)
			return slice, nil
		},
	}
	renderer := &mockReportRenderer{
		RenderFunc: func(p moderation.Period, got *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error) {
			assert.Equal(t, "2024-02", p.String())
			assert.Same(t, slice, got)
			return &dto.ReportFilesDTO{XLSX: "/exports/2024-02.xlsx", PDF: "/exports/2024-02.pdf"}, nil
		},
	}

	useCase := NewBuildMonthlyReportUseCase(periodSlice, renderer, &mockLogger{})
	files, err := useCase.Execute(context.Background(), BuildMonthlyReportCommand{Month: "2024-02"})

	require.NoError(t, err)
	assert.Equal(t, "/exports/2024-02.xlsx", files.XLSX)
	assert.Equal(t, "/exports/2024-02.pdf", files.PDF)
}

func TestBuildMonthlyReportUseCase_Execute_MalformedMonth(t *testing.T) {
	periodSlice := &stubPeriodSlice{
		ExecuteFunc: func(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error) {
			t.Fatal("slice must not be assembled for a malformed month")
			return nil, nil
		},
	}

	useCase := NewBuildMonthlyReportUseCase(periodSlice, &mockReportRenderer{}, &mockLogger{})
	files, err := useCase.Execute(context.Background(), BuildMonthlyReportCommand{Month: "February"})

	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestBuildMonthlyReportUseCase_Execute_RenderFailure(t *testing.T) {
	periodSlice := &stubPeriodSlice{
		ExecuteFunc: func(ctx context.Context, query PeriodSliceQuery) (*dto.PeriodSliceDTO, error) {
			return &dto.PeriodSliceDTO{Month: query.Month}, nil
		},
	}
	renderer := &mockReportRenderer{
		RenderFunc: func(p moderation.Period, slice *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error) {
			return nil, errors.New("no space left on device")
		},
	}

	useCase := NewBuildMonthlyReportUseCase(periodSlice, renderer, &mockLogger{})
	files, err := useCase.Execute(context.Background(), BuildMonthlyReportCommand{Month: "2024-02"})

	require.Error(t, err)
	assert.Nil(t, files)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
