package reporting

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

func testSlice() *dto.PeriodSliceDTO {
	ts := time.Date(2024, 2, 10, 15, 30, 0, 0, time.UTC)
	guild := "guild-1"
	return &dto.PeriodSliceDTO{
		Month: "2024-02",
		Logs: []dto.LogEntryDTO{
			{ID: 1, MemberID: "100", MemberName: "alpha", GuildID: &guild, ChannelID: "555", ChannelName: "general", Message: "spam", Timestamp: ts},
		},
		Punishments: []dto.PunishmentDTO{
			{ID: 2, MemberID: "100", MemberName: "alpha", Kind: "warn", Reason: "spam", ChannelID: "555", Timestamp: ts},
			{ID: 3, MemberID: "200", Kind: "mute", Timestamp: ts.Add(time.Hour)},
		},
		Tickets: []dto.TicketBatchDTO{
			{ID: 4, AgentID: "300", AgentName: "gamma", Count: 5, Timestamp: ts},
		},
	}
}

func TestRenderer_Render_WritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	period, err := moderation.ParsePeriod("2024-02")
	require.NoError(t, err)

	renderer := NewRenderer(dir, logger.NewLogger())
	files, err := renderer.Render(period, testSlice())

	require.NoError(t, err)
	assert.Equal(t, "/exports/2024-02.xlsx", files.XLSX)
	assert.Equal(t, "/exports/2024-02.pdf", files.PDF)

	xlsxInfo, err := os.Stat(filepath.Join(dir, "2024-02.xlsx"))
	require.NoError(t, err)
	assert.Positive(t, xlsxInfo.Size())

	pdfInfo, err := os.Stat(filepath.Join(dir, "2024-02.pdf"))
	require.NoError(t, err)
	assert.Positive(t, pdfInfo.Size())
}

func TestRenderer_Render_WorkbookContents(t *testing.T) {
	dir := t.TempDir()
	period, err := moderation.ParsePeriod("2024-02")
	require.NoError(t, err)

	renderer := NewRenderer(dir, logger.NewLogger())
	_, err = renderer.Render(period, testSlice())
	require.NoError(t, err)

	f, err := excelize.OpenFile(filepath.Join(dir, "2024-02.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Logs", "Punishments", "Tickets"}, f.GetSheetList())

	logRows, err := f.GetRows("Logs")
	require.NoError(t, err)
	require.Len(t, logRows, 2)
	assert.Equal(t, []string{"ID", "MemberID", "MemberName", "GuildID", "Channel", "Message", "Timestamp"}, logRows[0])
	assert.Equal(t, "#general", logRows[1][4])
	assert.Equal(t, "spam", logRows[1][5])

	punRows, err := f.GetRows("Punishments")
	require.NoError(t, err)
	require.Len(t, punRows, 3)
	assert.Equal(t, "warn", punRows[1][3])
	// Channel falls back to the raw id when the name is missing.
	assert.Equal(t, "#555", punRows[1][5])

	ticketRows, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, ticketRows, 2)
	assert.Equal(t, "gamma", ticketRows[1][2])
	assert.Equal(t, "5", ticketRows[1][3])
}

func TestRenderer_Render_EmptySlice(t *testing.T) {
	dir := t.TempDir()
	period, err := moderation.ParsePeriod("2024-03")
	require.NoError(t, err)

	renderer := NewRenderer(dir, logger.NewLogger())
	files, err := renderer.Render(period, &dto.PeriodSliceDTO{Month: "2024-03"})

	require.NoError(t, err)
	assert.Equal(t, "/exports/2024-03.xlsx", files.XLSX)

	f, err := excelize.OpenFile(filepath.Join(dir, "2024-03.xlsx"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Punishments")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header row only")
}
