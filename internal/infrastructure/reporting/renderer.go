// Package reporting renders monthly report files from a period slice.
// It only consumes data handed to it, so a rendering failure can never
// corrupt the store.
package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/EchoNews615/komibot/internal/application/moderation/dto"
	"github.com/EchoNews615/komibot/internal/domain/moderation"
	"github.com/EchoNews615/komibot/internal/shared/logger"
)

// Renderer writes <month>.xlsx and <month>.pdf into the export
// directory and reports them as /exports/ URL paths.
type Renderer struct {
	dir    string
	logger logger.Interface
}

func NewRenderer(dir string, logger logger.Interface) *Renderer {
	return &Renderer{
		dir:    dir,
		logger: logger,
	}
}

func (r *Renderer) Render(p moderation.Period, slice *dto.PeriodSliceDTO) (*dto.ReportFilesDTO, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	xlsxPath := filepath.Join(r.dir, p.String()+".xlsx")
	if err := r.writeWorkbook(xlsxPath, slice); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	pdfPath := filepath.Join(r.dir, p.String()+".pdf")
	if err := r.writeSummary(pdfPath, p, slice); err != nil {
		return nil, fmt.Errorf("failed to write summary document: %w", err)
	}

	r.logger.Debugw("report files written", "xlsx", xlsxPath, "pdf", pdfPath)
	return &dto.ReportFilesDTO{
		XLSX: "/exports/" + p.String() + ".xlsx",
		PDF:  "/exports/" + p.String() + ".pdf",
	}, nil
}

func (r *Renderer) writeWorkbook(path string, slice *dto.PeriodSliceDTO) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Logs")
	if err := f.SetSheetRow("Logs", "A1", &[]interface{}{"ID", "MemberID", "MemberName", "GuildID", "Channel", "Message", "Timestamp"}); err != nil {
		return err
	}
	for i, e := range slice.Logs {
		guildID := ""
		if e.GuildID != nil {
			guildID = *e.GuildID
		}
		row := []interface{}{e.ID, e.MemberID, e.MemberName, guildID, channelLabel(e.ChannelName, e.ChannelID), e.Message, e.Timestamp.Format(time.RFC3339)}
		if err := f.SetSheetRow("Logs", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Punishments"); err != nil {
		return err
	}
	if err := f.SetSheetRow("Punishments", "A1", &[]interface{}{"ID", "MemberID", "MemberName", "Type", "Reason", "Channel", "Timestamp"}); err != nil {
		return err
	}
	for i, p := range slice.Punishments {
		row := []interface{}{p.ID, p.MemberID, p.MemberName, p.Kind, p.Reason, channelLabel(p.ChannelName, p.ChannelID), p.Timestamp.Format(time.RFC3339)}
		if err := f.SetSheetRow("Punishments", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet("Tickets"); err != nil {
		return err
	}
	if err := f.SetSheetRow("Tickets", "A1", &[]interface{}{"ID", "AgentID", "AgentName", "Count", "Timestamp"}); err != nil {
		return err
	}
	for i, b := range slice.Tickets {
		row := []interface{}{b.ID, b.AgentID, b.AgentName, b.Count, b.Timestamp.Format(time.RFC3339)}
		if err := f.SetSheetRow("Tickets", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func (r *Renderer) writeSummary(path string, p moderation.Period, slice *dto.PeriodSliceDTO) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "BU", 18)
	doc.Cell(0, 12, "Monthly Report - "+p.String())
	doc.Ln(16)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Logs: %d  |  Punishments: %d  |  Ticket records: %d", len(slice.Logs), len(slice.Punishments), len(slice.Tickets)))
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 14)
	doc.Cell(0, 8, "Top 10 Punishments:")
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 10)
	top := slice.Punishments
	if len(top) > 10 {
		top = top[:10]
	}
	for i, pun := range top {
		name := pun.MemberName
		if name == "" {
			name = pun.MemberID
		}
		reason := pun.Reason
		if reason == "" {
			reason = "-"
		}
		doc.Cell(0, 6, fmt.Sprintf("%d. %s - %s: %s (%s)", i+1, pun.Timestamp.Format(time.RFC3339), name, pun.Kind, reason))
		doc.Ln(6)
	}

	return doc.OutputFileAndClose(path)
}

func channelLabel(name, id string) string {
	if name != "" {
		return "#" + name
	}
	if id != "" {
		return "#" + id
	}
	return ""
}
