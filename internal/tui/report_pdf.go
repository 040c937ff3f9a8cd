package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/standup/internal/models"
	"github.com/akyairhashvil/standup/internal/reminder"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes the phases of day's date to a PDF in dir and
// returns its absolute path.
func GeneratePDFReport(ctx context.Context, h History, day time.Time, dir string) (string, error) {
	since := startOfDay(day)
	until := since.AddDate(0, 0, 1)
	if day.Before(until) && day.After(since) {
		until = day
	}
	phases, err := h.ListPhases(ctx, since, until)
	if err != nil {
		return "", fmt.Errorf("load phases: %w", err)
	}
	totals, err := h.Totals(ctx, since, until)
	if err != nil {
		return "", fmt.Errorf("load totals: %w", err)
	}

	date := since.Format("2006-01-02")
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Stand Up Report: %s", date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Stood: %s", FormatDuration(totals[models.PhaseStand])))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Sat: %s", FormatDuration(totals[models.PhaseSit])))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Phases")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(phases) == 0 {
		pdf.Cell(0, 8, "  - No phases recorded.")
		pdf.Ln(8)
	}
	for _, p := range phases {
		end := "running"
		if p.EndedAt != nil {
			end = p.EndedAt.In(day.Location()).Format("15:04")
		}
		line := fmt.Sprintf("%s - %s  %-9s %s of %s",
			p.StartedAt.In(day.Location()).Format("15:04"), end,
			p.Phase.Label(),
			FormatDuration(p.Elapsed(until)),
			reminder.FormatTime(p.PlannedSeconds))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename := filepath.Join(dir, fmt.Sprintf("standup_%s.pdf", date))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
