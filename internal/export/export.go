package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tasklist/internal/domain"
)

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatPDF:
		return f, nil
	case "":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/json"
}

type SnapshotSource interface {
	SnapshotFor(f domain.Filter) domain.Snapshot
}

type Exporter struct{ src SnapshotSource }

func NewExporter(src SnapshotSource) *Exporter { return &Exporter{src: src} }

type report struct {
	Filter  domain.Filter  `json:"filter"`
	Summary domain.Summary `json:"summary"`
	Tasks   []domain.Task  `json:"tasks"`
}

// Export renders the tasks visible under filter. The summary always
// covers the full list.
func (e *Exporter) Export(ctx context.Context, format Format, filter domain.Filter) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := e.src.SnapshotFor(filter)

	switch format {
	case FormatJSON:
		return json.MarshalIndent(report{Filter: snap.Filter, Summary: snap.Summary, Tasks: snap.Tasks}, "", "  ")
	case FormatCSV:
		return writeCSV(snap.Tasks)
	case FormatPDF:
		return writePDF(snap)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

func writeCSV(tasks []domain.Task) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "title", "description", "completed", "priority", "due_date", "created_at"})
	for _, t := range tasks {
		_ = w.Write([]string{t.ID, t.Title, t.Description, strconv.FormatBool(t.Completed), string(t.Priority), t.DueDate, t.CreatedAt})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return b.Bytes(), nil
}

func writePDF(snap domain.Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task Report", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Task Manager")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, snap.Summary.String())
	pdf.Ln(6)
	pdf.Cell(0, 6, "Filter: "+string(snap.Filter))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	if len(snap.Tasks) == 0 {
		pdf.MultiCell(0, 6, snap.Filter.EmptyMessage(), "0", "L", false)
	}
	for _, t := range snap.Tasks {
		pdf.MultiCell(0, 6, taskLine(t), "0", "L", false)
		if t.Description != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, "    "+t.Description, "0", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func taskLine(t domain.Task) string {
	mark := "[ ]"
	if t.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s  (%s, created %s", mark, t.Title, t.Priority, t.CreatedAt)
	if t.DueDate != "" {
		line += ", due " + t.DueDate
	}
	return line + ")"
}
