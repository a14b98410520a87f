package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/paint-calculator/internal/calculator"
	"github.com/eugenenazirov/paint-calculator/internal/survey"
)

// Format selects how results are rendered.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("output format must be one of auto, text, table, json, yaml")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// ParseFormat validates a format name. An empty name means FormatAuto.
func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w, got %q", ErrUnknownFormat, raw)
	}
}

// Resolve replaces FormatAuto with table output for terminals and text otherwise.
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return FormatTable
	}
	return FormatText
}

// Write renders the summary of a run.
func Write(w io.Writer, s survey.Summary, f Format) error {
	switch Resolve(f, w) {
	case FormatText:
		return writeText(w, s)
	case FormatTable:
		return writeTable(w, s)
	case FormatJSON:
		return writeJSON(w, newSummaryDoc(s))
	case FormatYAML:
		return writeYAML(w, newSummaryDoc(s))
	default:
		return fmt.Errorf("%w, got %q", ErrUnknownFormat, f)
	}
}

// WriteRates renders the coverage table.
func WriteRates(w io.Writer, rates []calculator.CoverageRate, f Format) error {
	switch Resolve(f, w) {
	case FormatText:
		for _, r := range rates {
			if _, err := fmt.Fprintf(w, "- %s (%s L/100m²)\n", r.PaintType, formatNumber(r.LitersPer100SqM)); err != nil {
				return err
			}
		}
		return nil
	case FormatTable:
		rows := make([][]string, 0, len(rates))
		for _, r := range rates {
			rows = append(rows, []string{r.PaintType, formatNumber(r.LitersPer100SqM)})
		}
		return writeRendered(w, newTable("Paint type", "Liters / 100 m²").Rows(rows...))
	case FormatJSON:
		return writeJSON(w, rates)
	case FormatYAML:
		return writeYAML(w, rates)
	default:
		return fmt.Errorf("%w, got %q", ErrUnknownFormat, f)
	}
}

func writeText(w io.Writer, s survey.Summary) error {
	for _, r := range s.Rooms {
		if _, err := fmt.Fprintln(w, r.Line()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total paint required: %.2f liters\n", s.TotalLiters)
	return err
}

func writeTable(w io.Writer, s survey.Summary) error {
	t := newTable("Room", "Paint", "Net area (m²)", "Liters")
	for _, r := range s.Rooms {
		if r.Err != nil {
			t.Row(r.Room, r.PaintType, "-", "error: "+r.Err.Error())
			continue
		}
		t.Row(r.Room, r.PaintType, fmt.Sprintf("%.2f", r.NetWallArea), fmt.Sprintf("%.2f", r.Liters))
	}
	t.Row("Total", "", "", fmt.Sprintf("%.2f", s.TotalLiters))
	return writeRendered(w, t)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func writeRendered(w io.Writer, t *table.Table) error {
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type roomDoc struct {
	Room        string  `json:"room" yaml:"room"`
	PaintType   string  `json:"paintType" yaml:"paint_type"`
	NetWallArea float64 `json:"netWallArea" yaml:"net_wall_area"`
	Liters      float64 `json:"liters" yaml:"liters"`
	Error       string  `json:"error,omitempty" yaml:"error,omitempty"`
}

type summaryDoc struct {
	RunID       string    `json:"runId" yaml:"run_id"`
	Rooms       []roomDoc `json:"rooms" yaml:"rooms"`
	TotalLiters float64   `json:"totalLiters" yaml:"total_liters"`
}

func newSummaryDoc(s survey.Summary) summaryDoc {
	doc := summaryDoc{
		RunID:       s.RunID,
		Rooms:       make([]roomDoc, 0, len(s.Rooms)),
		TotalLiters: round2(s.TotalLiters),
	}
	for _, r := range s.Rooms {
		rd := roomDoc{
			Room:        r.Room,
			PaintType:   r.PaintType,
			NetWallArea: round2(r.NetWallArea),
			Liters:      round2(r.Liters),
		}
		if r.Err != nil {
			rd.Error = r.Err.Error()
		}
		doc.Rooms = append(doc.Rooms, rd)
	}
	return doc
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
