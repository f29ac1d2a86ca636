package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spektr-org/hrdiagram/engine"
)

// ============================================================================
// TABLE OUTPUT — count tables for the terminal, CSV or JSON
// ============================================================================

// Table formats.
const (
	FormatTable  = "table"
	FormatCSV    = "csv"
	FormatJSON   = "json"
	FormatPretty = "pretty"
)

// WriteTable writes one count table in the given format.
func WriteTable(w io.Writer, data *engine.TableData, format string) error {
	if data == nil {
		return nil
	}
	switch format {
	case FormatTable, "":
		return writeStyledTable(w, data)
	case FormatCSV:
		return writeTableCSV(w, data)
	case FormatJSON, FormatPretty:
		return writeJSON(w, data, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeStyledTable(w io.Writer, data *engine.TableData) error {
	headers := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		headers[i] = c.Label
	}

	rows := make([][]string, 0, len(data.Rows)+1)
	rows = append(rows, data.Rows...)
	if data.Summary != nil {
		rows = append(rows, summaryRow(data))
	}
	totalRow := -1
	if data.Summary != nil {
		totalRow = len(rows) - 1
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch row {
			case table.HeaderRow:
				style = HeaderStyle
			case totalRow:
				style = TotalStyle
			default:
				style = CellStyle
			}
			if col < len(data.Columns) && data.Columns[col].Align == "right" {
				style = style.Align(lipgloss.Right)
			}
			return style
		})

	if data.Title != "" {
		if _, err := fmt.Fprintln(w, TitleStyle.Render(data.Title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func writeTableCSV(w io.Writer, data *engine.TableData) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		headers[i] = c.Label
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	for _, row := range data.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, v interface{}, format string) error {
	var out []byte
	var err error

	if format == FormatPretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// summaryRow lays the summary out under the matching columns.
func summaryRow(data *engine.TableData) []string {
	row := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		if i == 0 {
			row[i] = data.Summary.Label
			continue
		}
		row[i] = data.Summary.Values[c.Key]
	}
	return row
}
