// Package components holds reusable terminal renderers of the nexus CLI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/nexuslab/nexus/internal/adapters/in/cli/ui/styles"
)

const ellipsis = "..."

// Column describes one table column. A zero Width leaves the column as wide
// as its widest cell. Style, when set, picks the foreground of each cell
// from its value, e.g. to color a status column.
type Column struct {
	Title string
	Width int
	Style func(value string) lipgloss.Style
}

// Table lays out rows of plain cells under a header row.
type Table struct {
	columns []Column
	rows    [][]string

	Border      lipgloss.Border
	BorderStyle lipgloss.Style
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// NewTable creates a rounded-border table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{
		columns:     columns,
		Border:      lipgloss.RoundedBorder(),
		BorderStyle: lipgloss.NewStyle().Foreground(styles.ColorBorder),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(styles.ColorPrimary).Padding(0, 1),
		CellStyle:   lipgloss.NewStyle().Foreground(styles.ColorText).Padding(0, 1),
	}
}

// Append adds a row. Missing trailing cells render empty and extra cells
// are dropped.
func (t *Table) Append(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table. A table without columns renders empty.
func (t *Table) String() string {
	if len(t.columns) == 0 {
		return ""
	}

	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = Fit(col.Title, col.Width)
	}
	cells := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([]string, len(row))
		for c, value := range row {
			cells[r][c] = Fit(value, t.columns[c].Width)
		}
	}

	return table.New().
		Border(t.Border).
		BorderStyle(t.BorderStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return t.cellStyle(row, col)
		}).
		String()
}

func (t *Table) cellStyle(row, col int) lipgloss.Style {
	style := t.CellStyle
	if row == table.HeaderRow {
		style = t.HeaderStyle
	} else if c := t.columns[col]; c.Style != nil && row >= 0 && row < len(t.rows) {
		style = style.Foreground(c.Style(t.rows[row][col]).GetForeground())
	}
	if w := t.columns[col].Width; w > 0 {
		style = style.Width(w).MaxWidth(w)
	}
	return style
}

// Fit shortens value to at most width display cells, cutting on grapheme
// boundaries and ending in "...". Values carrying escape sequences are
// returned as-is; a width of zero or less disables the limit.
func Fit(value string, width int) string {
	if width <= 0 || strings.Contains(value, "\x1b[") || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= len(ellipsis) {
		return strings.Repeat(".", width)
	}

	budget := width - len(ellipsis)
	var b strings.Builder
	used := 0
	for g := uniseg.NewGraphemes(value); g.Next(); {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > budget {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	if b.Len() == 0 {
		return strings.Repeat(".", width)
	}
	return b.String() + ellipsis
}
