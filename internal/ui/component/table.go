package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/dealboard/internal/ui/style"
)

// TableColumn represents a column configuration. A zero Width makes the
// column share whatever space is left. A non-empty Foreground colours the
// column's cells in unselected rows.
type TableColumn struct {
	Header     string
	Width      int
	Align      lipgloss.Position
	Foreground lipgloss.Color
}

// TableRow represents a row of data
type TableRow struct {
	Data  []string
	Style lipgloss.Style
}

// Table represents a data table component
type Table struct {
	columns     []TableColumn
	rows        []TableRow
	width       int
	selectedRow int

	// Styling
	headerStyle      lipgloss.Style
	rowStyle         lipgloss.Style
	selectedRowStyle lipgloss.Style
	borderStyle      lipgloss.Style

	// Configuration
	selectable bool
	zebra      bool
}

// NewTable creates a new table component
func NewTable() *Table {
	palette := style.DefaultPalette()

	return &Table{
		columns: make([]TableColumn, 0),
		rows:    make([]TableRow, 0),

		headerStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 1),

		rowStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1),

		selectedRowStyle: lipgloss.NewStyle().
			Foreground(palette.Background).
			Background(palette.Primary).
			Padding(0, 1),

		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		selectable: true,
	}
}

// AddColumns appends preconfigured columns
func (t *Table) AddColumns(columns ...TableColumn) *Table {
	t.columns = append(t.columns, columns...)
	return t
}

// SetRows sets all table rows
func (t *Table) SetRows(rows [][]string) *Table {
	t.rows = make([]TableRow, len(rows))
	for i, rowData := range rows {
		t.rows[i] = TableRow{
			Data:  rowData,
			Style: t.rowStyle,
		}
	}
	if t.selectedRow >= len(t.rows) {
		t.selectedRow = max(len(t.rows)-1, 0)
	}
	return t
}

// SetWidth sets the total width available to the table, border excluded
func (t *Table) SetWidth(width int) *Table {
	t.width = width
	return t
}

// SetSelectedRow sets the currently selected row
func (t *Table) SetSelectedRow(index int) *Table {
	if index >= 0 && index < len(t.rows) {
		t.selectedRow = index
	}
	return t
}

// SetSelectable enables/disables row selection
func (t *Table) SetSelectable(selectable bool) *Table {
	t.selectable = selectable
	return t
}

// SetZebra enables/disables alternating row colors
func (t *Table) SetZebra(zebra bool) *Table {
	t.zebra = zebra
	return t
}

// View renders the table
func (t *Table) View() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var content strings.Builder

	for i, col := range t.columns {
		content.WriteString(renderCell(col.Header, widths[i], col.Align, t.headerStyle))
		if i < len(t.columns)-1 {
			content.WriteString("│")
		}
	}
	content.WriteString("\n")

	for i := range t.columns {
		content.WriteString(strings.Repeat("─", widths[i]))
		if i < len(t.columns)-1 {
			content.WriteString("┼")
		}
	}

	for rowIndex, row := range t.rows {
		content.WriteString("\n")

		for i, col := range t.columns {
			cellData := ""
			if i < len(row.Data) {
				cellData = row.Data[i]
			}

			cellStyle := t.cellStyle(rowIndex, col)
			content.WriteString(renderCell(cellData, widths[i], col.Align, cellStyle))
			if i < len(t.columns)-1 {
				content.WriteString("│")
			}
		}
	}

	return t.borderStyle.Render(content.String())
}

// cellStyle resolves the style for one cell. Selection wins over zebra
// striping and column colours.
func (t *Table) cellStyle(rowIndex int, col TableColumn) lipgloss.Style {
	if t.selectable && rowIndex == t.selectedRow {
		return t.selectedRowStyle
	}

	cellStyle := t.rows[rowIndex].Style
	if t.zebra && rowIndex%2 == 1 {
		cellStyle = cellStyle.Background(style.DefaultPalette().BackgroundAlt)
	}
	if col.Foreground != "" {
		cellStyle = cellStyle.Foreground(col.Foreground)
	}
	return cellStyle
}

// renderCell renders a single table cell on exactly one line
func renderCell(content string, width int, align lipgloss.Position, cellStyle lipgloss.Style) string {
	inner := width - cellStyle.GetHorizontalPadding()
	content = truncate(content, inner)
	return cellStyle.Width(width).Align(align).Render(content)
}

// truncate shortens s to at most width display cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	return b.String() + "…"
}

// columnWidths resolves auto-width columns against the table width
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.columns))

	totalExplicitWidth := 0
	autoWidthColumns := 0
	for i, col := range t.columns {
		widths[i] = col.Width
		if col.Width > 0 {
			totalExplicitWidth += col.Width
		} else {
			autoWidthColumns++
		}
	}
	if autoWidthColumns == 0 {
		return widths
	}

	separatorWidth := len(t.columns) - 1
	availableWidth := t.width - totalExplicitWidth - separatorWidth
	autoWidth := minAutoWidth
	if availableWidth/autoWidthColumns > autoWidth {
		autoWidth = availableWidth / autoWidthColumns
	}

	for i := range widths {
		if widths[i] <= 0 {
			widths[i] = autoWidth
		}
	}
	return widths
}

const minAutoWidth = 16
