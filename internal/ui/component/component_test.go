package component

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	table := NewTable().
		AddColumns(
			TableColumn{Header: "Name", Align: lipgloss.Left},
			TableColumn{Header: "Profit", Width: 10, Align: lipgloss.Right},
		).
		SetWidth(60).
		SetRows([][]string{
			{"AK-47 | Redline", "+$3.10"},
			{"M4A4 | Howl", "+$1.00"},
		})

	view := table.View()

	assert.Contains(t, view, "Name")
	assert.Contains(t, view, "Profit")
	assert.Contains(t, view, "AK-47 | Redline")
	assert.Contains(t, view, "+$1.00")
	assert.Less(t, strings.Index(view, "Redline"), strings.Index(view, "Howl"))
}

func TestTableSelectionBounds(t *testing.T) {
	table := NewTable().
		AddColumns(TableColumn{Header: "Name", Width: 10, Align: lipgloss.Left}).
		SetRows([][]string{{"a"}, {"b"}, {"c"}})

	table.SetSelectedRow(2)
	assert.Equal(t, 2, table.selectedRow)

	// out of range is ignored
	table.SetSelectedRow(5).SetSelectedRow(-1)
	assert.Equal(t, 2, table.selectedRow)

	// shrinking the data clamps the selection
	table.SetRows([][]string{{"a"}})
	assert.Equal(t, 0, table.selectedRow)
}

func TestTableColumnForeground(t *testing.T) {
	profit := lipgloss.Color("#2AFFAA")
	table := NewTable().
		AddColumns(
			TableColumn{Header: "Name", Width: 10},
			TableColumn{Header: "Profit", Width: 10, Foreground: profit},
		).
		SetRows([][]string{{"a", "+$1.00"}, {"b", "+$2.00"}})

	// row 0 is selected: selection style wins
	assert.Equal(t, table.selectedRowStyle.GetForeground(), table.cellStyle(0, table.columns[1]).GetForeground())

	assert.Equal(t, profit, table.cellStyle(1, table.columns[1]).GetForeground())
	assert.Equal(t, table.rowStyle.GetForeground(), table.cellStyle(1, table.columns[0]).GetForeground())

	table.SetSelectable(false)
	assert.Equal(t, profit, table.cellStyle(0, table.columns[1]).GetForeground())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "StatTrak…", truncate("StatTrak™ AWP | Asiimov", 9))
	assert.Equal(t, "", truncate("anything", 0))
	assert.Equal(t, 5, lipgloss.Width(truncate("Karambit | Fade", 5)))
}

func TestHelpBarShowsBindings(t *testing.T) {
	bar := NewHelpBar().
		SetWidth(80).
		SetKeyBindings([]key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
			key.NewBinding(key.WithKeys("x")),
		})

	view := bar.View()
	assert.Contains(t, view, "refresh")
	assert.Contains(t, view, "quit")

	assert.Empty(t, NewHelpBar().View())
}
