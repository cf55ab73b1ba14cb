package screen

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/rovshanmuradov/dealboard/internal/board"
	"github.com/rovshanmuradov/dealboard/internal/deal"
	"github.com/rovshanmuradov/dealboard/internal/ui/component"
	"github.com/rovshanmuradov/dealboard/internal/ui/style"
)

const (
	LoadingText = "Scanning markets..."
	EmptyText   = "No profitable deals found right now."

	defaultRenderWidth = 100
)

// dealColumns follows the cell order of deal.Row.
var dealColumns = []component.TableColumn{
	{Header: "Skin Name", Align: lipgloss.Left},
	{Header: "Buy At (Skinport)", Width: 19, Align: lipgloss.Right},
	{Header: "Sell At (Steam)", Width: 17, Align: lipgloss.Right},
	{Header: "Profit", Width: 12, Align: lipgloss.Right, Foreground: style.DefaultPalette().Profit},
	{Header: "ROI", Width: 9, Align: lipgloss.Right},
}

// RenderOptions carries presentation-only inputs that are not part of the
// board state.
type RenderOptions struct {
	// Width is the space available to the body, in cells.
	Width int
	// Indicator is prefixed to the loading text (a spinner frame in the TUI).
	Indicator string
	// Selected is the highlighted row; negative disables highlighting.
	Selected int
}

// ErrorBanner is the text shown for a failed refresh.
func ErrorBanner(msg string) string {
	return fmt.Sprintf("Error: %s. Is backend running?", msg)
}

// Render draws the body of the board for s. It depends on nothing but its
// arguments.
func Render(s board.State, opts RenderOptions) string {
	switch s.Phase() {
	case board.PhaseLoading:
		return style.LoadingStyle.Render(opts.Indicator + LoadingText)
	case board.PhaseError:
		return style.ErrorStyle.Render(ErrorBanner(s.Error))
	}

	if len(s.Deals) == 0 {
		return style.InfoStyle.Render(EmptyText)
	}

	return newDealTable(opts).
		SetRows(lo.Map(s.Deals, func(d deal.Deal, _ int) []string { return d.Row() })).
		SetSelectedRow(opts.Selected).
		View()
}

func newDealTable(opts RenderOptions) *component.Table {
	width := opts.Width
	if width <= 0 {
		width = defaultRenderWidth
	}

	return component.NewTable().
		AddColumns(dealColumns...).
		SetWidth(width - 2). // border
		SetSelectable(opts.Selected >= 0).
		SetZebra(true)
}
