package screen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rovshanmuradov/dealboard/internal/board"
	"github.com/rovshanmuradov/dealboard/internal/ui"
	"github.com/rovshanmuradov/dealboard/internal/ui/component"
	"github.com/rovshanmuradov/dealboard/internal/ui/style"
)

const Title = "🔫 Skin Arbitrage Scanner"

// Options configures the deal board screen
type Options struct {
	// AutoRefresh triggers a refresh on this interval; zero means manual only.
	AutoRefresh time.Duration
}

// DealBoardScreen is the single-page deal board
type DealBoardScreen struct {
	ctx    context.Context
	board  *board.Board
	opts   Options
	keyMap ui.KeyMap

	width int

	// UI components
	spinner spinner.Model
	helpBar *component.HelpBar

	// State
	state       board.State
	selected    int
	lastUpdated time.Time
}

// NewDealBoardScreen creates the screen. ctx bounds every fetch it starts.
func NewDealBoardScreen(ctx context.Context, b *board.Board, opts Options) *DealBoardScreen {
	keyMap := ui.DefaultKeyMap()

	return &DealBoardScreen{
		ctx:     ctx,
		board:   b,
		opts:    opts,
		keyMap:  keyMap,
		state:   board.Initial(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(style.LoadingStyle.UnsetPadding())),
		helpBar: component.NewHelpBar().SetKeyBindings(keyMap.ShortHelp()),
	}
}

// Init mounts the board: one refresh on first activation
func (s *DealBoardScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.spinner.Tick}

	state, cycle, started := s.board.Mount(s.state)
	s.state = state
	if started {
		cmds = append(cmds, s.runCmd(cycle))
	}

	if s.opts.AutoRefresh > 0 {
		cmds = append(cmds, s.scheduleAutoRefresh())
	}

	return tea.Batch(cmds...)
}

// Update handles screen updates
func (s *DealBoardScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Refresh):
			cmds = append(cmds, s.refresh())

		case key.Matches(msg, s.keyMap.Up):
			s.moveSelection(-1)

		case key.Matches(msg, s.keyMap.Down):
			s.moveSelection(1)

		case key.Matches(msg, s.keyMap.Top):
			s.selected = 0

		case key.Matches(msg, s.keyMap.Bottom):
			s.selected = max(len(s.state.Deals)-1, 0)
		}

	case ui.RefreshMsg:
		cmds = append(cmds, s.refresh())

	case ui.AutoRefreshMsg:
		cmds = append(cmds, s.refresh(), s.scheduleAutoRefresh())

	case ui.DealsLoadedMsg:
		s.apply(msg.Result)

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return s, tea.Batch(cmds...)
}

// View renders the deal board screen
func (s *DealBoardScreen) View() string {
	var content strings.Builder

	content.WriteString(style.TitleStyle.Render(Title))
	content.WriteString("\n")
	content.WriteString(s.renderStatusBar())
	content.WriteString("\n")

	content.WriteString(Render(s.state, RenderOptions{
		Width:     s.bodyWidth(),
		Indicator: s.spinner.View() + " ",
		Selected:  s.selected,
	}))
	content.WriteString("\n")

	content.WriteString(s.helpBar.SetWidth(s.bodyWidth()).View())

	return content.String()
}

// SetWidth sets the screen width
func (s *DealBoardScreen) SetWidth(width int) {
	s.width = width
}

// State returns the current board state
func (s *DealBoardScreen) State() board.State {
	return s.state
}

func (s *DealBoardScreen) bodyWidth() int {
	if s.width <= 0 {
		return defaultRenderWidth
	}
	return s.width
}

// refresh starts a new cycle. Overlapping cycles are allowed; only the
// newest one is applied when it completes.
func (s *DealBoardScreen) refresh() tea.Cmd {
	state, cycle := s.board.Begin(s.state)
	s.state = state
	return s.runCmd(cycle)
}

func (s *DealBoardScreen) runCmd(cycle board.Cycle) tea.Cmd {
	ctx, b := s.ctx, s.board
	return func() tea.Msg {
		return ui.DealsLoadedMsg{Result: b.Run(ctx, cycle)}
	}
}

func (s *DealBoardScreen) apply(r board.Result) {
	fresh := s.board.IsLatest(r.Seq) && r.Err == nil
	s.state = s.board.Apply(s.state, r)
	if fresh {
		s.lastUpdated = time.Now()
	}
	if s.selected >= len(s.state.Deals) {
		s.selected = max(len(s.state.Deals)-1, 0)
	}
}

func (s *DealBoardScreen) moveSelection(delta int) {
	next := s.selected + delta
	if next < 0 || next >= len(s.state.Deals) {
		return
	}
	s.selected = next
}

func (s *DealBoardScreen) scheduleAutoRefresh() tea.Cmd {
	return tea.Tick(s.opts.AutoRefresh, func(time.Time) tea.Msg {
		return ui.AutoRefreshMsg{}
	})
}

// renderStatusBar renders the deal count and the time of the last good refresh
func (s *DealBoardScreen) renderStatusBar() string {
	statusParts := []string{fmt.Sprintf("Deals: %d", len(s.state.Deals))}

	if s.lastUpdated.IsZero() {
		statusParts = append(statusParts, "Updated: never")
	} else {
		statusParts = append(statusParts, fmt.Sprintf("Updated: %s", s.lastUpdated.Format("15:04:05")))
	}

	if s.opts.AutoRefresh > 0 {
		statusParts = append(statusParts, fmt.Sprintf("Auto: every %s", s.opts.AutoRefresh))
	}

	return style.StatusStyle.Render(strings.Join(statusParts, " • "))
}
