package ui

import "github.com/rovshanmuradov/dealboard/internal/board"

// Tea message types for the deal board

// RefreshMsg asks the board to start a new refresh cycle.
type RefreshMsg struct{}

// DealsLoadedMsg carries the outcome of a refresh cycle.
type DealsLoadedMsg struct {
	Result board.Result
}

// AutoRefreshMsg is sent periodically when auto-refresh is enabled.
type AutoRefreshMsg struct{}
