// internal/deal/deal.go
package deal

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Deal is a single arbitrage opportunity as reported by the pricing backend.
// Values are taken as supplied; nothing here recomputes profit or ROI.
type Deal struct {
	Name   string          `json:"name"`
	BuyAt  decimal.Decimal `json:"buy_at"`
	SellAt decimal.Decimal `json:"sell_at"`
	Profit decimal.Decimal `json:"profit"`
	ROI    decimal.Decimal `json:"roi"`
}

// SortByProfit returns a copy of deals ordered by profit, highest first.
// Deals with equal profit keep their source order.
func SortByProfit(deals []Deal) []Deal {
	sorted := make([]Deal, len(deals))
	copy(sorted, deals)

	slices.SortStableFunc(sorted, func(a, b Deal) int {
		return b.Profit.Cmp(a.Profit)
	})
	return sorted
}

// IsSortedByProfit reports whether deals are in non-increasing profit order.
func IsSortedByProfit(deals []Deal) bool {
	for i := 1; i < len(deals); i++ {
		if deals[i-1].Profit.LessThan(deals[i].Profit) {
			return false
		}
	}
	return true
}
