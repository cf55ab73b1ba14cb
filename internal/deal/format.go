package deal

import "github.com/shopspring/decimal"

const currencySymbol = "$"

// FormatPrice renders an amount as "$12.50".
func FormatPrice(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + currencySymbol + d.Abs().StringFixed(2)
	}
	return currencySymbol + d.StringFixed(2)
}

// FormatProfit renders a profit with an explicit sign: "+$2.50", "-$1.25".
func FormatProfit(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + currencySymbol + d.Abs().StringFixed(2)
	}
	return "+" + currencySymbol + d.StringFixed(2)
}

// FormatROI renders the percentage exactly as supplied, e.g. "20%" or "12.5%".
func FormatROI(d decimal.Decimal) string {
	return d.String() + "%"
}

// Row returns the display cells for a deal in column order:
// name, buy, sell, profit, ROI.
func (d Deal) Row() []string {
	return []string{
		d.Name,
		FormatPrice(d.BuyAt),
		FormatPrice(d.SellAt),
		FormatProfit(d.Profit),
		FormatROI(d.ROI),
	}
}
