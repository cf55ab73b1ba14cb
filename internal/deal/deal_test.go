package deal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDeal(name string, profit float64) Deal {
	return Deal{Name: name, Profit: decimal.NewFromFloat(profit)}
}

func TestSortByProfit(t *testing.T) {
	tests := []struct {
		name  string
		input []Deal
		want  []string
	}{
		{
			name:  "empty",
			input: []Deal{},
			want:  []string{},
		},
		{
			name:  "already descending",
			input: []Deal{mustDeal("a", 3), mustDeal("b", 2), mustDeal("c", 1)},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "ascending input",
			input: []Deal{mustDeal("a", 1), mustDeal("b", 2.5), mustDeal("c", 10)},
			want:  []string{"c", "b", "a"},
		},
		{
			name:  "ties keep source order",
			input: []Deal{mustDeal("a", 1), mustDeal("b", 5), mustDeal("c", 1), mustDeal("d", 5)},
			want:  []string{"b", "d", "a", "c"},
		},
		{
			name:  "negative profits last",
			input: []Deal{mustDeal("loss", -2), mustDeal("win", 0.01), mustDeal("flat", 0)},
			want:  []string{"win", "flat", "loss"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortByProfit(tt.input)

			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.want, names)
			assert.True(t, IsSortedByProfit(got))
		})
	}
}

func TestSortByProfitDoesNotMutateInput(t *testing.T) {
	input := []Deal{mustDeal("a", 1), mustDeal("b", 2)}

	_ = SortByProfit(input)

	assert.Equal(t, "a", input[0].Name)
	assert.Equal(t, "b", input[1].Name)
}

func TestDealRowFormatting(t *testing.T) {
	d := Deal{
		Name:   "AK-47 | Slate (Field-Tested)",
		BuyAt:  decimal.NewFromFloat(12.5),
		SellAt: decimal.NewFromInt(15),
		Profit: decimal.NewFromFloat(2.5),
		ROI:    decimal.NewFromInt(20),
	}

	assert.Equal(t, []string{"AK-47 | Slate (Field-Tested)", "$12.50", "$15.00", "+$2.50", "20%"}, d.Row())
}

func TestFormatters(t *testing.T) {
	roi, err := decimal.NewFromString("12.5")
	require.NoError(t, err)

	assert.Equal(t, "12.5%", FormatROI(roi))
	assert.Equal(t, "-$1.25", FormatProfit(decimal.NewFromFloat(-1.25)))
	assert.Equal(t, "+$0.00", FormatProfit(decimal.Zero))
	assert.Equal(t, "$0.10", FormatPrice(decimal.NewFromFloat(0.1)))
	assert.Equal(t, "$1234.57", FormatPrice(decimal.NewFromFloat(1234.567)))
}

func TestFormatRoundsHalfCentsAwayFromZero(t *testing.T) {
	tests := []struct {
		in     string
		price  string
		profit string
	}{
		{in: "1.005", price: "$1.01", profit: "+$1.01"},
		{in: "2.675", price: "$2.68", profit: "+$2.68"},
		{in: "-0.125", price: "-$0.13", profit: "-$0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			require.NoError(t, err)

			assert.Equal(t, tt.price, FormatPrice(d))
			assert.Equal(t, tt.profit, FormatProfit(d))
		})
	}
}
