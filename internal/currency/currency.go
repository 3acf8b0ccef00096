package currency

import "strconv"

// Currency is a display currency with its exchange rate against the base
// currency. Prices are stored in the base currency and converted on read.
type Currency struct {
	Code     string  `json:"code"`
	Symbol   string  `json:"symbol"`
	Rate     float64 `json:"rate"`
	IsActive bool    `json:"isActive"`
}

// Format converts a base-currency amount using the currency's rate and
// renders it as a display string, e.g. "$12.34".
func Format(amount float64, cur Currency) string {
	rate := cur.Rate
	if rate <= 0 {
		rate = 1
	}
	return cur.Symbol + strconv.FormatFloat(amount*rate, 'f', 2, 64)
}
