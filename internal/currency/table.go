package currency

import "strings"

// Info describes a destination's local currency.
type Info struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// tableEntry pairs a lowercase destination substring with its currency.
// Order matters: Lookup scans top to bottom and the first match wins, so
// overlapping keys ("uae" inside "dubai uae trip") resolve predictably.
var table = []struct {
	key  string
	info Info
}{
	{"dubai", Info{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"}},
	{"uae", Info{Code: "AED", Name: "UAE Dirham", Symbol: "د.إ"}},
	{"bali", Info{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"}},
	{"indonesia", Info{Code: "IDR", Name: "Indonesian Rupiah", Symbol: "Rp"}},
	{"thailand", Info{Code: "THB", Name: "Thai Baht", Symbol: "฿"}},
	{"phuket", Info{Code: "THB", Name: "Thai Baht", Symbol: "฿"}},
	{"bangkok", Info{Code: "THB", Name: "Thai Baht", Symbol: "฿"}},
	{"singapore", Info{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"}},
	{"maldives", Info{Code: "MVR", Name: "Maldivian Rufiyaa", Symbol: "Rf"}},
	{"sri lanka", Info{Code: "LKR", Name: "Sri Lankan Rupee", Symbol: "Rs"}},
	{"nepal", Info{Code: "NPR", Name: "Nepalese Rupee", Symbol: "रू"}},
	{"vietnam", Info{Code: "VND", Name: "Vietnamese Dong", Symbol: "₫"}},
	{"malaysia", Info{Code: "MYR", Name: "Malaysian Ringgit", Symbol: "RM"}},
}

// fallbackInfo is returned when no table key matches the destination.
var fallbackInfo = Info{Code: "USD", Name: "US Dollar", Symbol: "$"}

// Lookup resolves a destination string to its currency by case-insensitive
// substring containment over the static table. Unmatched destinations map
// to USD.
func Lookup(destination string) Info {
	d := strings.ToLower(destination)
	for _, e := range table {
		if strings.Contains(d, e.key) {
			return e.info
		}
	}
	return fallbackInfo
}
