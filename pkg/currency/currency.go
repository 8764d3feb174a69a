// Package currency provides the denomination catalogs for the supported
// currencies and greedy decomposition of amounts into bills and coins.
//
// Usage:
//
//	import "github.com/matzehuels/depgraph/pkg/currency"
//
//	for _, kind := range currency.All {
//	    fmt.Println(kind.Name())
//	}
package currency

import "strings"

// Kind identifies a supported currency by its ISO 4217 code.
type Kind string

const (
	MXN Kind = "MXN" // Mexican peso
	JPY Kind = "JPY" // Japanese yen
	CNY Kind = "CNY" // Chinese yuan renminbi
)

// All is the canonical list of supported currencies.
var All = []Kind{MXN, JPY, CNY}

// Find returns the Kind matching code (case-insensitive, surrounding
// whitespace ignored) and whether it is supported.
func Find(code string) (Kind, bool) {
	k := Kind(strings.ToUpper(strings.TrimSpace(code)))
	for _, known := range All {
		if known == k {
			return k, true
		}
	}
	return "", false
}

// Denomination is a single bill or coin. Labels follow each currency's own
// printing convention.
type Denomination struct {
	Label string
	Value float64 // face value in major units
}

// Name returns the currency's display name.
func (k Kind) Name() string {
	switch k {
	case MXN:
		return "Mexican peso"
	case JPY:
		return "Japanese yen"
	case CNY:
		return "Chinese yuan"
	default:
		return string(k)
	}
}

// Denominations returns the catalog for k, largest value first. The slice is
// a copy, safe for callers to reorder. Unknown kinds return nil.
func (k Kind) Denominations() []Denomination {
	src, ok := catalogs[k]
	if !ok {
		return nil
	}
	out := make([]Denomination, len(src))
	copy(out, src)
	return out
}

var catalogs = map[Kind][]Denomination{
	MXN: {
		{Label: "Billete 1000 pesos", Value: 1000},
		{Label: "Billete 500 pesos", Value: 500},
		{Label: "Billete 200 pesos", Value: 200},
		{Label: "Billete 100 pesos", Value: 100},
		{Label: "Billete 50 pesos", Value: 50},
		{Label: "Billete 20 pesos", Value: 20},
		{Label: "Moneda 10 pesos", Value: 10},
		{Label: "Moneda 5 pesos", Value: 5},
		{Label: "Moneda 2 pesos", Value: 2},
		{Label: "Moneda 1 peso", Value: 1},
		{Label: "Moneda 50 centavos", Value: 0.5},
		{Label: "Moneda 20 centavos", Value: 0.2},
		{Label: "Moneda 10 centavos", Value: 0.1},
		{Label: "Moneda 5 centavos", Value: 0.05},
	},
	JPY: {
		{Label: "10000円", Value: 10000},
		{Label: "5000円", Value: 5000},
		{Label: "2000円", Value: 2000},
		{Label: "1000円", Value: 1000},
		{Label: "500円", Value: 500},
		{Label: "100円", Value: 100},
		{Label: "50円", Value: 50},
		{Label: "10円", Value: 10},
		{Label: "5円", Value: 5},
		{Label: "1円", Value: 1},
	},
	CNY: {
		{Label: "100元", Value: 100},
		{Label: "50元", Value: 50},
		{Label: "20元", Value: 20},
		{Label: "10元", Value: 10},
		{Label: "5元", Value: 5},
		{Label: "1元", Value: 1},
		{Label: "5角", Value: 0.5},
		{Label: "1角", Value: 0.1},
		{Label: "5分", Value: 0.05},
		{Label: "2分", Value: 0.02},
		{Label: "1分", Value: 0.01},
	},
}
