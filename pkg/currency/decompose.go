package currency

import (
	"fmt"
	"math"
)

// Part is one line of a decomposition: how many units of one denomination.
type Part struct {
	Denomination
	Count int64
}

// Subtotal returns the combined value of the part.
func (p Part) Subtotal() float64 {
	return float64(p.Count*toHundredths(p.Value)) / 100
}

// Decompose splits amount into denominations of kind, largest first,
// returning the non-zero parts and the remainder no denomination can
// represent. Arithmetic runs in integer hundredths so binary float
// artifacts in amount cannot leak into the counts.
func Decompose(amount float64, kind Kind) ([]Part, float64, error) {
	denoms := kind.Denominations()
	if denoms == nil {
		return nil, 0, fmt.Errorf("unsupported currency %q", string(kind))
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, 0, fmt.Errorf("amount must be finite, got %v", amount)
	}
	if amount < 0 {
		return nil, 0, fmt.Errorf("amount must not be negative, got %v", amount)
	}

	remaining := toHundredths(amount)
	parts := make([]Part, 0, len(denoms))
	for _, d := range denoms {
		unit := toHundredths(d.Value)
		if unit <= 0 {
			continue
		}
		count := remaining / unit
		if count == 0 {
			continue
		}
		remaining -= count * unit
		parts = append(parts, Part{Denomination: d, Count: count})
	}
	return parts, float64(remaining) / 100, nil
}

func toHundredths(v float64) int64 {
	return int64(math.Round(v * 100))
}
