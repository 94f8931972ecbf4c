package ledger

import (
	"iter"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// lotKey identifies one accumulation bucket of an Inventory: positions
// combine per currency and per opaque cost key.
type lotKey struct {
	currency string
	cost     string
}

// Inventory accumulates signed amounts per currency and cost key. It is the
// running balance of a single account. The zero-capacity map returned by
// NewInventory is ready to use.
type Inventory map[lotKey]decimal.Decimal

// NewInventory returns an empty inventory.
func NewInventory() Inventory { return make(Inventory) }

// Add combines a position into the inventory. The accumulated amount is
// always allowed to go negative: sign correctness is a concern of other
// validation stages, never of balance replay.
func (inv Inventory) Add(p Position) {
	k := lotKey{currency: p.Currency, cost: p.Cost}
	inv[k] = inv[k].Add(p.Amount)
}

// Amount returns the accumulated amount for one currency, summed across all
// cost keys, and zero when the currency never appeared.
func (inv Inventory) Amount(currency string) decimal.Decimal {
	var total decimal.Decimal
	for k, v := range inv {
		if k.currency == currency {
			total = total.Add(v)
		}
	}
	return total
}

// Merge adds every accumulated amount of other into inv. Merging is
// commutative, which makes subtree aggregation order independent.
func (inv Inventory) Merge(other Inventory) {
	for k, v := range other {
		inv[k] = inv[k].Add(v)
	}
}

// IsZero reports whether every accumulated amount is zero.
func (inv Inventory) IsZero() bool {
	for _, v := range inv {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// Currencies iterates over the currencies present in the inventory, in
// lexical order.
func (inv Inventory) Currencies() iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})
		currencies := make([]string, 0, len(inv))
		for k := range inv {
			if _, ok := visited[k.currency]; ok {
				continue
			}
			visited[k.currency] = struct{}{}
			currencies = append(currencies, k.currency)
		}
		slices.Sort(currencies)
		for _, c := range currencies {
			if !yield(c) {
				return
			}
		}
	}
}

// String renders the inventory as a space-separated list of positions in
// currency order, mostly for error messages and debugging.
func (inv Inventory) String() string {
	var parts []string
	for c := range inv.Currencies() {
		parts = append(parts, P(inv.Amount(c), c).String())
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}
