package ledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Position is a signed amount of one currency, optionally tagged with an
// opaque cost-basis key. Positions with different cost keys accumulate
// separately; the key itself is never interpreted here.
type Position struct {
	Amount   decimal.Decimal
	Currency string
	Cost     string // opaque cost-basis key, empty for plain cash
}

// P builds a Position from any numeric amount and a currency.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](amount T, currency string) Position {
	return Position{Amount: newDecimal(amount), Currency: currency}
}

// currency returns the position's full currency metadata.
func (p Position) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, p.Currency).Currency()
}

// Neg returns the position with its amount negated.
func (p Position) Neg() Position {
	return Position{Amount: p.Amount.Neg(), Currency: p.Currency, Cost: p.Cost}
}

// Equal reports whether two positions have the same amount, currency and cost key.
func (p Position) Equal(q Position) bool {
	return p.Amount.Equal(q.Amount) && p.Currency == q.Currency && p.Cost == q.Cost
}

// IsZero reports whether the position's amount is zero.
func (p Position) IsZero() bool { return p.Amount.IsZero() }

// String renders the position using the currency's standard formatting when
// the currency is known to go-money, and a plain "<amount> <currency>"
// otherwise.
func (p Position) String() string {
	cur := p.currency()
	if money.GetCurrency(p.Currency) == nil {
		return p.Amount.String() + " " + p.Currency
	}
	dec := p.Amount.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but always carries an explicit sign, with zero
// rendered as "-".
func (p Position) SignedString() string {
	if p.Amount.IsZero() {
		return "-"
	}
	if p.Amount.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
