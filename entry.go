package ledger

import (
	"encoding/json"

	"github.com/brel/ledger/date"
	"github.com/shopspring/decimal"
)

// DirectiveType is a typed string for identifying ledger directives.
type DirectiveType string

// Directive types used for identifying entries.
const (
	DirTransaction DirectiveType = "transaction"
	DirBalance     DirectiveType = "balance"
)

// Location is an opaque token identifying where an entry came from,
// typically "file:line". It is attached by the decoder and passed through
// verification untouched, so that errors can point back at their source.
type Location string

func (l Location) String() string { return string(l) }

// Entry is the common interface for all records of the ledger.
type Entry interface {
	What() DirectiveType // What returns the directive type of the entry (e.g. "transaction", "balance").
	When() date.Date     // When returns the date on which the entry takes effect.
	Where() Location     // Where returns the opaque source location token of the entry.
}

// directive carries the fields common to every entry. It is meant to be
// embedded in concrete entry types.
type directive struct {
	Directive DirectiveType `json:"directive"`
	Date      date.Date     `json:"date"`
	Memo      string        `json:"memo,omitempty"` // Memo provides an optional note for the entry.
	loc       Location      // set by the decoder, never serialized
}

func (d directive) What() DirectiveType { return d.Directive }
func (d directive) When() date.Date     { return d.Date }
func (d directive) Where() Location     { return d.loc }

// Posting is one (account, position) effect within a transaction.
type Posting struct {
	Account  Account
	Position Position
}

// NewPosting builds a posting against an account.
func NewPosting[T float32 | float64 | int | int32 | int64 | decimal.Decimal](account Account, amount T, currency string) Posting {
	return Posting{Account: account, Position: P(amount, currency)}
}

// MarshalJSON implements the json.Marshaler interface for Posting.
func (p Posting) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("account", p.Account)
	w.Append("amount", p.Position.Amount)
	w.Append("currency", p.Position.Currency)
	w.Optional("cost", p.Position.Cost)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Posting.
func (p *Posting) UnmarshalJSON(data []byte) error {
	var jp struct {
		Account  Account         `json:"account"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Cost     string          `json:"cost"`
	}
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	p.Account = jp.Account
	p.Position = Position{Amount: jp.Amount, Currency: jp.Currency, Cost: jp.Cost}
	return nil
}

// Transaction is a dated entry with an ordered sequence of postings.
type Transaction struct {
	directive
	Postings []Posting `json:"postings"`
}

// NewTransaction builds a transaction entry from its postings. The posting
// order is preserved.
func NewTransaction(on date.Date, memo string, postings ...Posting) Transaction {
	return Transaction{
		directive: directive{Directive: DirTransaction, Date: on, Memo: memo},
		Postings:  postings,
	}
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("directive", t.Directive)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	w.Append("postings", t.Postings)
	return w.MarshalJSON()
}

// Balance is an assertion that, on its date, the accumulated balance of an
// account (including its sub-accounts) equals the expected amount.
type Balance struct {
	directive
	Account Account
	Amount  Position  // the expected amount and currency
	Diff    *Position // observed discrepancy, set only when verification fails
}

// NewBalance builds a balance assertion entry.
func NewBalance(on date.Date, account Account, expected Position) Balance {
	return Balance{
		directive: directive{Directive: DirBalance, Date: on},
		Account:   account,
		Amount:    expected,
	}
}

// MarshalJSON implements the json.Marshaler interface for Balance.
func (b Balance) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("directive", b.Directive)
	w.Append("date", b.Date)
	w.Optional("memo", b.Memo)
	w.Append("account", b.Account)
	w.Append("amount", b.Amount.Amount)
	w.Append("currency", b.Amount.Currency)
	if b.Diff != nil {
		w.Append("diff", b.Diff.Amount)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Balance.
func (b *Balance) UnmarshalJSON(data []byte) error {
	var jb struct {
		Directive DirectiveType    `json:"directive"`
		Date      date.Date        `json:"date"`
		Memo      string           `json:"memo"`
		Account   Account          `json:"account"`
		Amount    decimal.Decimal  `json:"amount"`
		Currency  string           `json:"currency"`
		Diff      *decimal.Decimal `json:"diff"`
	}
	if err := json.Unmarshal(data, &jb); err != nil {
		return err
	}
	b.directive = directive{Directive: jb.Directive, Date: jb.Date, Memo: jb.Memo}
	b.Account = jb.Account
	b.Amount = Position{Amount: jb.Amount, Currency: jb.Currency}
	if jb.Diff != nil {
		d := Position{Amount: *jb.Diff, Currency: jb.Currency}
		b.Diff = &d
	}
	return nil
}
