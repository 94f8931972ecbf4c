package ledger

import (
	"iter"
	"slices"
	"sort"
)

// Ledger represents a list of entries.
//
// In a Ledger entries are always in chronological order, which is the
// precondition the verification pass relies on.
type Ledger struct {
	entries []Entry
	name    string
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: make([]Entry, 0)}
}

// Name returns the ledger name, usually derived from its file path.
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger name.
func (l *Ledger) SetName(name string) { l.name = name }

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int { return len(l.entries) }

// Append appends entries to this ledger and maintains the chronological
// order of entries.
func (l *Ledger) Append(entries ...Entry) {
	l.entries = append(l.entries, entries...)
	l.stableSort()
}

// stableSort sorts the ledger by entry date. The sort is stable, meaning
// entries on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].When().Before(l.entries[j].When())
	})
}

// Entries returns an iterator that yields each entry in chronological order.
func (l *Ledger) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range l.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// All returns a copy of the entry list, in chronological order.
func (l *Ledger) All() []Entry {
	return slices.Clone(l.entries)
}

// Accounts iterates over all unique accounts mentioned in the ledger, via a
// posting or an assertion, in lexical order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		accounts := mentionedAccounts(l.entries)
		slices.Sort(accounts)
		for _, a := range accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Check runs a balance verification pass over the ledger. See CheckBalances.
func (l *Ledger) Check(opts CheckOptions) ([]Entry, []BalanceError, error) {
	return CheckBalances(l.entries, opts)
}
