package ledger

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the maximum absolute discrepancy a balance assertion
// may show before it is reported as failed. Real-world imports accumulate
// rounding error (FOREX brokerages accumulate up to 1bp), so assertions
// inserted at regular intervals need a little slack.
var DefaultTolerance = decimal.NewFromFloat(0.015)

// CheckOptions configures a verification pass.
type CheckOptions struct {
	// Tolerance overrides DefaultTolerance when positive.
	Tolerance decimal.Decimal
}

func (o CheckOptions) tolerance() decimal.Decimal {
	if o.Tolerance.IsPositive() {
		return o.Tolerance
	}
	return DefaultTolerance
}

// CheckBalances verifies every balance assertion in entries against the
// balances accumulated by replaying the ledger.
//
// Entries must be in non-decreasing date order. The replay maintains running
// balances only for accounts that participate in some assertion's subtree:
// the asserted accounts themselves, their ancestors and their descendants.
// Postings to any other account are skipped, since they cannot influence an
// assertion.
//
// It returns a new entry list of the same length and order, where every
// failing assertion is replaced by a copy carrying the observed discrepancy
// in its Diff field, together with one BalanceError per failure, in
// encounter order. The non-nil error return is reserved for internal
// contract violations (wrapping ErrInternal) and aborts the pass; assertion
// failures alone never make it non-nil.
func CheckBalances(entries []Entry, opts CheckOptions) ([]Entry, []BalanceError, error) {
	root := newAccountTree()
	for account := range trackedAccounts(entries) {
		root.getOrCreate(account)
	}
	return replay(root, entries, opts.tolerance())
}

// replay consumes entries in order against the tracked hierarchy and
// evaluates every assertion. The hierarchy must contain a node for every
// asserted account; replay aborts with ErrInternal otherwise.
func replay(root *accountNode, entries []Entry, tolerance decimal.Decimal) ([]Entry, []BalanceError, error) {
	newEntries := make([]Entry, 0, len(entries))
	var checkErrors []BalanceError

	for _, entry := range entries {
		switch e := entry.(type) {
		case Transaction:
			// Update the running balance of every tracked posting account.
			for _, posting := range e.Postings {
				node := root.get(posting.Account)
				if node == nil {
					// Untracked: no assertion can observe this posting.
					continue
				}
				node.balance.Add(posting.Position)
			}

		case Balance:
			node := root.get(e.Account)
			if node == nil {
				// Selection pre-created a node for every asserted account.
				// Reaching this point is a bug in this package.
				return nil, nil, fmt.Errorf("%w: asserted account %q has no tracked node", ErrInternal, e.Account)
			}

			// Aggregate the account and all its sub-accounts, then keep
			// only the asserted currency.
			accumulated := node.subtreeBalance().Amount(e.Amount.Currency)

			diff := accumulated.Sub(e.Amount.Amount)
			if diff.Abs().GreaterThan(tolerance) {
				direction := "too much"
				if diff.IsNegative() {
					direction = "too little"
				}
				diffPos := Position{Amount: diff, Currency: e.Amount.Currency}
				accumulatedPos := Position{Amount: accumulated, Currency: e.Amount.Currency}
				checkErrors = append(checkErrors, BalanceError{
					Loc: e.Where(),
					Msg: fmt.Sprintf("balance failed for %q: expected %s != accumulated %s (%s %s)",
						e.Account, e.Amount, accumulatedPos, diffPos, direction),
					Entry: entry,
				})

				// Substitute a copy of the assertion carrying the observed
				// discrepancy; every other field is untouched.
				e.Diff = &diffPos
				entry = e
			}
		}
		newEntries = append(newEntries, entry)
	}

	return newEntries, checkErrors, nil
}

// trackedAccounts computes the minimal set of accounts whose running balance
// must be maintained to evaluate every assertion in entries: accounts that
// carry an assertion, plus every ancestor and descendant of such an account.
// The set is keyed by account; iteration order is unspecified.
func trackedAccounts(entries []Entry) map[Account]struct{} {
	asserted := make(map[Account]struct{})
	for _, entry := range entries {
		if b, ok := entry.(Balance); ok {
			asserted[b.Account] = struct{}{}
		}
	}

	tracked := make(map[Account]struct{})
	for _, account := range mentionedAccounts(entries) {
		if _, ok := asserted[account]; ok {
			tracked[account] = struct{}{}
			continue
		}
		for a := range asserted {
			if a.IsAncestorOf(account) || account.IsAncestorOf(a) {
				tracked[account] = struct{}{}
				break
			}
		}
	}
	return tracked
}

// TrackedAccounts returns, in lexical order, the accounts whose running
// balance a verification pass over entries would maintain.
func TrackedAccounts(entries []Entry) []Account {
	set := trackedAccounts(entries)
	accounts := make([]Account, 0, len(set))
	for a := range set {
		accounts = append(accounts, a)
	}
	slices.Sort(accounts)
	return accounts
}

// mentionedAccounts lists every account named anywhere in entries, via a
// posting or an assertion, in first-mention order without duplicates.
func mentionedAccounts(entries []Entry) []Account {
	visited := make(map[Account]struct{})
	var accounts []Account
	add := func(a Account) {
		if _, ok := visited[a]; ok {
			return
		}
		visited[a] = struct{}{}
		accounts = append(accounts, a)
	}
	for _, entry := range entries {
		switch e := entry.(type) {
		case Transaction:
			for _, p := range e.Postings {
				add(p.Account)
			}
		case Balance:
			add(e.Account)
		}
	}
	return accounts
}
