package ledger

import "errors"

// ErrInternal marks a contract violation inside the verification pass
// itself, as opposed to a user-facing validation failure. An error wrapping
// ErrInternal means the tracked-account selection and the replay disagreed,
// which is a bug in this package, not bad ledger data.
var ErrInternal = errors.New("internal verification invariant violated")

// BalanceError describes one failed balance assertion. It is collected, not
// returned: a failing assertion never stops the verification pass.
type BalanceError struct {
	Loc   Location // source location token of the offending entry
	Msg   string   // human-readable description of the failure
	Entry Entry    // the offending assertion, as it appeared in the input
}

// Error implements the error interface.
func (e BalanceError) Error() string {
	if e.Loc == "" {
		return e.Msg
	}
	return e.Loc.String() + ": " + e.Msg
}
