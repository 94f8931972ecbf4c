package ledger

import (
	"fmt"
	"strings"
)

// Separator is the delimiter between account path components.
const Separator = ":"

// Account identifies a node in the account hierarchy by its full path,
// e.g. "Assets:Bank:Checking". The empty account is the root of the
// hierarchy.
type Account string

// Components splits the account path into its individual components.
// The root account has no components.
func (a Account) Components() []string {
	if a == "" {
		return nil
	}
	return strings.Split(string(a), Separator)
}

// Parent returns the account one level up the hierarchy, and false when the
// account is already the root.
func (a Account) Parent() (Account, bool) {
	if a == "" {
		return "", false
	}
	i := strings.LastIndex(string(a), Separator)
	if i < 0 {
		return "", true
	}
	return a[:i], true
}

// Leaf returns the last component of the account path.
func (a Account) Leaf() string {
	if i := strings.LastIndex(string(a), Separator); i >= 0 {
		return string(a[i+1:])
	}
	return string(a)
}

// IsAncestorOf reports whether b lives strictly below a in the hierarchy.
// An account is not its own ancestor. The test is delimiter aware:
// "Assets:Bank" is an ancestor of "Assets:Bank:Checking" but not of
// "Assets:BankX".
func (a Account) IsAncestorOf(b Account) bool {
	if a == "" {
		return b != ""
	}
	return strings.HasPrefix(string(b), string(a)+Separator)
}

// Validate checks that the account path is well formed: non-empty, with no
// empty components.
func (a Account) Validate() error {
	if a == "" {
		return fmt.Errorf("account path is empty")
	}
	for _, c := range a.Components() {
		if c == "" {
			return fmt.Errorf("account %q has an empty path component", a)
		}
	}
	return nil
}
