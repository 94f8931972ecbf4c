package renderer

// BalanceFailure is one failed assertion row of a check report.
type BalanceFailure struct {
	Location    string // source location of the assertion ("file:line")
	Date        string
	Account     string
	Expected    string // declared amount, formatted
	Accumulated string // observed amount, formatted
	Diff        string // signed discrepancy, formatted
	Direction   string // "too much" or "too little"
}

// CheckReport is the result of one verification pass over a ledger.
type CheckReport struct {
	Ledger     string // ledger name
	Entries    int    // number of entries replayed
	Assertions int    // number of balance assertions evaluated
	Failures   []BalanceFailure
}

// Passed reports whether every assertion held.
func (r *CheckReport) Passed() bool { return len(r.Failures) == 0 }

// CheckMarkdown renders the check report to a markdown string.
func CheckMarkdown(r *CheckReport) string {
	return renderTemplate("check", "check_report.md", map[string]string{
		"check_failures": "check_failures.md",
	}, r)
}
