package ledger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// This file handles the JSONL persistence of ledgers: one entry per line,
// identified by its "directive" property, human-readable and git-friendly.

// DecodeLedger reads entries from a stream of JSONL data, decodes each line
// into the appropriate entry struct, and returns a sorted Ledger. The name
// is used to build each entry's source location token ("name:line") and for
// error messages.
func DecodeLedger(name string, r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	ledger.name = name
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Directive DirectiveType `json:"directive"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("%s:%d: could not identify directive in line %q: %w", name, line, string(lineBytes), err)
		}

		loc := Location(fmt.Sprintf("%s:%d", name, line))
		var decoded Entry
		var err error

		switch identifier.Directive {
		case DirTransaction:
			var e Transaction
			err = json.Unmarshal(lineBytes, &e)
			for _, p := range e.Postings {
				if err != nil {
					break
				}
				err = p.Account.Validate()
			}
			e.loc = loc
			decoded = e
		case DirBalance:
			var e Balance
			err = json.Unmarshal(lineBytes, &e)
			if err == nil {
				err = e.Account.Validate()
			}
			e.loc = loc
			decoded = e
		default:
			err = fmt.Errorf("unknown directive: %q", identifier.Directive)
		}

		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, line, err)
		}
		ledger.entries = append(ledger.entries, decoded)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	// Perform a stable sort on the ledger based on the entry date.
	ledger.stableSort()

	return ledger, nil
}

// EncodeEntry marshals a single entry to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	jsonData, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeLedger reorders entries by date and persists them to an io.Writer in
// JSONL format. The sort is stable, meaning entries on the same day maintain
// their original relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	for _, e := range ledger.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}

	return nil
}

// EncodeEntries persists a plain entry list, typically the rewritten output
// of a verification pass, in JSONL format without reordering it.
func EncodeEntries(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
