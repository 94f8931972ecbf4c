package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/brel/ledger/date"
	"github.com/shopspring/decimal"
)

const sampleLedger = `{"directive":"transaction","date":"2025-01-01","memo":"opening","postings":[{"account":"Assets:Cash","amount":"100","currency":"USD"}]}
{"directive":"balance","date":"2025-01-02","account":"Assets:Cash","amount":"100","currency":"USD"}

{"directive":"balance","date":"2025-01-03","account":"Assets:Cash","amount":"90","currency":"USD"}
`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger("sample.jsonl", strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	entries := l.All()

	tx, ok := entries[0].(Transaction)
	if !ok {
		t.Fatalf("entries[0] is %T, want Transaction", entries[0])
	}
	if tx.Memo != "opening" {
		t.Errorf("Memo = %q, want %q", tx.Memo, "opening")
	}
	if len(tx.Postings) != 1 {
		t.Fatalf("len(Postings) = %d, want 1", len(tx.Postings))
	}
	if !tx.Postings[0].Position.Equal(P(100, "USD")) {
		t.Errorf("posting = %s, want 100 USD", tx.Postings[0].Position)
	}
	if tx.Where() != "sample.jsonl:1" {
		t.Errorf("Where() = %q, want %q", tx.Where(), "sample.jsonl:1")
	}

	// The empty line is skipped but still counted for locations.
	b, ok := entries[2].(Balance)
	if !ok {
		t.Fatalf("entries[2] is %T, want Balance", entries[2])
	}
	if b.Where() != "sample.jsonl:4" {
		t.Errorf("Where() = %q, want %q", b.Where(), "sample.jsonl:4")
	}
	if b.Account != "Assets:Cash" || !b.Amount.Equal(P(90, "USD")) {
		t.Errorf("balance = (%q, %s), want (Assets:Cash, 90 USD)", b.Account, b.Amount)
	}
	if b.Diff != nil {
		t.Errorf("Diff = %v, want nil", b.Diff)
	}
}

func TestDecodeLedger_errors(t *testing.T) {
	testCases := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "not json at all\n"},
		{name: "unknown directive", in: `{"directive":"pad","date":"2025-01-01"}` + "\n"},
		{name: "empty asserted account", in: `{"directive":"balance","date":"2025-01-01","account":"","amount":"1","currency":"USD"}` + "\n"},
		{name: "empty posting component", in: `{"directive":"transaction","date":"2025-01-01","postings":[{"account":"Assets::Cash","amount":"1","currency":"USD"}]}` + "\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger("bad.jsonl", strings.NewReader(tc.in)); err == nil {
				t.Error("DecodeLedger() error = nil, want error")
			}
		})
	}
}

func TestDecodeLedger_sorts(t *testing.T) {
	in := `{"directive":"balance","date":"2025-02-01","account":"Assets:Cash","amount":"1","currency":"USD"}
{"directive":"transaction","date":"2025-01-01","postings":[{"account":"Assets:Cash","amount":"1","currency":"USD"}]}
`
	l, err := DecodeLedger("unsorted.jsonl", strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	entries := l.All()
	if entries[0].What() != DirTransaction || entries[1].What() != DirBalance {
		t.Errorf("entries not sorted by date: %s then %s", entries[0].What(), entries[1].What())
	}
}

func TestEncodeLedger_roundTrip(t *testing.T) {
	l, err := DecodeLedger("sample.jsonl", strings.NewReader(sampleLedger))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	var out strings.Builder
	if err := EncodeLedger(&out, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	back, err := DecodeLedger("sample.jsonl", strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("re-decode error = %v", err)
	}

	var again strings.Builder
	if err := EncodeLedger(&again, back); err != nil {
		t.Fatalf("re-encode error = %v", err)
	}
	if out.String() != again.String() {
		t.Errorf("round trip is not stable:\n%s\nvs\n%s", out.String(), again.String())
	}
}

func TestEncodeBalance_withDiff(t *testing.T) {
	b := NewBalance(date.New(2025, time.January, 3), "Assets:Cash", P(90, "USD"))
	diff := Position{Amount: decimal.NewFromInt(10), Currency: "USD"}
	b.Diff = &diff

	var out strings.Builder
	if err := EncodeEntry(&out, b); err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	want := `{"directive":"balance","date":"2025-01-03","account":"Assets:Cash","amount":"90","currency":"USD","diff":"10"}` + "\n"
	if out.String() != want {
		t.Errorf("EncodeEntry() =\n%s\nwant\n%s", out.String(), want)
	}

	// The diff survives a decode.
	l, err := DecodeLedger("diff.jsonl", strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	back := l.All()[0].(Balance)
	if back.Diff == nil || !back.Diff.Equal(diff) {
		t.Errorf("decoded Diff = %v, want %s", back.Diff, diff)
	}
}
