package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccountTree_GetOrCreate(t *testing.T) {
	root := newAccountTree()
	node := root.getOrCreate("Assets:Bank:Checking")
	if node == nil || node.name != "Checking" {
		t.Fatalf("getOrCreate() returned %+v, want node named Checking", node)
	}

	// Intermediate nodes exist.
	if root.get("Assets") == nil || root.get("Assets:Bank") == nil {
		t.Error("intermediate nodes were not created")
	}

	// Fetching again returns the same node.
	if again := root.getOrCreate("Assets:Bank:Checking"); again != node {
		t.Error("getOrCreate() created a second node for the same path")
	}
}

func TestAccountTree_GetMissing(t *testing.T) {
	root := newAccountTree()
	root.getOrCreate("Assets:Bank")

	if got := root.get("Assets:Cash"); got != nil {
		t.Errorf("get(Assets:Cash) = %+v, want nil", got)
	}
	if got := root.get("Expenses"); got != nil {
		t.Errorf("get(Expenses) = %+v, want nil", got)
	}
}

func TestAccountTree_SubtreeBalance(t *testing.T) {
	root := newAccountTree()
	root.getOrCreate("Assets:Bank:Checking").balance.Add(P(10, "USD"))
	root.getOrCreate("Assets:Bank:Savings").balance.Add(P(5, "USD"))
	root.getOrCreate("Assets:Bank").balance.Add(P(2, "USD"))
	root.getOrCreate("Expenses").balance.Add(P(100, "USD"))

	testCases := []struct {
		account Account
		want    int64
	}{
		{account: "Assets:Bank:Checking", want: 10},
		{account: "Assets:Bank", want: 17}, // own 2 + children 15
		{account: "Assets", want: 17},
		{account: "Expenses", want: 100},
	}

	for _, tc := range testCases {
		t.Run(string(tc.account), func(t *testing.T) {
			node := root.get(tc.account)
			if node == nil {
				t.Fatalf("get(%q) = nil", tc.account)
			}
			got := node.subtreeBalance().Amount("USD")
			if want := decimal.NewFromInt(tc.want); !got.Equal(want) {
				t.Errorf("subtreeBalance().Amount(USD) = %s, want %s", got, want)
			}
		})
	}

	// Root aggregates everything.
	if got, want := root.subtreeBalance().Amount("USD"), decimal.NewFromInt(117); !got.Equal(want) {
		t.Errorf("root subtreeBalance = %s, want %s", got, want)
	}
}

func TestAccountTree_Descendants(t *testing.T) {
	root := newAccountTree()
	root.getOrCreate("A:B")
	root.getOrCreate("A:C")

	count := 0
	for range root.get("A").descendants() {
		count++
	}
	if count != 3 { // A itself, A:B, A:C
		t.Errorf("descendants() yielded %d nodes, want 3", count)
	}
}
