package ledger

import "iter"

// accountNode is one node of the tracked-account hierarchy built for a
// verification pass. It owns its balance (postings applied to this exact
// account, children excluded) and its children, keyed by path component.
// The tree is scratch state scoped to one pass and is never exposed.
type accountNode struct {
	name     string // path component, empty at the root
	balance  Inventory
	children map[string]*accountNode
}

// newAccountTree returns an empty hierarchy root.
func newAccountTree() *accountNode {
	return &accountNode{balance: NewInventory()}
}

// getOrCreate walks the account path from this node, creating every missing
// intermediate node, and returns the node at the full path.
func (n *accountNode) getOrCreate(a Account) *accountNode {
	node := n
	for _, comp := range a.Components() {
		child, ok := node.children[comp]
		if !ok {
			child = &accountNode{name: comp, balance: NewInventory()}
			if node.children == nil {
				node.children = make(map[string]*accountNode)
			}
			node.children[comp] = child
		}
		node = child
	}
	return node
}

// get returns the node at the account path, or nil when any component of the
// path is untracked.
func (n *accountNode) get(a Account) *accountNode {
	node := n
	for _, comp := range a.Components() {
		node = node.children[comp]
		if node == nil {
			return nil
		}
	}
	return node
}

// descendants iterates over the node itself and every node below it.
// Iteration order is unspecified; callers only ever aggregate with the
// commutative Inventory.Merge.
func (n *accountNode) descendants() iter.Seq[*accountNode] {
	return func(yield func(*accountNode) bool) {
		n.walk(yield)
	}
}

func (n *accountNode) walk(yield func(*accountNode) bool) bool {
	if !yield(n) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

// subtreeBalance sums the node's own balance with the balances of all its
// tracked descendants. It is computed on demand at every call and never
// cached.
func (n *accountNode) subtreeBalance() Inventory {
	total := NewInventory()
	for node := range n.descendants() {
		total.Merge(node.balance)
	}
	return total
}
