package merkletree

import (
	"errors"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
)

var (
	// ErrSlotIndexMismatch indicates an update whose slot record does
	// not carry the index of the position it is written to.
	ErrSlotIndexMismatch = errors.New("[merkletree] Slot index does not match its position")
)

// AuthTree is the hash authentication tree over a SlotTable,
// stored as an array: the root at 0, the children of node i at
// 2i+1 and 2i+2, and leaf j at 2^height-1+j.
type AuthTree struct {
	hasher hasher.TreeHasher
	table  *SlotTable
	nodes  [][]byte
}

// NewAuthTree builds the authentication tree over table.
// The tree keeps a reference to table and updates it in place.
func NewAuthTree(h hasher.TreeHasher, table *SlotTable) *AuthTree {
	m := &AuthTree{
		hasher: h,
		table:  table,
		nodes:  make([][]byte, 2*table.Size()-1),
	}
	m.Build()
	return m
}

func (m *AuthTree) firstLeaf() uint32 {
	return m.table.Size() - 1
}

// Build recomputes every node from the current content of the table.
func (m *AuthTree) Build() {
	first := m.firstLeaf()
	for i := range m.table.slots {
		m.nodes[first+uint32(i)] = hashSlot(m.hasher, m.table.slots[i])
	}
	for i := int(first) - 1; i >= 0; i-- {
		m.nodes[i] = m.hasher.HashInterior(m.nodes[2*i+1], m.nodes[2*i+2])
	}
}

// Update writes s into the table at position and rehashes the leaf
// and its ancestors.
func (m *AuthTree) Update(position uint32, s Slot) error {
	if position >= m.table.Size() {
		return ErrSlotOutOfRange
	}
	if s.Index != position {
		return ErrSlotIndexMismatch
	}
	m.table.set(s)
	n := m.firstLeaf() + position
	m.nodes[n] = hashSlot(m.hasher, s)
	for n > 0 {
		n = (n - 1) / 2
		m.nodes[n] = m.hasher.HashInterior(m.nodes[2*n+1], m.nodes[2*n+2])
	}
	return nil
}

// AuthenticationPath returns the path of the leaf at index:
// the left and right node of each level from the leaf up,
// followed by the root.
func (m *AuthTree) AuthenticationPath(index uint32) (AuthenticationPath, error) {
	if index >= m.table.Size() {
		return nil, ErrSlotOutOfRange
	}
	ap := make(AuthenticationPath, 0, 2*m.table.Height()+1)
	n := m.firstLeaf() + index
	for n > 0 {
		left := n
		if n%2 == 0 {
			left = n - 1
		}
		ap = append(ap, clone(m.nodes[left]), clone(m.nodes[left+1]))
		n = (n - 1) / 2
	}
	return append(ap, clone(m.nodes[0])), nil
}

// Root returns a copy of the root digest.
func (m *AuthTree) Root() []byte {
	return clone(m.nodes[0])
}

// Height returns the height of the tree.
func (m *AuthTree) Height() uint32 {
	return m.table.Height()
}

// Level returns copies of the digests at the given depth,
// the root being at depth 0 and the leaves at depth Height().
func (m *AuthTree) Level(depth uint32) [][]byte {
	if depth > m.Height() {
		return nil
	}
	first := uint32(1)<<depth - 1
	level := make([][]byte, 0, first+1)
	for i := first; i < 2*first+1; i++ {
		level = append(level, clone(m.nodes[i]))
	}
	return level
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
