package merkletree

import (
	"errors"
	"math"

	"github.com/fchen-group/dynamic-verifiable-data-access/utils"
)

const (
	// MaxTreeHeight bounds the height of the tree so that slot
	// indices fit the 31-bit range the probe sequence produces.
	MaxTreeHeight = 30

	probeStep = 101
)

var (
	// ErrInvalidLoadFactor indicates a load factor outside (0, 1].
	ErrInvalidLoadFactor = errors.New("[merkletree] Load factor must be in (0, 1]")
	// ErrTreeTooLarge indicates that the requested number of entries
	// needs a tree higher than MaxTreeHeight.
	ErrTreeTooLarge = errors.New("[merkletree] Tree is too large")
	// ErrCapacityExhausted indicates that the probe sequence visited
	// every slot without finding a slot to store the token in.
	ErrCapacityExhausted = errors.New("[merkletree] Probe sequence exhausted the table")
	// ErrSlotOutOfRange indicates a slot index beyond the table.
	ErrSlotOutOfRange = errors.New("[merkletree] Slot index out of range")
)

// TreeHeight returns ceil(log2(n / loadFactor)), the height of the tree
// holding n entries at the given load factor. The height is at least 1.
func TreeHeight(n int, loadFactor float64) (uint32, error) {
	if !(loadFactor > 0 && loadFactor <= 1) {
		return 0, ErrInvalidLoadFactor
	}
	if n < 1 {
		n = 1
	}
	h := math.Ceil(math.Log2(float64(n) / loadFactor))
	if h < 1 {
		h = 1
	}
	if h > MaxTreeHeight {
		return 0, ErrTreeTooLarge
	}
	return uint32(h), nil
}

// maxProbes is the length of the longest probe sequence over a table
// of the given size: h1, then h2 followed by size-1 linear steps, which
// together reach every slot since the step is odd and size a power of 2.
func maxProbes(size uint32) int {
	return int(size) + 1
}

// foldIndex maps a 4-byte word to a slot: |int32| mod size.
func foldIndex(word []byte, size uint32) uint32 {
	v := int64(utils.BytesToInt32(word))
	if v < 0 {
		v = -v
	}
	return uint32(v % int64(size))
}

type probeSequence struct {
	token Token
	size  uint32
	index uint32
	count int
}

func newProbeSequence(t Token, size uint32) *probeSequence {
	return &probeSequence{token: t, size: size}
}

// Next returns the next slot index to visit. It returns false once
// the sequence is longer than maxProbes.
func (p *probeSequence) Next() (uint32, bool) {
	switch {
	case p.count == 0:
		p.index = foldIndex(p.token[0:4], p.size)
	case p.count == 1:
		p.index = foldIndex(p.token[4:8], p.size)
	case p.count < maxProbes(p.size):
		p.index = (p.index + probeStep) % p.size
	default:
		return 0, false
	}
	p.count++
	return p.index, true
}

// SlotTable is the array of slots the authentication tree is built over.
type SlotTable struct {
	height uint32
	slots  []Slot
}

// NewSlotTable returns an empty table sized for n entries at the
// given load factor. Every slot starts out holding the sentinel.
func NewSlotTable(n int, loadFactor float64) (*SlotTable, error) {
	height, err := TreeHeight(n, loadFactor)
	if err != nil {
		return nil, err
	}
	return newSlotTable(height), nil
}

func newSlotTable(height uint32) *SlotTable {
	size := uint32(1) << height
	st := &SlotTable{
		height: height,
		slots:  make([]Slot, size),
	}
	for i := range st.slots {
		st.slots[i] = Slot{Index: uint32(i), Token: Sentinel}
	}
	return st
}

// Height returns the height of the tree over st.
func (st *SlotTable) Height() uint32 {
	return st.height
}

// Size returns the number of slots, 2^Height().
func (st *SlotTable) Size() uint32 {
	return uint32(len(st.slots))
}

// Slot returns a copy of the slot at index i.
func (st *SlotTable) Slot(i uint32) (Slot, error) {
	if i >= st.Size() {
		return Slot{}, ErrSlotOutOfRange
	}
	return st.slots[i], nil
}

func (st *SlotTable) set(s Slot) {
	st.slots[s.Index] = s
}

// walk replays the probe sequence of t, calling visit on each slot
// up to and including the one the search stops at. A walk over a table
// with no never-occupied slot left ends with probeExhausted once the
// whole sequence has been visited.
func (st *SlotTable) walk(t Token, visit func(s Slot)) (probeResult, error) {
	if t.IsSentinel() {
		return probeContinue, ErrSentinelToken
	}
	seq := newProbeSequence(t, st.Size())
	for {
		i, ok := seq.Next()
		if !ok {
			return probeExhausted, nil
		}
		s := st.slots[i]
		if visit != nil {
			visit(s)
		}
		if r := s.probe(t); r != probeContinue {
			return r, nil
		}
	}
}

// Insert places t during the initial bulk build, in the first slot of
// its probe sequence that has not been claimed yet, and returns that
// slot's index. Inserting a token already in the table is a no-op
// returning its current index.
func (st *SlotTable) Insert(t Token) (uint32, error) {
	var last Slot
	r, err := st.walk(t, func(s Slot) { last = s })
	if err != nil {
		return 0, err
	}
	if r == probeExhausted {
		return 0, ErrCapacityExhausted
	}
	if r == probeEmpty {
		st.set(Slot{Index: last.Index, Token: t})
	}
	return last.Index, nil
}

// Stats summarizes the occupancy of a table.
type Stats struct {
	Size       uint32
	Occupied   uint32
	Tombstoned uint32
	Empty      uint32
}

// LoadFactor returns the share of slots holding a token.
func (s Stats) LoadFactor() float64 {
	if s.Size == 0 {
		return 0
	}
	return float64(s.Occupied) / float64(s.Size)
}

// Stats counts the occupied, tombstoned and empty slots of st.
func (st *SlotTable) Stats() Stats {
	stats := Stats{Size: st.Size()}
	for i := range st.slots {
		switch s := &st.slots[i]; {
		case s.Tombstone:
			stats.Tombstoned++
		case s.Token.IsSentinel():
			stats.Empty++
		default:
			stats.Occupied++
		}
	}
	return stats
}
