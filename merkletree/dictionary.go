package merkletree

import (
	"sync"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
)

// Dictionary is the authenticated set of tokens held by the cloud:
// a slot table and the authentication tree over it.
// It is safe for concurrent use; searches share a read lock
// and mutations take the write lock.
type Dictionary struct {
	sync.RWMutex
	hasher hasher.TreeHasher
	table  *SlotTable
	tree   *AuthTree
}

// NewDictionary bulk inserts tokens into a table sized for
// len(tokens) entries at loadFactor and builds the tree over it.
func NewDictionary(h hasher.TreeHasher, tokens []Token, loadFactor float64) (*Dictionary, error) {
	table, err := NewSlotTable(len(tokens), loadFactor)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if _, err := table.Insert(t); err != nil {
			return nil, err
		}
	}
	return &Dictionary{
		hasher: h,
		table:  table,
		tree:   NewAuthTree(h, table),
	}, nil
}

// Search returns the proof of the probe walk of t.
func (d *Dictionary) Search(t Token) (*Proof, error) {
	d.RLock()
	defer d.RUnlock()
	return d.search(t)
}

func (d *Dictionary) search(t Token) (*Proof, error) {
	proof := &Proof{QueryToken: t}
	var err error
	r, werr := d.table.walk(t, func(s Slot) {
		if err != nil {
			return
		}
		var ap AuthenticationPath
		ap, err = d.tree.AuthenticationPath(s.Index)
		proof.Visited = append(proof.Visited, &ProofNode{Slot: s, AuthPath: ap})
	})
	if werr != nil {
		return nil, werr
	}
	if err != nil {
		return nil, err
	}
	proof.Existing = r == probeFound
	return proof, nil
}

// Update is the outcome of Add or Delete.
type Update struct {
	// Proof is the search proof the mutation was planned from,
	// taken before the mutation.
	Proof *Proof
	// Mutation is the slot rewrite applied, nil for a no-op.
	Mutation *Mutation
	// Root is the root after the mutation.
	Root []byte
}

// Add stores t. It reuses the first tombstone on t's probe sequence,
// or else takes the never-occupied slot the search stopped at.
// Adding a stored token is a no-op. Add returns ErrCapacityExhausted
// if the walk found neither.
func (d *Dictionary) Add(t Token) (*Update, error) {
	return d.apply(t, PlanAdd)
}

// Delete removes t, leaving a tombstone in its slot.
// Deleting a token that is not stored is a no-op.
func (d *Dictionary) Delete(t Token) (*Update, error) {
	return d.apply(t, PlanDelete)
}

func (d *Dictionary) apply(t Token, plan func(*Proof) (*Mutation, error)) (*Update, error) {
	d.Lock()
	defer d.Unlock()
	proof, err := d.search(t)
	if err != nil {
		return nil, err
	}
	mu, err := plan(proof)
	if err != nil {
		return nil, err
	}
	if mu != nil {
		if err := d.tree.Update(mu.Slot.Index, mu.Slot); err != nil {
			return nil, err
		}
	}
	return &Update{Proof: proof, Mutation: mu, Root: d.tree.Root()}, nil
}

// Root returns the current root digest.
func (d *Dictionary) Root() []byte {
	d.RLock()
	defer d.RUnlock()
	return d.tree.Root()
}

// Height returns the height of the tree.
func (d *Dictionary) Height() uint32 {
	return d.table.Height()
}

// Stats returns the occupancy of the slot table.
func (d *Dictionary) Stats() Stats {
	d.RLock()
	defer d.RUnlock()
	return d.table.Stats()
}

// Slot returns a copy of the slot at index i.
func (d *Dictionary) Slot(i uint32) (Slot, error) {
	d.RLock()
	defer d.RUnlock()
	return d.table.Slot(i)
}

// Level returns the digests of the tree at the given depth.
func (d *Dictionary) Level(depth uint32) [][]byte {
	d.RLock()
	defer d.RUnlock()
	return d.tree.Level(depth)
}

// Mutation is a planned rewrite of a single slot:
// its new content and its authentication path before the rewrite.
type Mutation struct {
	Slot Slot
	Path AuthenticationPath
}

// Root returns the root of the tree after the rewrite,
// computed from the path alone.
func (mu *Mutation) Root(h hasher.TreeHasher) []byte {
	return mu.Path.RootWith(h, mu.Slot.Index, hashSlot(h, mu.Slot))
}

// PlanAdd returns the rewrite that stores p.QueryToken, given p, the
// search proof of that token. It returns nil if the token is stored,
// and ErrCapacityExhausted if the walk met neither a tombstone nor a
// never-occupied slot.
func PlanAdd(p *Proof) (*Mutation, error) {
	if p.Existing || len(p.Visited) == 0 {
		return nil, nil
	}
	var target *ProofNode
	for _, node := range p.Visited {
		if node.Slot.Tombstone {
			target = node
			break
		}
	}
	if target == nil {
		target = p.Terminal()
		if target.Slot.probe(p.QueryToken) != probeEmpty {
			return nil, ErrCapacityExhausted
		}
	}
	return &Mutation{
		Slot: Slot{Index: target.Slot.Index, Token: p.QueryToken},
		Path: target.AuthPath,
	}, nil
}

// PlanDelete returns the rewrite that tombstones the slot holding
// p.QueryToken. It returns nil if the token is not stored.
func PlanDelete(p *Proof) (*Mutation, error) {
	if !p.Existing || len(p.Visited) == 0 {
		return nil, nil
	}
	target := p.Terminal()
	return &Mutation{
		Slot: Slot{Index: target.Slot.Index, Token: Sentinel, Tombstone: true},
		Path: target.AuthPath,
	}, nil
}
