package node

import "github.com/modsagraphy/universa/internal/types"

// voteTally keeps disjoint positive and negative voter sets. The caller
// holds the processor mutex; the tally itself is not synchronized.
type voteTally struct {
	positive map[types.NodeInfo]struct{}
	negative map[types.NodeInfo]struct{}
}

func newVoteTally() voteTally {
	return voteTally{
		positive: make(map[types.NodeInfo]struct{}),
		negative: make(map[types.NodeInfo]struct{}),
	}
}

// record stores the peer's latest vote. A peer may switch sides; the newest
// value wins.
func (t *voteTally) record(peer types.NodeInfo, positive bool) {
	if positive {
		t.positive[peer] = struct{}{}
		delete(t.negative, peer)
	} else {
		t.negative[peer] = struct{}{}
		delete(t.positive, peer)
	}
}

func (t *voteTally) has(peer types.NodeInfo) bool {
	if _, ok := t.positive[peer]; ok {
		return true
	}
	_, ok := t.negative[peer]
	return ok
}
