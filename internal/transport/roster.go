package transport

import (
	"fmt"
	"sort"

	"github.com/modsagraphy/universa/internal/types"
)

// Roster is the fixed set of cluster peers. Wire messages carry only the
// sender's number; receivers resolve the full identity here.
type Roster struct {
	byNumber map[uint32]types.NodeInfo
	ordered  []types.NodeInfo
}

func NewRoster(nodes []types.NodeInfo) (*Roster, error) {
	r := &Roster{byNumber: make(map[uint32]types.NodeInfo, len(nodes))}
	for _, n := range nodes {
		if _, dup := r.byNumber[n.Number]; dup {
			return nil, fmt.Errorf("duplicate node number %d in roster", n.Number)
		}
		r.byNumber[n.Number] = n
	}
	r.ordered = append(r.ordered, nodes...)
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].Number < r.ordered[j].Number })
	return r, nil
}

func (r *Roster) Resolve(number uint32) (types.NodeInfo, bool) {
	n, ok := r.byNumber[number]
	return n, ok
}

// Each visits the roster in node-number order.
func (r *Roster) Each(fn func(types.NodeInfo)) {
	for _, n := range r.ordered {
		fn(n)
	}
}

func (r *Roster) Len() int {
	return len(r.byNumber)
}
