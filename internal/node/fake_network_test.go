package node

import (
	"context"
	"fmt"
	"sync"

	"github.com/modsagraphy/universa/internal/network"
	"github.com/modsagraphy/universa/internal/types"
)

type delivery struct {
	to types.NodeInfo
	n  types.ItemNotification
}

// fakeNetwork records outbound traffic and serves item bodies from a
// per-peer map. It implements network.Network for single-node tests.
type fakeNetwork struct {
	peers []types.NodeInfo

	mu      sync.Mutex
	handler network.Handler
	sent    []delivery
	bodies  map[types.NodeInfo]map[types.HashId]types.Approvable
	refuse  bool
}

func newFakeNetwork(peers ...types.NodeInfo) *fakeNetwork {
	return &fakeNetwork{
		peers:  peers,
		bodies: make(map[types.NodeInfo]map[types.HashId]types.Approvable),
	}
}

func (f *fakeNetwork) Subscribe(self types.NodeInfo, h network.Handler) {
	f.mu.Lock()
	f.handler = h
	f.mu.Unlock()
}

func (f *fakeNetwork) Deliver(to types.NodeInfo, n types.ItemNotification) {
	f.mu.Lock()
	f.sent = append(f.sent, delivery{to: to, n: n})
	f.mu.Unlock()
}

func (f *fakeNetwork) Broadcast(origin types.NodeInfo, n types.ItemNotification) {
	for _, peer := range f.peers {
		if peer == origin {
			continue
		}
		f.Deliver(peer, n)
	}
}

func (f *fakeNetwork) EachNode(fn func(types.NodeInfo)) {
	for _, peer := range f.peers {
		fn(peer)
	}
}

func (f *fakeNetwork) GetItem(ctx context.Context, from types.NodeInfo, id types.HashId) (types.Approvable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refuse {
		return nil, fmt.Errorf("peer %s unavailable", from.Name)
	}
	if it, ok := f.bodies[from][id]; ok {
		return it, nil
	}
	return nil, fmt.Errorf("peer %s has no copy of %s", from.Name, id)
}

func (f *fakeNetwork) serveBody(peer types.NodeInfo, it types.Approvable) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bodies[peer] == nil {
		f.bodies[peer] = make(map[types.HashId]types.Approvable)
	}
	f.bodies[peer][it.ID()] = it
}

func (f *fakeNetwork) setRefuse(v bool) {
	f.mu.Lock()
	f.refuse = v
	f.mu.Unlock()
}

func (f *fakeNetwork) deliveriesTo(peer types.NodeInfo) []types.ItemNotification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []types.ItemNotification
	for _, d := range f.sent {
		if d.to == peer {
			out = append(out, d.n)
		}
	}
	return out
}
