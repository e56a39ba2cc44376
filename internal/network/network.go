package network

import (
	"context"

	"github.com/modsagraphy/universa/internal/types"
)

// Handler receives inbound notifications from peers.
type Handler func(n types.ItemNotification)

// Network is the peer communication surface consumed by the node. Deliver
// and Broadcast are fire-and-forget; GetItem is a synchronous remote fetch
// bounded by ctx.
type Network interface {
	Subscribe(self types.NodeInfo, h Handler)
	Deliver(to types.NodeInfo, n types.ItemNotification)
	Broadcast(origin types.NodeInfo, n types.ItemNotification)
	EachNode(fn func(types.NodeInfo))
	GetItem(ctx context.Context, from types.NodeInfo, id types.HashId) (types.Approvable, error)
}
