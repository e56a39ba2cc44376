package transport

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/modsagraphy/universa/internal/item"
	"github.com/modsagraphy/universa/internal/network"
	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

// ItemStore is where GetItem requests from peers are answered from.
type ItemStore interface {
	Get(id types.HashId) types.Approvable
}

// GRPCNetwork connects the local node to its roster peers over gRPC. One
// client connection per peer, dialed up front and reused for the process
// lifetime. Deliver and Broadcast never block the caller.
type GRPCNetwork struct {
	self           types.NodeInfo
	roster         *Roster
	items          ItemStore
	deliverTimeout time.Duration

	mu      sync.RWMutex
	handler network.Handler

	conns   map[uint32]*grpc.ClientConn
	clients map[uint32]universapb.ItemProtocolClient
}

func NewGRPCNetwork(self types.NodeInfo, roster *Roster, items ItemStore, deliverTimeout time.Duration) (*GRPCNetwork, error) {
	gn := &GRPCNetwork{
		self:           self,
		roster:         roster,
		items:          items,
		deliverTimeout: deliverTimeout,
		conns:          make(map[uint32]*grpc.ClientConn),
		clients:        make(map[uint32]universapb.ItemProtocolClient),
	}

	var dialErr error
	roster.Each(func(peer types.NodeInfo) {
		if peer.Number == self.Number || dialErr != nil {
			return
		}
		conn, err := dialPeer(peer.Addr)
		if err != nil {
			dialErr = fmt.Errorf("failed to dial peer %s at %s: %w", peer.Name, peer.Addr, err)
			return
		}
		gn.conns[peer.Number] = conn
		gn.clients[peer.Number] = universapb.NewItemProtocolClient(conn)
	})
	if dialErr != nil {
		gn.Close()
		return nil, dialErr
	}
	return gn, nil
}

func dialPeer(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             5 * time.Second,
			PermitWithoutStream: true,
		}))
}

func (gn *GRPCNetwork) Subscribe(self types.NodeInfo, h network.Handler) {
	gn.mu.Lock()
	gn.handler = h
	gn.mu.Unlock()
}

// dispatch hands an inbound notification to the subscriber, if any.
func (gn *GRPCNetwork) dispatch(n types.ItemNotification) {
	gn.mu.RLock()
	h := gn.handler
	gn.mu.RUnlock()
	if h == nil {
		slog.Warn("dropping notification, nothing subscribed", "item", n.ItemID)
		return
	}
	h(n)
}

func (gn *GRPCNetwork) Deliver(to types.NodeInfo, n types.ItemNotification) {
	client, ok := gn.clients[to.Number]
	if !ok {
		slog.Error("no client for peer", "peer", to.String())
		return
	}

	msg := notificationToProto(n)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), gn.deliverTimeout)
		defer cancel()
		if _, err := client.Notify(ctx, msg); err != nil {
			slog.Debug("notify failed", "peer", to.Name, "item", n.ItemID, "error", err)
		}
	}()
}

func (gn *GRPCNetwork) Broadcast(origin types.NodeInfo, n types.ItemNotification) {
	gn.roster.Each(func(peer types.NodeInfo) {
		if peer.Number == origin.Number || peer.Number == gn.self.Number {
			return
		}
		gn.Deliver(peer, n)
	})
}

// EachNode visits every roster peer other than the local node.
func (gn *GRPCNetwork) EachNode(fn func(types.NodeInfo)) {
	gn.roster.Each(func(peer types.NodeInfo) {
		if peer.Number == gn.self.Number {
			return
		}
		fn(peer)
	})
}

func (gn *GRPCNetwork) GetItem(ctx context.Context, from types.NodeInfo, id types.HashId) (types.Approvable, error) {
	client, ok := gn.clients[from.Number]
	if !ok {
		return nil, fmt.Errorf("no client for peer %s", from)
	}

	resp, err := client.GetItem(ctx, &universapb.GetItemRequest{ItemId: id.Bytes()})
	if err != nil {
		return nil, err
	}

	it, err := item.Unpack(resp.GetPacked())
	if err != nil {
		return nil, fmt.Errorf("unpacking item from %s: %w", from.Name, err)
	}
	if it.ID() != id {
		return nil, fmt.Errorf("peer %s returned item %s, wanted %s", from.Name, it.ID(), id)
	}
	return it, nil
}

func (gn *GRPCNetwork) Close() {
	for number, conn := range gn.conns {
		if err := conn.Close(); err != nil {
			slog.Debug("closing peer connection", "peer", number, "error", err)
		}
	}
}
