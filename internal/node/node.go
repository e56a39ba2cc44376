package node

import (
	"log/slog"
	"sync"
	"time"

	"github.com/modsagraphy/universa/internal/cache"
	"github.com/modsagraphy/universa/internal/itemlock"
	"github.com/modsagraphy/universa/internal/ledger"
	"github.com/modsagraphy/universa/internal/metrics"
	"github.com/modsagraphy/universa/internal/network"
	"github.com/modsagraphy/universa/internal/schedule"
	"github.com/modsagraphy/universa/internal/types"
)

// Node dispatches items to per-item processors. All processor map access
// and the create-or-route decision run under the per-item lock table.
type Node struct {
	cfg    Config
	self   types.NodeInfo
	net    network.Network
	ledger *ledger.Ledger
	cache  *cache.ItemCache
	locks  *itemlock.Table
	pool   *schedule.Pool

	mu         sync.Mutex
	processors map[types.HashId]*ItemProcessor
}

func New(
	cfg Config,
	self types.NodeInfo,
	net network.Network,
	lg *ledger.Ledger,
	ch *cache.ItemCache,
	pool *schedule.Pool,
) *Node {
	n := &Node{
		cfg:        cfg,
		self:       self,
		net:        net,
		ledger:     lg,
		cache:      ch,
		locks:      itemlock.NewTable(),
		pool:       pool,
		processors: make(map[types.HashId]*ItemProcessor),
	}
	net.Subscribe(self, n.Notified)
	slog.Info("node started",
		"node", self.Name,
		"positive_consensus", cfg.PositiveConsensus,
		"negative_consensus", cfg.NegativeConsensus,
	)
	return n
}

// RegisterItem submits an item for consensus and returns its current
// result. Resubmitting a known item returns the existing state without
// starting anything.
func (n *Node) RegisterItem(item types.Approvable) types.ItemResult {
	res := n.resolve(item.ID(), item, true)
	metrics.ItemsRegisteredTotal.WithLabelValues(res.State.String()).Inc()
	return res
}

// CheckItem reports the current state of an item without ever starting a
// processor. Unknown ids yield UNDEFINED.
func (n *Node) CheckItem(id types.HashId) types.ItemResult {
	return n.resolve(id, nil, false)
}

// WaitItem blocks until the item's processor reaches a terminal state, up
// to timeout, then returns the result. Without a processor it falls back to
// an immediate CheckItem.
func (n *Node) WaitItem(id types.HashId, timeout time.Duration) types.ItemResult {
	n.mu.Lock()
	p := n.processors[id]
	n.mu.Unlock()

	if p == nil {
		return n.CheckItem(id)
	}
	p.doneEvent.Await(timeout)
	return p.Result()
}

// Notified handles an inbound peer notification: route the vote into the
// processor (creating one on demand), learn the peer as a source when it
// holds a copy, and answer when asked to.
func (n *Node) Notified(notif types.ItemNotification) {
	metrics.NotificationsTotal.WithLabelValues("in").Inc()

	var reply *types.ItemNotification
	n.locks.WithLock(notif.ItemID, func() error {
		res, p := n.resolveLocked(notif.ItemID, nil, true)
		if p == nil {
			if notif.RequestAnswer {
				reply = &types.ItemNotification{
					From:          n.self,
					ItemID:        notif.ItemID,
					Result:        res,
					RequestAnswer: false,
				}
			}
			return nil
		}

		p.vote(notif.From, notif.Result.State)
		if notif.Result.HaveCopy {
			p.AddToSources(notif.From)
		}
		if notif.RequestAnswer {
			reply = &types.ItemNotification{
				From:          n.self,
				ItemID:        notif.ItemID,
				Result:        p.Result(),
				RequestAnswer: !p.hasVoteFrom(notif.From),
			}
		}
		return nil
	})

	if reply != nil {
		metrics.NotificationsTotal.WithLabelValues("out").Inc()
		n.net.Deliver(notif.From, *reply)
	}
}

func (n *Node) resolve(id types.HashId, item types.Approvable, autoStart bool) types.ItemResult {
	var res types.ItemResult
	n.locks.WithLock(id, func() error {
		res, _ = n.resolveLocked(id, item, autoStart)
		return nil
	})
	return res
}

// resolveLocked is the serialized dispatch: an existing processor wins,
// then a ledger record, then (with autoStart) a fresh processor. Items
// created too far in the past are discarded before any record exists.
// Callers hold the item lock for id.
func (n *Node) resolveLocked(id types.HashId, item types.Approvable, autoStart bool) (types.ItemResult, *ItemProcessor) {
	n.mu.Lock()
	p := n.processors[id]
	n.mu.Unlock()
	if p != nil {
		return p.Result(), p
	}

	if r := n.ledger.GetRecord(id); r != nil {
		return r.Result(n.cache.Has(id)), nil
	}

	if !autoStart {
		return types.UndefinedResult(), nil
	}

	if item != nil && time.Since(item.CreatedAt()) > n.cfg.MaxItemCreationAge {
		item.AddError(types.ErrExpired, id.String(), "item creation time is too far in the past")
		slog.Debug("discarding stale item", "item", id)
		return types.DiscardedResult(), nil
	}

	if item != nil {
		n.cache.Put(item)
	}

	p, err := newItemProcessor(id, item, n.self, n.cfg, n.ledger, n.cache, n.net, n.pool, n.processorDone)
	if err != nil {
		slog.Error("failed to create item processor", "item", id, "error", err)
		panic(err)
	}

	n.mu.Lock()
	n.processors[id] = p
	n.mu.Unlock()

	p.start()
	return p.Result(), p
}

// processorDone keeps the finished processor addressable for a grace
// period, then evicts it. The ledger record is what survives. Zero
// retention keeps processors forever.
func (n *Node) processorDone(p *ItemProcessor) {
	if n.cfg.ProcessorRetention == 0 {
		return
	}
	n.pool.Schedule(n.cfg.ProcessorRetention, func() {
		n.locks.WithLock(p.id, func() error {
			n.mu.Lock()
			if n.processors[p.id] == p {
				delete(n.processors, p.id)
			}
			n.mu.Unlock()
			return nil
		})
	})
}

// ProcessorCount reports live and retained processors.
func (n *Node) ProcessorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.processors)
}
