package node

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/modsagraphy/universa/internal/cache"
	"github.com/modsagraphy/universa/internal/ledger"
	"github.com/modsagraphy/universa/internal/metrics"
	"github.com/modsagraphy/universa/internal/network"
	"github.com/modsagraphy/universa/internal/schedule"
	"github.com/modsagraphy/universa/internal/types"
)

// ItemProcessor drives a single item from arrival to a terminal ledger
// state: download the body when absent, run the local check, exchange votes
// with peers, then commit or roll back exactly once.
//
// The single mutex guards the tally, the consensusFound flag, the locked
// record lists and the expiration deadline; sources has its own mutex so
// notification handlers can add peers while a download is in flight.
type ItemProcessor struct {
	id     types.HashId
	self   types.NodeInfo
	cfg    Config
	ledger *ledger.Ledger
	cache  *cache.ItemCache
	net    network.Network
	pool   *schedule.Pool
	onDone func(*ItemProcessor)

	record *ledger.StateRecord

	mu             sync.Mutex
	item           types.Approvable
	checked        bool
	tally          voteTally
	consensusFound bool
	expiresAt      time.Time
	downloader     *schedule.Task
	poller         *schedule.Task
	lockedToRevoke []*ledger.StateRecord
	lockedToCreate []*ledger.StateRecord

	sourcesMu sync.Mutex
	sources   map[types.NodeInfo]struct{}

	downloadedEvent *schedule.Event
	doneEvent       *schedule.Event

	startedAt time.Time
}

func newItemProcessor(
	id types.HashId,
	item types.Approvable,
	self types.NodeInfo,
	cfg Config,
	lg *ledger.Ledger,
	ch *cache.ItemCache,
	net network.Network,
	pool *schedule.Pool,
	onDone func(*ItemProcessor),
) (*ItemProcessor, error) {
	record, err := lg.FindOrCreate(id)
	if err != nil {
		return nil, fmt.Errorf("create state record: %w", err)
	}

	now := time.Now()
	p := &ItemProcessor{
		id:              id,
		self:            self,
		cfg:             cfg,
		ledger:          lg,
		cache:           ch,
		net:             net,
		pool:            pool,
		onDone:          onDone,
		record:          record,
		item:            item,
		tally:           newVoteTally(),
		expiresAt:       now.Add(cfg.MaxCacheAge),
		sources:         make(map[types.NodeInfo]struct{}),
		downloadedEvent: schedule.NewEvent(),
		doneEvent:       schedule.NewEvent(),
		startedAt:       now,
	}
	return p, nil
}

func (p *ItemProcessor) start() {
	metrics.ProcessorsActive.Inc()

	p.mu.Lock()
	item := p.item
	p.item = nil
	p.mu.Unlock()

	if item == nil {
		item = p.cache.Get(p.id)
	}
	if item != nil {
		p.pool.Submit(func() { p.itemDownloaded(item) })
		return
	}

	p.rescheduleDownload(0)
}

// ID returns the identifier of the item being processed.
func (p *ItemProcessor) ID() types.HashId {
	return p.id
}

// Result reports the item as the ledger currently sees it.
func (p *ItemProcessor) Result() types.ItemResult {
	p.mu.Lock()
	have := p.item != nil
	p.mu.Unlock()
	return p.record.Result(have)
}

// Done exposes the terminal latch for waiters.
func (p *ItemProcessor) Done() *schedule.Event {
	return p.doneEvent
}

// AddToSources registers a peer known to hold a copy of the body. A newly
// learned source triggers an immediate download attempt.
func (p *ItemProcessor) AddToSources(peer types.NodeInfo) {
	p.sourcesMu.Lock()
	_, known := p.sources[peer]
	p.sources[peer] = struct{}{}
	p.sourcesMu.Unlock()

	if known {
		return
	}

	p.mu.Lock()
	needs := p.item == nil && !p.doneEvent.Fired()
	p.mu.Unlock()
	if needs {
		p.rescheduleDownload(0)
	}
}

func (p *ItemProcessor) rescheduleDownload(delay time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.doneEvent.Fired() {
		return
	}
	if p.downloader != nil {
		p.downloader.Cancel()
	}
	p.downloader = p.pool.Schedule(delay, p.download)
}

func (p *ItemProcessor) download() {
	p.mu.Lock()
	if p.item != nil || p.doneEvent.Fired() {
		p.mu.Unlock()
		return
	}
	if time.Now().After(p.expiresAt) {
		expired := !p.consensusFound
		if expired {
			p.consensusFound = true
		}
		p.mu.Unlock()
		if expired {
			slog.Warn("item expired while downloading", "item", p.id)
			p.rollback(types.Undefined)
		}
		return
	}
	p.mu.Unlock()

	src, ok := p.randomSource()
	if !ok {
		p.rescheduleDownload(p.cfg.PollTime)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.MaxGetItemTime)
	start := time.Now()
	item, err := p.net.GetItem(ctx, src, p.id)
	cancel()
	metrics.DownloadDuration.Observe(time.Since(start).Seconds())

	if err != nil || item == nil {
		metrics.DownloadAttemptsTotal.WithLabelValues("miss").Inc()
		slog.Debug("item fetch failed, rescheduling",
			"item", p.id,
			"peer", src.Name,
			"error", err,
		)
		p.rescheduleDownload(p.cfg.PollTime)
		return
	}

	metrics.DownloadAttemptsTotal.WithLabelValues("hit").Inc()
	p.itemDownloaded(item)
}

func (p *ItemProcessor) randomSource() (types.NodeInfo, bool) {
	p.sourcesMu.Lock()
	defer p.sourcesMu.Unlock()
	if len(p.sources) == 0 {
		return types.NodeInfo{}, false
	}
	pick := rand.Intn(len(p.sources))
	for s := range p.sources {
		if pick == 0 {
			return s, true
		}
		pick--
	}
	return types.NodeInfo{}, false
}

func (p *ItemProcessor) itemDownloaded(item types.Approvable) {
	p.mu.Lock()
	if p.item != nil {
		p.mu.Unlock()
		return
	}
	p.item = item
	if p.downloader != nil {
		p.downloader.Cancel()
		p.downloader = nil
	}
	p.mu.Unlock()

	p.cache.Put(item)
	p.downloadedEvent.Fire()
	p.pool.Submit(p.check)
}

// check runs the serialized local validation: intrinsic item check,
// reference approval, revocation locks and output locks, then derives the
// local vote, persists it and broadcasts it.
func (p *ItemProcessor) check() {
	p.mu.Lock()
	if p.checked || p.consensusFound {
		p.mu.Unlock()
		return
	}
	p.checked = true
	item := p.item

	if item.Check() {
		for _, ref := range item.ReferencedItems() {
			if !p.ledger.IsApproved(ref) {
				item.AddError(types.ErrBadRef, ref.String(), "referenced item is not approved")
			}
		}
		for _, rv := range item.RevokingItems() {
			locked, err := p.record.LockToRevoke(rv.ID())
			if err != nil {
				p.mu.Unlock()
				p.fatal("lock to revoke", err)
			}
			if locked == nil {
				item.AddError(types.ErrBadRevoke, rv.ID().String(), "can not revoke item")
			} else {
				p.lockedToRevoke = append(p.lockedToRevoke, locked)
			}
		}
		for _, ni := range item.NewItems() {
			if !ni.Check() {
				item.AddError(types.ErrBadNewItem, ni.ID().String(), "new item failed check")
				continue
			}
			locked, err := p.record.CreateOutputLockRecord(ni.ID())
			if err != nil {
				p.mu.Unlock()
				p.fatal("create output lock", err)
			}
			if locked == nil {
				item.AddError(types.ErrNewItemExists, ni.ID().String(), "new item id is already in use")
			} else {
				p.lockedToCreate = append(p.lockedToCreate, locked)
			}
		}
	}

	vote := types.PendingPositive
	if len(item.Errors()) > 0 {
		vote = types.PendingNegative
	}
	p.record.SetState(vote)
	p.record.SetExpiresAt(item.ExpiresAt())
	if err := p.record.Save(); err != nil {
		p.mu.Unlock()
		p.fatal("save checked record", err)
	}
	p.mu.Unlock()

	p.vote(p.self, vote)
	p.broadcastMyState()
	p.startPolling()
}

// vote records a peer's latest view and fires the single outcome when a
// quorum is crossed. Negative quorum is checked first. Votes arriving after
// consensus are dropped.
func (p *ItemProcessor) vote(voter types.NodeInfo, state types.ItemState) {
	p.mu.Lock()
	if p.consensusFound {
		p.mu.Unlock()
		return
	}

	positive := state.IsPositive()
	p.tally.record(voter, positive)
	if positive {
		metrics.VotesTotal.WithLabelValues("positive").Inc()
	} else {
		metrics.VotesTotal.WithLabelValues("negative").Inc()
	}

	var outcome func()
	if len(p.tally.negative) >= p.cfg.NegativeConsensus {
		p.consensusFound = true
		outcome = func() { p.rollback(types.Declined) }
	} else if len(p.tally.positive) >= p.cfg.PositiveConsensus {
		p.consensusFound = true
		outcome = p.approveAndCommit
	}
	p.mu.Unlock()

	if outcome != nil {
		p.pool.Submit(outcome)
	}
}

func (p *ItemProcessor) hasVoteFrom(peer types.NodeInfo) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tally.has(peer)
}

func (p *ItemProcessor) broadcastMyState() {
	metrics.NotificationsTotal.WithLabelValues("out").Inc()
	p.net.Broadcast(p.self, types.ItemNotification{
		From:          p.self,
		ItemID:        p.id,
		Result:        p.Result(),
		RequestAnswer: true,
	})
}

func (p *ItemProcessor) startPolling() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.consensusFound || p.poller != nil {
		return
	}
	p.poller = p.pool.Repeat(p.cfg.PollTime, p.poll)
}

// poll retransmits the local state to peers that have not voted yet, and
// rolls the item back once its lifetime is exceeded.
func (p *ItemProcessor) poll() {
	p.mu.Lock()
	if p.consensusFound {
		p.mu.Unlock()
		return
	}
	if time.Now().After(p.expiresAt) {
		p.consensusFound = true
		p.mu.Unlock()
		slog.Warn("item expired while polling", "item", p.id)
		p.pool.Submit(func() { p.rollback(types.Undefined) })
		return
	}

	var silent []types.NodeInfo
	p.net.EachNode(func(peer types.NodeInfo) {
		if peer != p.self && !p.tally.has(peer) {
			silent = append(silent, peer)
		}
	})
	p.mu.Unlock()

	if len(silent) == 0 {
		return
	}
	res := p.Result()
	for _, peer := range silent {
		metrics.NotificationsTotal.WithLabelValues("out").Inc()
		p.net.Deliver(peer, types.ItemNotification{
			From:          p.self,
			ItemID:        p.id,
			Result:        res,
			RequestAnswer: true,
		})
	}
}

// approveAndCommit finalizes a positive quorum. When the body is still
// missing, the processor gets one extended download window with every peer
// as a source; failure to obtain the body destroys the record without
// touching dependents.
func (p *ItemProcessor) approveAndCommit() {
	p.record.SetState(types.Approved)

	p.mu.Lock()
	item := p.item
	p.mu.Unlock()

	if item == nil {
		p.mu.Lock()
		p.expiresAt = p.expiresAt.Add(p.cfg.MaxDownloadOnApproveTime)
		deadline := p.expiresAt
		p.mu.Unlock()

		p.net.EachNode(func(peer types.NodeInfo) {
			if peer != p.self {
				p.AddToSources(peer)
			}
		})

		if !p.downloadedEvent.Await(time.Until(deadline)) {
			slog.Warn("item body unavailable after approval, destroying record", "item", p.id)
			p.record.SetState(types.Undefined)
			if err := p.record.Destroy(); err != nil {
				p.fatal("destroy record", err)
			}
			p.finish(types.Undefined)
			return
		}

		p.mu.Lock()
		item = p.item
		p.mu.Unlock()
	}

	err := p.ledger.Transaction(func() error {
		for _, rv := range item.RevokingItems() {
			r, err := p.ledger.FindOrCreate(rv.ID())
			if err != nil {
				return err
			}
			r.SetState(types.Revoked)
			r.Unlock()
			r.SetExpiresAt(time.Now().Add(p.cfg.RevokedItemExpiration))
			if err := r.Save(); err != nil {
				return err
			}
		}
		for _, ni := range item.NewItems() {
			r, err := p.ledger.FindOrCreate(ni.ID())
			if err != nil {
				return err
			}
			r.SetState(types.Approved)
			r.Unlock()
			r.SetExpiresAt(ni.ExpiresAt())
			if err := r.Save(); err != nil {
				return err
			}
		}
		p.record.SetExpiresAt(item.ExpiresAt())
		if err := p.record.Save(); err != nil {
			return err
		}

		p.mu.Lock()
		p.lockedToRevoke = nil
		p.lockedToCreate = nil
		p.mu.Unlock()
		return nil
	})
	if err != nil {
		p.fatal("commit", err)
	}

	p.finish(types.Approved)
}

// rollback releases every conditional lock and parks the record in
// newState. Dependent records come out exactly as they were before the
// locks were taken.
func (p *ItemProcessor) rollback(newState types.ItemState) {
	p.mu.Lock()
	revoke := p.lockedToRevoke
	create := p.lockedToCreate
	p.lockedToRevoke = nil
	p.lockedToCreate = nil
	p.mu.Unlock()

	err := p.ledger.Transaction(func() error {
		for _, r := range revoke {
			if err := r.Unlock().Save(); err != nil {
				return err
			}
		}
		for _, r := range create {
			if err := r.Unlock().Save(); err != nil {
				return err
			}
		}

		p.record.SetState(newState)
		retention := p.cfg.DeclinedItemExpiration
		if newState == types.Revoked {
			retention = p.cfg.RevokedItemExpiration
		}
		p.record.SetExpiresAt(time.Now().Add(retention))
		return p.record.Save()
	})
	if err != nil {
		p.fatal("rollback", err)
	}

	p.finish(newState)
}

func (p *ItemProcessor) finish(state types.ItemState) {
	p.mu.Lock()
	if p.downloader != nil {
		p.downloader.Cancel()
		p.downloader = nil
	}
	if p.poller != nil {
		p.poller.Cancel()
		p.poller = nil
	}
	p.mu.Unlock()

	p.doneEvent.Fire()

	metrics.ItemsFinishedTotal.WithLabelValues(state.String()).Inc()
	metrics.ConsensusDuration.Observe(time.Since(p.startedAt).Seconds())
	metrics.ProcessorsActive.Dec()

	slog.Info("item processing finished", "item", p.id, "state", state)

	if p.onDone != nil {
		p.onDone(p)
	}
}

// Ledger write failure means the node can no longer guarantee the committed
// state; continuing would let peers observe effects the ledger never
// recorded.
func (p *ItemProcessor) fatal(op string, err error) {
	slog.Error("ledger failure, node state is unrecoverable",
		"item", p.id,
		"op", op,
		"error", err,
	)
	panic(fmt.Sprintf("ledger failure during %s for %s: %v", op, p.id, err))
}
