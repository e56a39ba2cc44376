package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/modsagraphy/universa/internal/cache"
	"github.com/modsagraphy/universa/internal/configuration/properties"
	"github.com/modsagraphy/universa/internal/ledger"
	"github.com/modsagraphy/universa/internal/node"
	"github.com/modsagraphy/universa/internal/schedule"
	"github.com/modsagraphy/universa/internal/transport"
	"github.com/modsagraphy/universa/internal/types"
)

type Services struct {
	Ledger    *ledger.Ledger
	Cache     *cache.ItemCache
	Pool      *schedule.Pool
	Grid      *transport.GRPCNetwork
	Node      *node.Node
	Transport *transport.Service
}

func NewServices(cfg *properties.Config) (*Services, error) {
	nodeCfg := consensusConfig(&cfg.Consensus)

	self, roster, err := buildRoster(&cfg.Node)
	if err != nil {
		return nil, err
	}

	ledgerDir := filepath.Join(cfg.Node.StorageBaseDir, fmt.Sprintf("node-%d", cfg.Node.NodeId), "ledger")
	lg, err := ledger.Open(ledgerDir, cfg.Node.Wal.NoSync)
	if err != nil {
		return nil, fmt.Errorf("opening ledger at %s: %w", ledgerDir, err)
	}

	itemCache := cache.New(nodeCfg.MaxCacheAge)
	pool := schedule.NewPool(cfg.Node.PoolCapacity)

	deliverTimeout := time.Duration(cfg.Transport.DeliverTimeout) * time.Second
	grid, err := transport.NewGRPCNetwork(self, roster, itemCache, deliverTimeout)
	if err != nil {
		closeLedger(lg)
		return nil, err
	}

	n := node.New(nodeCfg, self, grid, lg, itemCache, pool)

	return &Services{
		Ledger:    lg,
		Cache:     itemCache,
		Pool:      pool,
		Grid:      grid,
		Node:      n,
		Transport: transport.NewService(&cfg.Transport, grid),
	}, nil
}

func (s *Services) Shutdown() {
	s.Pool.Close()
	closeLedger(s.Ledger)
}

func buildRoster(nodeCfg *properties.NodeConfigProperties) (types.NodeInfo, *transport.Roster, error) {
	peers := make([]types.NodeInfo, 0, len(nodeCfg.Peers))
	for number, peer := range nodeCfg.Peers {
		peers = append(peers, types.NodeInfo{Number: number, Name: peer.Name, Addr: peer.Addr})
	}

	roster, err := transport.NewRoster(peers)
	if err != nil {
		return types.NodeInfo{}, nil, err
	}

	self, ok := roster.Resolve(nodeCfg.NodeId)
	if !ok {
		return types.NodeInfo{}, nil, fmt.Errorf("node-id %d is not in the peer roster", nodeCfg.NodeId)
	}
	return self, roster, nil
}

func consensusConfig(p *properties.ConsensusConfigProperties) node.Config {
	return node.Config{
		MaxCacheAge:              time.Duration(p.MaxCacheAge) * time.Second,
		MaxItemCreationAge:       time.Duration(p.MaxItemCreationAge) * time.Second,
		PollTime:                 time.Duration(p.PollTimeMillis) * time.Millisecond,
		MaxGetItemTime:           time.Duration(p.MaxGetItemTime) * time.Second,
		MaxDownloadOnApproveTime: time.Duration(p.MaxDownloadOnApproveTime) * time.Second,
		PositiveConsensus:        p.PositiveConsensus,
		NegativeConsensus:        p.NegativeConsensus,
		RevokedItemExpiration:    time.Duration(p.RevokedItemExpiration) * time.Second,
		DeclinedItemExpiration:   time.Duration(p.DeclinedItemExpiration) * time.Second,
		ProcessorRetention:       time.Duration(p.ProcessorRetention) * time.Second,
	}
}

func closeLedger(lg *ledger.Ledger) {
	if err := lg.Close(); err != nil {
		slog.Error("failed to close ledger", "error", err)
	}
}
