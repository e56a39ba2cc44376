package helper

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/modsagraphy/universa/internal/cache"
	"github.com/modsagraphy/universa/internal/configuration/properties"
	"github.com/modsagraphy/universa/internal/ledger"
	"github.com/modsagraphy/universa/internal/logging"
	"github.com/modsagraphy/universa/internal/node"
	"github.com/modsagraphy/universa/internal/schedule"
	"github.com/modsagraphy/universa/internal/transport"
	"github.com/modsagraphy/universa/internal/types"
)

var nextPortBase = 30000 + rand.Intn(os.Getpid()%10000)
var portMu sync.Mutex

func allocPort() int {
	portMu.Lock()
	defer portMu.Unlock()
	port := nextPortBase
	nextPortBase++
	return port
}

// FastConfig trades the production timings for ones a test can wait out.
func FastConfig() node.Config {
	cfg := node.DefaultConfig()
	cfg.MaxCacheAge = time.Minute
	cfg.PollTime = 50 * time.Millisecond
	cfg.MaxGetItemTime = 2 * time.Second
	cfg.MaxDownloadOnApproveTime = 5 * time.Second
	cfg.ProcessorRetention = time.Minute
	return cfg
}

type Cluster struct {
	t      *testing.T
	roster []types.NodeInfo
	nodes  map[uint32]*TestNode
	mu     sync.RWMutex
}

type TestNode struct {
	Info    types.NodeInfo
	Node    *node.Node
	Ledger  *ledger.Ledger
	Cache   *cache.ItemCache
	Pool    *schedule.Pool
	Grid    *transport.GRPCNetwork
	Service *transport.Service
	Port    string

	stopped bool
	mu      sync.Mutex
}

var initOnce sync.Once

// NewCluster starts n consensus nodes on loopback ports and tears them
// down with the test.
func NewCluster(t *testing.T, n int, cfg node.Config) *Cluster {
	initOnce.Do(func() {
		logging.Init("info")
	})

	c := &Cluster{
		t:     t,
		nodes: make(map[uint32]*TestNode),
	}

	for i := 0; i < n; i++ {
		number := uint32(i + 1)
		c.roster = append(c.roster, types.NodeInfo{
			Number: number,
			Name:   fmt.Sprintf("node-%d", number),
			Addr:   fmt.Sprintf("127.0.0.1:%d", allocPort()),
		})
	}

	baseDir := t.TempDir()
	for _, info := range c.roster {
		require.NoError(t, c.startNode(info, cfg, baseDir), "failed to start %s", info.Name)
	}

	t.Cleanup(c.cleanup)
	return c
}

func (c *Cluster) startNode(self types.NodeInfo, cfg node.Config, baseDir string) error {
	roster, err := transport.NewRoster(c.roster)
	if err != nil {
		return err
	}

	lg, err := ledger.Open(filepath.Join(baseDir, self.Name, "ledger"), true)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}

	itemCache := cache.New(cfg.MaxCacheAge)
	pool := schedule.NewPool(16)

	grid, err := transport.NewGRPCNetwork(self, roster, itemCache, 2*time.Second)
	if err != nil {
		lg.Close()
		pool.Close()
		return fmt.Errorf("new grid: %w", err)
	}

	nd := node.New(cfg, self, grid, lg, itemCache, pool)

	_, port, err := splitAddr(self.Addr)
	if err != nil {
		return err
	}
	svc := transport.NewService(&properties.TransportConfigProperties{
		Network:              "tcp",
		Address:              "127.0.0.1",
		Port:                 port,
		Timeout:              5,
		DeliverTimeout:       2,
		MaxConcurrentStreams: 64,
	}, grid)

	if _, err := svc.StartServer(); err != nil {
		lg.Close()
		pool.Close()
		grid.Close()
		return fmt.Errorf("start server: %w", err)
	}

	tn := &TestNode{
		Info:    self,
		Node:    nd,
		Ledger:  lg,
		Cache:   itemCache,
		Pool:    pool,
		Grid:    grid,
		Service: svc,
		Port:    port,
	}

	c.mu.Lock()
	c.nodes[self.Number] = tn
	c.mu.Unlock()
	return nil
}

func splitAddr(addr string) (host, port string, err error) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i], addr[i+1:], nil
		}
	}
	return "", "", fmt.Errorf("address %q has no port", addr)
}

func (c *Cluster) cleanup() {
	c.mu.Lock()
	nodes := make([]*TestNode, 0, len(c.nodes))
	for _, n := range c.nodes {
		nodes = append(nodes, n)
	}
	c.mu.Unlock()

	for _, n := range nodes {
		n.mu.Lock()
		if !n.stopped {
			n.Service.Stop()
			n.Pool.Close()
			n.Ledger.Close()
			n.stopped = true
		}
		n.mu.Unlock()
	}
}

func (c *Cluster) GetNode(number uint32) *TestNode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nodes[number]
}

// EachNode visits every running node.
func (c *Cluster) EachNode(fn func(*TestNode)) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, info := range c.roster {
		if n := c.nodes[info.Number]; n != nil {
			fn(n)
		}
	}
}

// WaitForState blocks until every node reports the wanted state for id.
func (c *Cluster) WaitForState(id types.HashId, want types.ItemState, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for %s on all nodes: %s", want, c.describeStates(id))
		case <-ticker.C:
			agreed := true
			c.EachNode(func(n *TestNode) {
				if n.Node.CheckItem(id).State != want {
					agreed = false
				}
			})
			if agreed {
				return nil
			}
		}
	}
}

func (c *Cluster) describeStates(id types.HashId) string {
	out := ""
	c.EachNode(func(n *TestNode) {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%s", n.Info.Name, n.Node.CheckItem(id).State)
	})
	return out
}

// RequireState asserts the wanted state is reached cluster-wide.
func (c *Cluster) RequireState(id types.HashId, want types.ItemState, timeout time.Duration) {
	c.t.Helper()
	require.NoError(c.t, c.WaitForState(id, want, timeout))
}
