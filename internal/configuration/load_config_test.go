package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const baseBody = `
node:
  node-id: ${UNIVERSA_NODE_ID}
  storage-base-dir: data/universa
  pool-capacity: 32
  wal:
    no-sync: false
  peers:
    1:
      name: node-1
      addr: 127.0.0.1:17001
    2:
      name: node-2
      addr: 127.0.0.1:17002
consensus:
  positive-consensus: 3
  negative-consensus: 2
  max-cache-age: 1200
  max-item-creation-age: 432000
  poll-time-millis: 1000
  max-get-item-time: 30
  max-download-on-approve-time: 300
  revoked-item-expiration: 345600
  declined-item-expiration: 600
  processor-retention: 300
transport:
  network: tcp
  address: 0.0.0.0
  port: "17001"
  timeout: 30
  deliver-timeout: 5
  max-concurrent-streams: 256
metrics:
  enabled: true
  address: 0.0.0.0
  port: "2112"
`

func baseConfigWithProfile(profile string) string {
	return "app:\n  profile: \"" + profile + "\"\n  log-level: info\n" + baseBody
}

func TestLoadFrom_ReadsBaseConfig(t *testing.T) {
	t.Setenv("UNIVERSA_NODE_ID", "2")
	dir := t.TempDir()
	writeConfigFile(t, dir, "application", baseConfigWithProfile(""))

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Node.NodeId != 2 {
		t.Fatalf("node id not expanded from env: %d", cfg.Node.NodeId)
	}
	if len(cfg.Node.Peers) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(cfg.Node.Peers))
	}
	if cfg.Node.Peers[1].Name != "node-1" || cfg.Node.Peers[2].Addr != "127.0.0.1:17002" {
		t.Fatalf("peer roster mangled: %+v", cfg.Node.Peers)
	}
	if cfg.Consensus.PositiveConsensus != 3 || cfg.Consensus.NegativeConsensus != 2 {
		t.Fatalf("consensus thresholds mangled: %+v", cfg.Consensus)
	}
	if cfg.Transport.Port != "17001" || cfg.Transport.MaxConcurrentStreams != 256 {
		t.Fatalf("transport mangled: %+v", cfg.Transport)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics flag lost")
	}
}

func TestLoadFrom_ProfileOverlaysBase(t *testing.T) {
	t.Setenv("UNIVERSA_NODE_ID", "1")
	dir := t.TempDir()

	writeConfigFile(t, dir, "application", baseConfigWithProfile("local"))
	writeConfigFile(t, dir, "application-local", `
app:
  log-level: debug
node:
  wal:
    no-sync: true
metrics:
  enabled: false
`)

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Application.LogLevel != "debug" {
		t.Fatalf("profile log level not applied: %s", cfg.Application.LogLevel)
	}
	if !cfg.Node.Wal.NoSync {
		t.Fatal("profile wal override not applied")
	}
	if cfg.Metrics.Enabled {
		t.Fatal("profile metrics override not applied")
	}
	if cfg.Consensus.PositiveConsensus != 3 {
		t.Fatal("overlay must keep untouched base values")
	}
	if cfg.Node.StorageBaseDir != "data/universa" {
		t.Fatal("overlay must keep base storage dir")
	}
}

func TestLoadFrom_MissingProfileFileFails(t *testing.T) {
	t.Setenv("UNIVERSA_NODE_ID", "1")
	dir := t.TempDir()
	writeConfigFile(t, dir, "application", baseConfigWithProfile("staging"))

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected an error for the missing profile file")
	}
}

func TestLoadFrom_UnsetEnvVarFails(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "application", "node:\n  node-id: ${UNIVERSA_LOAD_TEST_UNSET}\n")

	if _, err := LoadFrom(dir); err == nil {
		t.Fatal("expected an error for the unset variable")
	}
}
