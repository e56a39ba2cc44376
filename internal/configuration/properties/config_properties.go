package properties

type ApplicationConfigProperties struct {
	Profile  string `yaml:"profile"`
	LogLevel string `yaml:"log-level"`
}

type WriteAheadLogProperties struct {
	NoSync bool `yaml:"no-sync"`
}

type PeerProperties struct {
	Name string `yaml:"name"`
	Addr string `yaml:"addr"`
}

type NodeConfigProperties struct {
	NodeId         uint32                    `yaml:"node-id"`
	Peers          map[uint32]PeerProperties `yaml:"peers"`
	StorageBaseDir string                    `yaml:"storage-base-dir"`
	Wal            WriteAheadLogProperties   `yaml:"wal"`
	PoolCapacity   int64                     `yaml:"pool-capacity"`
}

// ConsensusConfigProperties mirrors the node consensus settings. Durations
// are seconds unless the field name says otherwise.
type ConsensusConfigProperties struct {
	PositiveConsensus        int    `yaml:"positive-consensus"`
	NegativeConsensus        int    `yaml:"negative-consensus"`
	MaxCacheAge              uint64 `yaml:"max-cache-age"`
	MaxItemCreationAge       uint64 `yaml:"max-item-creation-age"`
	PollTimeMillis           uint64 `yaml:"poll-time-millis"`
	MaxGetItemTime           uint64 `yaml:"max-get-item-time"`
	MaxDownloadOnApproveTime uint64 `yaml:"max-download-on-approve-time"`
	RevokedItemExpiration    uint64 `yaml:"revoked-item-expiration"`
	DeclinedItemExpiration   uint64 `yaml:"declined-item-expiration"`
	ProcessorRetention       uint64 `yaml:"processor-retention"`
}

type TransportConfigProperties struct {
	Network              string `yaml:"network"`
	Address              string `yaml:"address"`
	Port                 string `yaml:"port"`
	Timeout              uint64 `yaml:"timeout"`
	DeliverTimeout       uint64 `yaml:"deliver-timeout"`
	MaxConcurrentStreams uint32 `yaml:"max-concurrent-streams"`
}

type MetricsConfigProperties struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

type Config struct {
	Application ApplicationConfigProperties `yaml:"app"`
	Node        NodeConfigProperties        `yaml:"node"`
	Consensus   ConsensusConfigProperties   `yaml:"consensus"`
	Transport   TransportConfigProperties   `yaml:"transport"`
	Metrics     MetricsConfigProperties     `yaml:"metrics"`
}
