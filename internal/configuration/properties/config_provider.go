package properties

type ConfigProvider interface {
	GetApplication() *ApplicationConfigProperties
	GetNode() *NodeConfigProperties
	GetConsensus() *ConsensusConfigProperties
	GetTransport() *TransportConfigProperties
	GetMetrics() *MetricsConfigProperties
}

type AppConfigProvider struct {
	config *Config
}

func NewProvider(cfg *Config) *AppConfigProvider {
	return &AppConfigProvider{config: cfg}
}

func (c *AppConfigProvider) GetApplication() *ApplicationConfigProperties {
	return &c.config.Application
}

func (c *AppConfigProvider) GetNode() *NodeConfigProperties {
	return &c.config.Node
}

func (c *AppConfigProvider) GetConsensus() *ConsensusConfigProperties {
	return &c.config.Consensus
}

func (c *AppConfigProvider) GetTransport() *TransportConfigProperties {
	return &c.config.Transport
}

func (c *AppConfigProvider) GetMetrics() *MetricsConfigProperties {
	return &c.config.Metrics
}
