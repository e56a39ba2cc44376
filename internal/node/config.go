package node

import "time"

// Config carries the consensus timing and quorum settings.
type Config struct {
	// MaxCacheAge bounds the item cache TTL and the initial processor
	// lifetime.
	MaxCacheAge time.Duration
	// MaxItemCreationAge rejects items created further in the past.
	MaxItemCreationAge time.Duration
	// PollTime is the retransmit interval and the download retry interval.
	PollTime time.Duration
	// MaxGetItemTime bounds a single remote fetch attempt.
	MaxGetItemTime time.Duration
	// MaxDownloadOnApproveTime extends the processor lifetime when the body
	// must still be fetched after positive quorum.
	MaxDownloadOnApproveTime time.Duration

	// PositiveConsensus and NegativeConsensus are peer-count quorum
	// thresholds. Negative is checked first.
	PositiveConsensus int
	NegativeConsensus int

	// Retention of terminal records.
	RevokedItemExpiration  time.Duration
	DeclinedItemExpiration time.Duration

	// ProcessorRetention keeps finished processors addressable for late
	// WaitItem calls before they are evicted from the dispatcher.
	ProcessorRetention time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxCacheAge:              20 * time.Minute,
		MaxItemCreationAge:       120 * time.Hour,
		PollTime:                 time.Second,
		MaxGetItemTime:           30 * time.Second,
		MaxDownloadOnApproveTime: 5 * time.Minute,
		PositiveConsensus:        3,
		NegativeConsensus:        2,
		RevokedItemExpiration:    96 * time.Hour,
		DeclinedItemExpiration:   10 * time.Minute,
		ProcessorRetention:       5 * time.Minute,
	}
}
