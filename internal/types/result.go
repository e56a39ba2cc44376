package types

import "time"

// ItemResult is the snapshot of an item's consensus state returned to
// clients and gossiped to peers.
type ItemResult struct {
	State     ItemState
	ExpiresAt time.Time
	HaveCopy  bool
}

func UndefinedResult() ItemResult {
	return ItemResult{State: Undefined}
}

func DiscardedResult() ItemResult {
	return ItemResult{State: Discarded}
}

func (r ItemResult) String() string {
	return r.State.String()
}
