package ledger

import (
	"time"

	"github.com/modsagraphy/universa/internal/types"
)

// StateRecord is a ledger row. All mutators go through the owning Ledger so
// that concurrent processors observe a consistent view. A record holding a
// revocation lock keeps its state and carries the locker's id in lockedBy.
type StateRecord struct {
	ledger *Ledger

	id        types.HashId
	state     types.ItemState
	createdAt time.Time
	expiresAt time.Time
	lockedBy  types.HashId
}

func (r *StateRecord) ID() types.HashId {
	return r.id
}

func (r *StateRecord) State() types.ItemState {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.state
}

func (r *StateRecord) CreatedAt() time.Time {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.createdAt
}

func (r *StateRecord) ExpiresAt() time.Time {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.expiresAt
}

func (r *StateRecord) LockedBy() types.HashId {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.lockedBy
}

func (r *StateRecord) SetState(s types.ItemState) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	r.state = s
}

func (r *StateRecord) SetExpiresAt(t time.Time) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	r.expiresAt = t
}

// Save persists the record's current fields. A record in UNDEFINED, such as
// an output lock after Unlock, is destroyed instead.
func (r *StateRecord) Save() error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	if r.state == types.Undefined {
		return r.ledger.destroyLocked(r)
	}
	return r.ledger.saveLocked(r)
}

// Destroy removes the record from the ledger.
func (r *StateRecord) Destroy() error {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return r.ledger.destroyLocked(r)
}

// Unlock releases a conditional lock. A revocation-locked record drops its
// lock owner and keeps its state; an output lock reverts to UNDEFINED so the
// following Save removes it.
func (r *StateRecord) Unlock() *StateRecord {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	switch r.state {
	case types.LockedForCreation:
		r.state = types.Undefined
		r.lockedBy = types.HashId{}
	default:
		r.lockedBy = types.HashId{}
	}
	return r
}

// LockToRevoke places a revocation lock on the record of targetId. It
// succeeds only when that record exists, is APPROVED and is not locked by
// anyone, and returns the locked record; otherwise nil.
func (r *StateRecord) LockToRevoke(targetId types.HashId) (*StateRecord, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	target, ok := r.ledger.records[targetId]
	if !ok {
		return nil, nil
	}
	if target.state != types.Approved || !target.lockedBy.IsZero() {
		return nil, nil
	}
	target.lockedBy = r.id
	if err := r.ledger.saveLocked(target); err != nil {
		return nil, err
	}
	return target, nil
}

// CreateOutputLockRecord reserves newId for an item this record is creating.
// It succeeds only when no record for newId exists, and returns a record in
// LOCKED_FOR_CREATION; otherwise nil.
func (r *StateRecord) CreateOutputLockRecord(newId types.HashId) (*StateRecord, error) {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()

	if _, ok := r.ledger.records[newId]; ok {
		return nil, nil
	}
	out := &StateRecord{
		ledger:    r.ledger,
		id:        newId,
		state:     types.LockedForCreation,
		createdAt: time.Now(),
		expiresAt: r.expiresAt,
		lockedBy:  r.id,
	}
	r.ledger.records[newId] = out
	if err := r.ledger.saveLocked(out); err != nil {
		delete(r.ledger.records, newId)
		return nil, err
	}
	return out, nil
}

// Result reports the record as seen by peers.
func (r *StateRecord) Result(haveCopy bool) types.ItemResult {
	r.ledger.mu.Lock()
	defer r.ledger.mu.Unlock()
	return types.ItemResult{
		State:     r.state,
		ExpiresAt: r.expiresAt,
		HaveCopy:  haveCopy,
	}
}
