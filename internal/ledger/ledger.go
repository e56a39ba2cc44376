package ledger

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tidwall/wal"
	"google.golang.org/protobuf/proto"

	"github.com/modsagraphy/universa/internal/metrics"
	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

const (
	RecordTypeSave    byte = 1
	RecordTypeDestroy byte = 2
)

const walFolder = "wal"

// Ledger holds the node's state records in memory and makes every mutation
// durable through a write-ahead log. Reopening a ledger replays the log.
type Ledger struct {
	mu sync.Mutex

	dir     string
	log     *wal.Log
	records map[types.HashId]*StateRecord

	nextWALIdx uint64

	// txMu serializes commit and rollback transactions across processors.
	txMu sync.Mutex
}

func Open(dir string, noSync bool) (*Ledger, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}

	opts := *wal.DefaultOptions
	opts.NoSync = noSync
	log, err := wal.Open(filepath.Join(dir, walFolder), &opts)
	if err != nil {
		return nil, fmt.Errorf("wal.Open: %w", err)
	}

	l := &Ledger{
		dir:        dir,
		log:        log,
		records:    make(map[types.HashId]*StateRecord),
		nextWALIdx: 1,
	}

	if err := l.replay(); err != nil {
		log.Close()
		return nil, err
	}

	metrics.LedgerRecordsTotal.Set(float64(len(l.records)))
	return l, nil
}

func (l *Ledger) replay() error {
	empty, err := l.log.IsEmpty()
	if err != nil {
		return fmt.Errorf("wal.IsEmpty: %w", err)
	}
	if empty {
		return nil
	}

	first, err := l.log.FirstIndex()
	if err != nil {
		return fmt.Errorf("wal.FirstIndex: %w", err)
	}
	last, err := l.log.LastIndex()
	if err != nil {
		return fmt.Errorf("wal.LastIndex: %w", err)
	}

	for idx := first; idx <= last; idx++ {
		data, err := l.log.Read(idx)
		if err != nil {
			return fmt.Errorf("wal.Read(%d): %w", idx, err)
		}

		recType, payload, err := unmarshalRecord(data)
		if err != nil {
			return fmt.Errorf("unmarshal record %d: %w", idx, err)
		}

		var rec universapb.LedgerRecord
		if err := proto.Unmarshal(payload, &rec); err != nil {
			return fmt.Errorf("decode record %d: %w", idx, err)
		}

		id, err := types.HashIdFromBytes(rec.GetItemId())
		if err != nil {
			return fmt.Errorf("record %d: %w", idx, err)
		}

		switch recType {
		case RecordTypeSave:
			r, ok := l.records[id]
			if !ok {
				r = &StateRecord{ledger: l, id: id}
				l.records[id] = r
			}
			r.state = types.ItemState(rec.GetState())
			r.createdAt = timeFromMillis(rec.GetCreatedAt())
			r.expiresAt = timeFromMillis(rec.GetExpiresAt())
			r.lockedBy = types.HashId{}
			if lb := rec.GetLockedBy(); len(lb) > 0 {
				if owner, err := types.HashIdFromBytes(lb); err == nil {
					r.lockedBy = owner
				}
			}

		case RecordTypeDestroy:
			delete(l.records, id)
		}

		l.nextWALIdx = idx + 1
	}

	slog.Info("replayed ledger WAL",
		"wal_first", first,
		"wal_last", last,
		"records", len(l.records),
	)

	return nil
}

func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.log != nil {
		return l.log.Close()
	}
	return nil
}

// GetRecord returns the record for id, or nil when none exists.
func (l *Ledger) GetRecord(id types.HashId) *StateRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	metrics.LedgerOperationsTotal.WithLabelValues("get").Inc()
	return l.records[id]
}

// FindOrCreate returns the record for id, creating a PENDING one when absent.
func (l *Ledger) FindOrCreate(id types.HashId) (*StateRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if r, ok := l.records[id]; ok {
		return r, nil
	}

	r := &StateRecord{
		ledger:    l,
		id:        id,
		state:     types.Pending,
		createdAt: time.Now(),
	}
	l.records[id] = r
	if err := l.saveLocked(r); err != nil {
		delete(l.records, id)
		return nil, err
	}
	return r, nil
}

// IsApproved reports whether id has an APPROVED record. A record that only
// holds an output lock does not count.
func (l *Ledger) IsApproved(id types.HashId) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.records[id]
	return ok && r.state == types.Approved
}

// Transaction runs fn with commit/rollback mutual exclusion and syncs the
// WAL once at the end, so dependent record mutations land together.
func (l *Ledger) Transaction(fn func() error) error {
	l.txMu.Lock()
	defer l.txMu.Unlock()

	if err := fn(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.log.Sync(); err != nil {
		return fmt.Errorf("wal.Sync: %w", err)
	}
	return nil
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func (l *Ledger) saveLocked(r *StateRecord) error {
	metrics.LedgerOperationsTotal.WithLabelValues("save").Inc()

	rec := &universapb.LedgerRecord{
		ItemId:    r.id.Bytes(),
		State:     universapb.ItemState(r.state),
		CreatedAt: millis(r.createdAt),
		ExpiresAt: millis(r.expiresAt),
	}
	if !r.lockedBy.IsZero() {
		rec.LockedBy = r.lockedBy.Bytes()
	}
	if err := l.appendRecordLocked(RecordTypeSave, rec); err != nil {
		return err
	}

	metrics.LedgerRecordsTotal.Set(float64(len(l.records)))
	return nil
}

func (l *Ledger) destroyLocked(r *StateRecord) error {
	if _, ok := l.records[r.id]; !ok {
		return nil
	}
	metrics.LedgerOperationsTotal.WithLabelValues("destroy").Inc()

	rec := &universapb.LedgerRecord{ItemId: r.id.Bytes()}
	if err := l.appendRecordLocked(RecordTypeDestroy, rec); err != nil {
		return err
	}

	delete(l.records, r.id)
	metrics.LedgerRecordsTotal.Set(float64(len(l.records)))
	return nil
}

func (l *Ledger) appendRecordLocked(recType byte, msg proto.Message) error {
	payload, err := proto.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	start := time.Now()
	data := marshalRecord(recType, payload)
	if err := l.log.Write(l.nextWALIdx, data); err != nil {
		return fmt.Errorf("wal.Write(%d): %w", l.nextWALIdx, err)
	}
	l.nextWALIdx++

	metrics.WALWritesTotal.Inc()
	metrics.WALWriteDuration.Observe(time.Since(start).Seconds())
	return nil
}

func millis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func timeFromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
