package item

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

// Item is the concrete transactional object submitted for consensus. Its
// identity is the sha3-256 of its packed form, so two items with equal
// content share an id. The packed form and id are computed once, on first
// use; later Add* calls do not change them.
type Item struct {
	createdAt       time.Time
	expiresAt       time.Time
	referencedItems []types.HashId
	revokingItems   []types.Approvable
	newItems        []types.Approvable
	payload         string

	packOnce sync.Once
	packed   []byte
	packErr  error
	id       types.HashId

	mu     sync.Mutex
	errors []types.ErrorRecord
}

func New(ttl time.Duration) *Item {
	now := time.Now()
	return &Item{
		createdAt: now,
		expiresAt: now.Add(ttl),
		payload:   uuid.NewString(),
	}
}

func (i *Item) AddReferencedItem(id types.HashId) *Item {
	i.referencedItems = append(i.referencedItems, id)
	return i
}

func (i *Item) AddRevokingItem(it types.Approvable) *Item {
	i.revokingItems = append(i.revokingItems, it)
	return i
}

func (i *Item) AddNewItem(it types.Approvable) *Item {
	i.newItems = append(i.newItems, it)
	return i
}

func (i *Item) ID() types.HashId {
	i.pack()
	return i.id
}

func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) ExpiresAt() time.Time { return i.expiresAt }

func (i *Item) ReferencedItems() []types.HashId   { return i.referencedItems }
func (i *Item) RevokingItems() []types.Approvable { return i.revokingItems }
func (i *Item) NewItems() []types.Approvable      { return i.newItems }

// Check validates the item's intrinsic structure. Failures are accumulated
// on the item; dependency checks belong to the processor, not here.
func (i *Item) Check() bool {
	ok := true
	if i.payload == "" {
		i.AddError(types.ErrFailedCheck, "payload", "empty payload")
		ok = false
	}
	if !i.expiresAt.After(i.createdAt) {
		i.AddError(types.ErrFailedCheck, "expires_at", "expires before creation")
		ok = false
	}
	for _, n := range i.newItems {
		if len(n.RevokingItems()) > 0 || len(n.NewItems()) > 0 {
			i.AddError(types.ErrFailedCheck, "new_items", "new item carries nested effects")
			ok = false
		}
	}
	return ok
}

func (i *Item) Errors() []types.ErrorRecord {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]types.ErrorRecord, len(i.errors))
	copy(out, i.errors)
	return out
}

func (i *Item) AddError(code types.ErrorCode, object, message string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.errors = append(i.errors, types.ErrorRecord{Code: code, Object: object, Message: message})
}

// Pack serializes the item deterministically so the id is stable across
// nodes.
func (i *Item) Pack() ([]byte, error) {
	i.pack()
	return i.packed, i.packErr
}

func (i *Item) pack() {
	i.packOnce.Do(func() {
		msg, err := i.toProto()
		if err != nil {
			i.packErr = err
			return
		}
		i.packed, i.packErr = marshalDeterministic(msg)
		if i.packErr == nil {
			i.id = types.NewHashId(i.packed)
		}
	})
}

func (i *Item) toProto() (*universapb.PackedItem, error) {
	msg := &universapb.PackedItem{
		CreatedAt: i.createdAt.UnixMilli(),
		ExpiresAt: i.expiresAt.UnixMilli(),
		Payload:   i.payload,
	}
	for _, ref := range i.referencedItems {
		msg.ReferencedItems = append(msg.ReferencedItems, ref.Bytes())
	}
	for _, r := range i.revokingItems {
		sub, err := toProtoApprovable(r)
		if err != nil {
			return nil, err
		}
		msg.RevokingItems = append(msg.RevokingItems, sub)
	}
	for _, n := range i.newItems {
		sub, err := toProtoApprovable(n)
		if err != nil {
			return nil, err
		}
		msg.NewItems = append(msg.NewItems, sub)
	}
	return msg, nil
}

func toProtoApprovable(a types.Approvable) (*universapb.PackedItem, error) {
	if it, ok := a.(*Item); ok {
		return it.toProto()
	}
	packed, err := a.Pack()
	if err != nil {
		return nil, err
	}
	var msg universapb.PackedItem
	if err := proto.Unmarshal(packed, &msg); err != nil {
		return nil, fmt.Errorf("repack foreign item: %w", err)
	}
	return &msg, nil
}

// Unpack reconstructs an item from its packed form. The result packs back to
// the same bytes, so the id round-trips.
func Unpack(packed []byte) (*Item, error) {
	var msg universapb.PackedItem
	if err := proto.Unmarshal(packed, &msg); err != nil {
		return nil, fmt.Errorf("unpack item: %w", err)
	}
	return fromProto(&msg)
}

func fromProto(msg *universapb.PackedItem) (*Item, error) {
	i := &Item{
		createdAt: time.UnixMilli(msg.GetCreatedAt()),
		expiresAt: time.UnixMilli(msg.GetExpiresAt()),
		payload:   msg.GetPayload(),
	}
	for _, ref := range msg.GetReferencedItems() {
		id, err := types.HashIdFromBytes(ref)
		if err != nil {
			return nil, err
		}
		i.referencedItems = append(i.referencedItems, id)
	}
	for _, sub := range msg.GetRevokingItems() {
		it, err := fromProto(sub)
		if err != nil {
			return nil, err
		}
		i.revokingItems = append(i.revokingItems, it)
	}
	for _, sub := range msg.GetNewItems() {
		it, err := fromProto(sub)
		if err != nil {
			return nil, err
		}
		i.newItems = append(i.newItems, it)
	}
	return i, nil
}

func marshalDeterministic(msg proto.Message) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(msg)
}
