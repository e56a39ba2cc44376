package transport

import (
	"testing"
	"time"

	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

func TestNotification_ProtoRoundTrip(t *testing.T) {
	roster, err := NewRoster(testNodes())
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}
	from, _ := roster.Resolve(2)

	n := types.ItemNotification{
		From:   from,
		ItemID: types.NewHashId([]byte("payload")),
		Result: types.ItemResult{
			State:     types.PendingPositive,
			ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Millisecond),
			HaveCopy:  true,
		},
		RequestAnswer: true,
	}

	got, err := notificationFromProto(roster, notificationToProto(n))
	if err != nil {
		t.Fatalf("from proto: %v", err)
	}

	if got.From != n.From {
		t.Fatalf("sender lost: %+v", got.From)
	}
	if got.ItemID != n.ItemID {
		t.Fatal("item id lost")
	}
	if got.Result.State != types.PendingPositive || !got.Result.HaveCopy {
		t.Fatalf("result mangled: %+v", got.Result)
	}
	if !got.Result.ExpiresAt.Equal(n.Result.ExpiresAt) {
		t.Fatalf("expiration drifted: %v vs %v", got.Result.ExpiresAt, n.Result.ExpiresAt)
	}
	if !got.RequestAnswer {
		t.Fatal("request flag lost")
	}
}

func TestNotificationFromProto_RejectsUnknownSender(t *testing.T) {
	roster, err := NewRoster(testNodes())
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}

	msg := &universapb.ItemNotification{
		FromNode: 42,
		ItemId:   types.NewHashId([]byte("x")).Bytes(),
	}
	if _, err := notificationFromProto(roster, msg); err == nil {
		t.Fatal("expected an error for an unknown sender")
	}
}

func TestNotificationFromProto_RejectsBadItemId(t *testing.T) {
	roster, err := NewRoster(testNodes())
	if err != nil {
		t.Fatalf("new roster: %v", err)
	}

	msg := &universapb.ItemNotification{
		FromNode: 1,
		ItemId:   []byte{0x01, 0x02},
	}
	if _, err := notificationFromProto(roster, msg); err == nil {
		t.Fatal("expected an error for a truncated item id")
	}
}

func TestResultFromProto_NilIsUndefined(t *testing.T) {
	res := resultFromProto(nil)
	if res.State != types.Undefined || res.HaveCopy || !res.ExpiresAt.IsZero() {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMillis_ZeroTimeRoundTrips(t *testing.T) {
	if millis(time.Time{}) != 0 {
		t.Fatal("zero time must encode as 0")
	}
	if !timeFromMillis(0).IsZero() {
		t.Fatal("0 must decode as the zero time")
	}
}
