package transport

import (
	"fmt"
	"time"

	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

func resultToProto(res types.ItemResult) *universapb.ItemResult {
	return &universapb.ItemResult{
		State:     universapb.ItemState(res.State),
		ExpiresAt: millis(res.ExpiresAt),
		HaveCopy:  res.HaveCopy,
	}
}

func resultFromProto(msg *universapb.ItemResult) types.ItemResult {
	if msg == nil {
		return types.UndefinedResult()
	}
	return types.ItemResult{
		State:     types.ItemState(msg.GetState()),
		ExpiresAt: timeFromMillis(msg.GetExpiresAt()),
		HaveCopy:  msg.GetHaveCopy(),
	}
}

func notificationToProto(n types.ItemNotification) *universapb.ItemNotification {
	return &universapb.ItemNotification{
		FromNode:      n.From.Number,
		ItemId:        n.ItemID.Bytes(),
		Result:        resultToProto(n.Result),
		RequestAnswer: n.RequestAnswer,
	}
}

func notificationFromProto(roster *Roster, msg *universapb.ItemNotification) (types.ItemNotification, error) {
	from, ok := roster.Resolve(msg.GetFromNode())
	if !ok {
		return types.ItemNotification{}, fmt.Errorf("notification from unknown node %d", msg.GetFromNode())
	}
	id, err := types.HashIdFromBytes(msg.GetItemId())
	if err != nil {
		return types.ItemNotification{}, fmt.Errorf("bad item id in notification: %w", err)
	}
	return types.ItemNotification{
		From:          from,
		ItemID:        id,
		Result:        resultFromProto(msg.GetResult()),
		RequestAnswer: msg.GetRequestAnswer(),
	}, nil
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
