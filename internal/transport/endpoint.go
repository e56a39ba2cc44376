package transport

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
	"github.com/modsagraphy/universa/internal/types"
)

// GRPCServer answers the item protocol. Notifications are routed to the
// subscribed handler; GetItem serves packed copies out of the local store.
type GRPCServer struct {
	universapb.UnimplementedItemProtocolServer
	net *GRPCNetwork
}

func (s *GRPCServer) Notify(ctx context.Context, msg *universapb.ItemNotification) (*universapb.Ack, error) {
	notif, err := notificationFromProto(s.net.roster, msg)
	if err != nil {
		slog.Warn("rejecting notification", "error", err)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.net.dispatch(notif)
	return &universapb.Ack{}, nil
}

func (s *GRPCServer) GetItem(ctx context.Context, req *universapb.GetItemRequest) (*universapb.GetItemResponse, error) {
	id, err := types.HashIdFromBytes(req.GetItemId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	it := s.net.items.Get(id)
	if it == nil {
		return nil, status.Errorf(codes.NotFound, "no copy of item %s", id)
	}

	packed, err := it.Pack()
	if err != nil {
		slog.Error("failed to pack item for peer", "item", id, "error", err)
		return nil, status.Errorf(codes.Internal, "packing item %s: %v", id, err)
	}
	return &universapb.GetItemResponse{Packed: packed}, nil
}
