package universapb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ItemProtocol_Notify_FullMethodName  = "/universa.ItemProtocol/Notify"
	ItemProtocol_GetItem_FullMethodName = "/universa.ItemProtocol/GetItem"
)

// ItemProtocolClient is the client API for ItemProtocol service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ItemProtocolClient interface {
	Notify(ctx context.Context, in *ItemNotification, opts ...grpc.CallOption) (*Ack, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
}

type itemProtocolClient struct {
	cc grpc.ClientConnInterface
}

func NewItemProtocolClient(cc grpc.ClientConnInterface) ItemProtocolClient {
	return &itemProtocolClient{cc}
}

func (c *itemProtocolClient) Notify(ctx context.Context, in *ItemNotification, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, ItemProtocol_Notify_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *itemProtocolClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetItemResponse)
	err := c.cc.Invoke(ctx, ItemProtocol_GetItem_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ItemProtocolServer is the server API for ItemProtocol service.
// All implementations must embed UnimplementedItemProtocolServer
// for forward compatibility.
type ItemProtocolServer interface {
	Notify(context.Context, *ItemNotification) (*Ack, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	mustEmbedUnimplementedItemProtocolServer()
}

// UnimplementedItemProtocolServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedItemProtocolServer struct{}

func (UnimplementedItemProtocolServer) Notify(context.Context, *ItemNotification) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Notify not implemented")
}
func (UnimplementedItemProtocolServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetItem not implemented")
}
func (UnimplementedItemProtocolServer) mustEmbedUnimplementedItemProtocolServer() {}
func (UnimplementedItemProtocolServer) testEmbeddedByValue()                      {}

// UnsafeItemProtocolServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ItemProtocolServer will
// result in compilation errors.
type UnsafeItemProtocolServer interface {
	mustEmbedUnimplementedItemProtocolServer()
}

func RegisterItemProtocolServer(s grpc.ServiceRegistrar, srv ItemProtocolServer) {
	// If the following call panics, it indicates UnimplementedItemProtocolServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ItemProtocol_ServiceDesc, srv)
}

func _ItemProtocol_Notify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ItemNotification)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemProtocolServer).Notify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ItemProtocol_Notify_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ItemProtocolServer).Notify(ctx, req.(*ItemNotification))
	}
	return interceptor(ctx, in, info, handler)
}

func _ItemProtocol_GetItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ItemProtocolServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ItemProtocol_GetItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ItemProtocolServer).GetItem(ctx, req.(*GetItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ItemProtocol_ServiceDesc is the grpc.ServiceDesc for ItemProtocol service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ItemProtocol_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "universa.ItemProtocol",
	HandlerType: (*ItemProtocolServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Notify",
			Handler:    _ItemProtocol_Notify_Handler,
		},
		{
			MethodName: "GetItem",
			Handler:    _ItemProtocol_GetItem_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "universa.proto",
}
