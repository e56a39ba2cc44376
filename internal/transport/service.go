package transport

import (
	"context"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/modsagraphy/universa/internal/configuration/properties"
	"github.com/modsagraphy/universa/internal/metrics"
	"github.com/modsagraphy/universa/internal/transport/gen/universapb"
)

type Service struct {
	network              string
	address              string
	port                 string
	timeout              uint64
	maxConcurrentStreams uint32
	grid                 *GRPCNetwork
	Server               *grpc.Server
}

func NewService(transportConfig *properties.TransportConfigProperties, grid *GRPCNetwork) *Service {
	return &Service{
		network:              transportConfig.Network,
		address:              transportConfig.Address,
		port:                 transportConfig.Port,
		timeout:              transportConfig.Timeout,
		maxConcurrentStreams: transportConfig.MaxConcurrentStreams,
		grid:                 grid,
	}
}

func (ts *Service) StartServer() (net.Listener, error) {
	lis, err := net.Listen(ts.network, net.JoinHostPort(ts.address, ts.port))
	if err != nil {
		return nil, err
	}

	timeout := ts.timeout
	if timeout < 1 {
		slog.Warn("Timeout can't be less than 1 second. Setting transport timeout to 1 second.")
		timeout = 1
	}

	opts := []grpc.ServerOption{
		grpc.MaxConcurrentStreams(ts.maxConcurrentStreams),
		grpc.ChainUnaryInterceptor(
			metrics.UnaryServerInterceptor(),
			timeoutInterceptor(time.Duration(timeout)*time.Second),
		),
	}
	ts.Server = grpc.NewServer(opts...)

	universapb.RegisterItemProtocolServer(ts.Server, &GRPCServer{net: ts.grid})
	reflection.Register(ts.Server)
	slog.Info("transport listening", "addr", lis.Addr())

	go func() {
		if err := ts.Server.Serve(lis); err != nil {
			slog.Error("failed to serve listener", "error", err)
		}
	}()

	return lis, nil
}

func (ts *Service) Stop() {
	if ts.Server != nil {
		ts.Server.GracefulStop()
	}
	ts.grid.Close()
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
