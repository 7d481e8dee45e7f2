package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/goodnatureofminers/blockinsight7000-spv/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// serveAPI runs the gRPC server and the REST gateway in front of it until ctx ends.
func serveAPI(ctx context.Context, grpcAddr, restAddr string, wallet transport.Wallet, logger *zap.Logger) error {
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))
	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()
	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, transport.NewExplorerHandler(wallet))
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", grpcAddr, err)
	}

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, grpcAddr, opts); err != nil {
		return fmt.Errorf("register explorer handler: %w", err)
	}
	if err := transport.NewWalletHandler(wallet, logger.Named("rest")).Register(gw); err != nil {
		return err
	}
	restServer := newHTTPServer(restAddr, cors.Default().Handler(gw))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting gRPC server", zap.String("addr", grpcAddr))
		if err := grpcServer.Serve(socket); err != nil {
			return fmt.Errorf("serve grpc: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		logger.Info("starting HTTP server", zap.String("addr", restAddr))
		return listenAndServe(restServer)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down API servers")
		grpcServer.GracefulStop()
		return shutdown(restServer)
	})
	return g.Wait()
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := newHTTPServer(addr, mux)

	go func() {
		<-ctx.Done()
		if err := shutdown(srv); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()

	logger.Info("starting metrics server", zap.String("addr", addr))
	return listenAndServe(srv)
}

func newHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}

func listenAndServe(srv *http.Server) error {
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", srv.Addr, err)
	}
	return nil
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
