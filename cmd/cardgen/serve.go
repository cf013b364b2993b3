package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-cards/internal/handlers/cards/v1alpha1"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gRPC card server",
	Long:  `Serve card generation over gRPC, sharing one page cache between requests.`,
	RunE:  runServe,
}

func init() {
	flags := serveCmd.Flags()
	flags.Int("port", 0, "gRPC server port")
	flags.Int("workers", 0, "concurrent fetches per kind")
	flags.String("cache-backend", "", "page cache backend, disk or redis")
	flags.String("cache-dir", "", "disk page cache directory")
	flags.String("redis-addr", "", "redis address for the shared page cache")
	flags.Float64("rate-limit", 0, "maximum page fetches per second, 0 for unlimited")
	flags.Bool("dnd5e-api", false, "look up unknown spell shapes on dnd5eapi.co")
	flags.String("spell-colors", "", "comma separated spell level colors, 2 to 10 stops")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := applyFlags(cmd.Flags(), cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, cleanup, err := newCardService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	cardHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CardService: svc})
	if err != nil {
		return fmt.Errorf("failed to create card handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := interceptorLogger(slog.Default())
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	v1alpha1.RegisterCardServiceServer(srv, cardHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "cache", cfg.CacheBackend)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("server stopped gracefully")
		}
		return nil
	case err := <-errChan:
		return err
	}
}

// interceptorLogger adapts slog to the middleware logger; the middleware
// levels share slog's values
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
