package app

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/solboost/boostgate/internal/services/registration/discord"
	"github.com/solboost/boostgate/internal/services/registration/domain"
	"github.com/solboost/boostgate/internal/services/registration/render"
	"github.com/solboost/boostgate/internal/storage/sqlite"
	"github.com/solboost/boostgate/internal/telemetry"
)

// RuntimeConfig controls gatekeeper startup and dependencies.
type RuntimeConfig struct {
	Token             string
	AnnounceChannelID string
	Capacity          int
	Port              int
	// DBPath locates the telemetry journal; empty disables journaling.
	DBPath string
}

const defaultHealthPort = 8090

// Run starts the gatekeeper runtime: the telemetry journal, the Discord
// gateway, and a gRPC health endpoint. It blocks until ctx is done.
func Run(ctx context.Context, cfg RuntimeConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(cfg.Token) == "" {
		return fmt.Errorf("bot token is required")
	}
	if strings.TrimSpace(cfg.AnnounceChannelID) == "" {
		return fmt.Errorf("announcement channel id is required")
	}
	if cfg.Port <= 0 {
		cfg.Port = defaultHealthPort
	}

	var emitter *telemetry.Emitter
	if path := strings.TrimSpace(cfg.DBPath); path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create journal dir: %w", err)
			}
		}
		journal, err := sqlite.Open(path)
		if err != nil {
			return fmt.Errorf("open journal store: %w", err)
		}
		defer func() {
			if closeErr := journal.Close(); closeErr != nil {
				log.Printf("close journal store: %v", closeErr)
			}
		}()
		emitter = telemetry.NewEmitter(journal)
	}

	gateway, err := discord.NewGateway(cfg.Token)
	if err != nil {
		return err
	}
	notifier, err := gateway.Notifier(cfg.AnnounceChannelID)
	if err != nil {
		return err
	}

	ledgerOpts := []domain.LedgerOption{}
	if cfg.Capacity > 0 {
		ledgerOpts = append(ledgerOpts, domain.WithCapacity(cfg.Capacity))
	}
	ledger := domain.NewLedger(ledgerOpts...)

	router, err := NewRouter(ledger, gateway.Oracle(), notifier, render.NewEnglishPrinter(), WithEmitter(emitter))
	if err != nil {
		return err
	}

	if err := gateway.Open(ctx, router); err != nil {
		return err
	}
	defer func() {
		if closeErr := gateway.Close(); closeErr != nil {
			log.Printf("close discord gateway: %v", closeErr)
		}
	}()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on health port %d: %w", cfg.Port, err)
	}
	defer listener.Close()

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("gatekeeper.runtime", grpc_health_v1.HealthCheckResponse_SERVING)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	defer func() {
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		<-serveErr
	}()

	log.Printf("gatekeeper health server listening at %v", listener.Addr())
	<-ctx.Done()
	return nil
}
