package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"

	grpcHandler "github.com/anthanhphan/go-database-proxy/internal/proxyd/adapter/inbound/grpc"
	"github.com/anthanhphan/go-database-proxy/internal/proxyd/adapter/outbound/peer"
	"github.com/anthanhphan/go-database-proxy/internal/proxyd/config"
	"github.com/anthanhphan/go-database-proxy/internal/proxyd/service"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	"github.com/anthanhphan/go-database-proxy/pkg/poolsize"
	proxyv1 "github.com/anthanhphan/go-database-proxy/proto/gen/proxy/v1"
	"github.com/anthanhphan/gosdk/logger"
)

type App struct {
	cfg            *config.Config
	server         *grpc.Server
	pinger         *peer.Pinger
	dir            *cluster.Directory
	health         *cluster.HealthTracker
	coordinator    *poolsize.Coordinator
	selfAddr       string
	backgroundStop context.CancelFunc
}

func New(configPath string) (*App, error) {
	// 1. Load Config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize Logger
	logger.InitLogger(&cfg.Logger)

	if len(cfg.Cluster.Nodes) == 0 {
		return nil, fmt.Errorf("no cluster nodes configured")
	}

	// 3. Local cluster view. The node only observes its peers to size its
	// pool share; it never shares routing state with them.
	selfAddr := net.JoinHostPort(cfg.Server.Hostname, strconv.Itoa(cfg.Server.Port))
	nodes := make([]*cluster.Node, 0, len(cfg.Cluster.Nodes))
	for _, nc := range cfg.Cluster.Nodes {
		nodes = append(nodes, cluster.NewNode(nc.Host, nc.Port, nc.Name))
	}
	dir := cluster.NewDirectory(nodes)
	if _, ok := dir.Lookup(selfAddr); !ok {
		return nil, fmt.Errorf("advertised identity %s is not in the cluster node list", selfAddr)
	}

	// 4. Peer probing and health view
	pinger := peer.NewPinger()
	health := cluster.NewHealthTracker(dir, func(ctx context.Context, n *cluster.Node) error {
		if n.Addr() == selfAddr {
			return nil
		}
		return pinger.Ping(ctx, n.Addr())
	}, cfg.RetryDelay(), cfg.ProbeTimeout())

	// 5. Pool coordination
	coordinator := poolsize.NewCoordinator(len(nodes))
	health.OnRecovered(func(recovered []*cluster.Node, healthyCount int) {
		coordinator.OnHealthyCountChange(healthyCount)
	})

	// 6. gRPC Server
	registry := service.NewSessionRegistry(coordinator, cfg.Pool.MaxSize, cfg.Pool.MinIdle, len(nodes))
	grpcServer := grpc.NewServer()
	grpcService := grpcHandler.NewServer(registry, service.NewEchoExecutor(), cfg.Server.Hostname, cfg.Server.Port)
	proxyv1.RegisterProxyServiceServer(grpcServer, grpcService)

	return &App{
		cfg:         cfg,
		server:      grpcServer,
		pinger:      pinger,
		dir:         dir,
		health:      health,
		coordinator: coordinator,
		selfAddr:    selfAddr,
	}, nil
}

func (a *App) Run() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", a.cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", a.cfg.Server.Port, err)
	}

	logger.Infow("Proxy node starting",
		"name", a.cfg.Server.Name,
		"addr", a.selfAddr,
		"peers", a.dir.Size()-1)

	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.server.Serve(listener); err != nil {
			serverErrCh <- err
		}
	}()

	// Start the peer probe worker
	bgCtx, cancel := context.WithCancel(context.Background())
	a.backgroundStop = cancel
	go a.probeLoop(bgCtx)

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case sig := <-stop:
		logger.Infow("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		// Ignore expected stop errors.
		errMsg := err.Error()
		if !strings.Contains(errMsg, "use of closed network connection") && !errors.Is(err, grpc.ErrServerStopped) {
			runErr = fmt.Errorf("gRPC server failed: %w", err)
			logger.Errorw("Proxy gRPC server exited unexpectedly", "error", errMsg)
		}
	}

	logger.Info("Shutting down proxy node")
	if a.backgroundStop != nil {
		a.backgroundStop()
	}
	a.server.GracefulStop()
	a.pinger.Close()

	return runErr
}

// probeLoop re-checks every peer on an interval and keeps the pool
// coordinator in sync with the observed healthy count. The coordinator
// ignores sweeps that did not change the count.
func (a *App) probeLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.ProbeInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		for _, node := range a.dir.Nodes() {
			if node.Addr() == a.selfAddr {
				continue
			}
			probeCtx, cancel := context.WithTimeout(ctx, a.cfg.ProbeTimeout())
			err := a.pinger.Ping(probeCtx, node.Addr())
			cancel()

			if err != nil {
				a.health.ReportFailure(node, err)
				continue
			}
			if !node.Healthy() {
				a.health.MarkRecovered(node)
			}
		}
		a.coordinator.OnHealthyCountChange(a.dir.HealthyCount())
	}
}
