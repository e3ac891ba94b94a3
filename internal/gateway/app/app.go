package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	httpHandler "github.com/anthanhphan/go-database-proxy/internal/gateway/adapter/inbound/http"
	proxyNode "github.com/anthanhphan/go-database-proxy/internal/gateway/adapter/outbound/proxy_node"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/config"
	"github.com/anthanhphan/go-database-proxy/internal/gateway/service"
	"github.com/anthanhphan/go-database-proxy/pkg/chanpool"
	"github.com/anthanhphan/go-database-proxy/pkg/cluster"
	"github.com/anthanhphan/go-database-proxy/pkg/idgen"
	"github.com/anthanhphan/go-database-proxy/pkg/rebalance"
	"github.com/anthanhphan/gosdk/logger"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg    *config.Config
	server *httpHandler.Server
	node   *proxyNode.GrpcAdapter
	pools  *chanpool.Group
}

func New(configPath string) (*App, error) {
	// 1. Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Initialize logger
	logger.InitLogger(&cfg.Logger)

	// 3. Connection-ID generator. The Redis clock keeps IDs monotonic across
	// gateway restarts; without Redis the system clock is good enough.
	var clock idgen.Clock
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		clock = idgen.NewRedisClock(redisClient)
	}
	ids, err := idgen.New(cfg.App.NodeID, clock)
	if err != nil {
		return nil, fmt.Errorf("failed to init connection ID generator: %w", err)
	}

	// 4. Node directory from the resolved node list
	if len(cfg.Cluster.Nodes) == 0 {
		return nil, fmt.Errorf("no cluster nodes configured")
	}
	nodes := make([]*cluster.Node, 0, len(cfg.Cluster.Nodes))
	for _, nc := range cfg.Cluster.Nodes {
		nodes = append(nodes, cluster.NewNode(nc.Host, nc.Port, nc.Name))
	}
	dir := cluster.NewDirectory(nodes)

	// 5. Transport, routing state, health tracking
	nodeAdapter := proxyNode.NewGrpcAdapter()
	table := cluster.NewRoutingTable(dir)
	tracker := cluster.NewConnTracker()
	health := cluster.NewHealthTracker(dir, func(ctx context.Context, n *cluster.Node) error {
		return nodeAdapter.Ping(ctx, n.Addr())
	}, cfg.RetryDelay(), cfg.ProbeTimeout())

	// 6. Pools and post-recovery redistribution
	pools := chanpool.NewGroup()
	strategy := rebalance.NewMarkInvalid(tracker, pools, cfg.App.RebalanceFraction, cfg.App.MaxInvalidations)
	health.OnRecovered(func(recovered []*cluster.Node, healthyCount int) {
		strategy.Rebalance(recovered, healthyCount)
	})

	// 7. Services
	manager := service.NewConnManager(dir, table, health, nodeAdapter, cfg.EstablishTimeout())
	svc := service.NewSessionService(cfg, manager, nodeAdapter, pools, tracker, ids)

	// 8. HTTP server
	httpServer := httpHandler.NewServer(cfg, svc)

	return &App{
		cfg:    cfg,
		server: httpServer,
		node:   nodeAdapter,
		pools:  pools,
	}, nil
}

func (a *App) Run() error {
	logger.Infow("Proxy gateway starting", "addr", a.cfg.Server.Addr, "nodes", len(a.cfg.Cluster.Nodes))
	serverErrCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case sig := <-stop:
		logger.Infow("Shutdown signal received", "signal", sig.String())
	case err := <-serverErrCh:
		runErr = fmt.Errorf("http server failed: %w", err)
		logger.Errorw("Gateway server exited unexpectedly", "error", err.Error())
	}

	logger.Info("Shutting down gateway services")
	a.pools.Close()
	a.node.Close()
	if err := a.server.Stop(context.Background()); err != nil {
		logger.Errorw("Gateway shutdown error", "error", err.Error())
		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}
