// Package node wires the chain backend, block production and maintenance tasks
// into a supervised node process.
package node

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/evm-node/internal/authorship"
	"github.com/goodnatureofminers/evm-node/internal/chain"
	"github.com/goodnatureofminers/evm-node/internal/clock"
	"github.com/goodnatureofminers/evm-node/internal/collation"
	"github.com/goodnatureofminers/evm-node/internal/devchain"
	"github.com/goodnatureofminers/evm-node/internal/eviction"
	"github.com/goodnatureofminers/evm-node/internal/mappingsync"
	"github.com/goodnatureofminers/evm-node/internal/metrics"
	"github.com/goodnatureofminers/evm-node/internal/precompile"
	"github.com/goodnatureofminers/evm-node/internal/repository/clickhouse"
	"github.com/goodnatureofminers/evm-node/internal/sealing"
	"github.com/goodnatureofminers/evm-node/internal/supervisor"
	"github.com/goodnatureofminers/evm-node/internal/transport"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
)

type mappingStore interface {
	mappingsync.Store
	transport.MappingSource
}

// Node is a configured node ready to run.
type Node struct {
	cfg    Config
	logger *zap.Logger

	chain       *devchain.Chain
	client      *chain.ObservedClient
	pool        *devchain.Pool
	filters     *eviction.FilterPool
	pending     *eviction.PendingTransactions
	precompiles *precompile.Set
	store       mappingStore
	supervisor  *supervisor.Supervisor

	trigger sealing.Trigger
	manual  *sealing.Manual
	loop    *authorship.Loop
	relay   *devchain.Relay

	closers []func() error
}

// New builds the node. Configuration problems are returned before anything starts.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	n := &Node{
		cfg:     cfg,
		logger:  logger.With(zap.String("role", string(cfg.Role))),
		chain:   devchain.NewChain(devchain.Genesis(cfg.GasLimit)),
		pool:    devchain.NewPool(cfg.PoolLimit, cfg.GasLimit),
		filters: eviction.NewFilterPool(),
		pending: eviction.NewPendingTransactions(),
	}
	n.chain.OnImport(n.pool.Included)
	n.client = chain.NewObservedClient(n.chain, metrics.NewChainClient("devchain"))
	n.precompiles = precompile.NewSet(devchain.NewDispatcher(n.pool, n.logger))
	n.closers = append(n.closers, closer(n.pool.Close), closer(n.chain.Close))

	sup, err := supervisor.New(metrics.NewSupervisor(), n.logger)
	if err != nil {
		return nil, err
	}
	n.supervisor = sup

	if err := n.openStore(ctx); err != nil {
		n.Close()
		return nil, err
	}
	if err := n.addMaintenance(); err != nil {
		n.Close()
		return nil, err
	}
	if err := n.addBlockProduction(ctx); err != nil {
		n.Close()
		return nil, err
	}
	if err := n.addTransport(); err != nil {
		n.Close()
		return nil, err
	}
	return n, nil
}

func (n *Node) openStore(ctx context.Context) error {
	if n.cfg.ClickhouseDSN == "" {
		n.logger.Info("block mappings kept in memory")
		n.store = mappingsync.NewMemoryStore()
		return nil
	}

	repo, err := clickhouse.NewRepository(n.cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	if err := repo.Ping(ctx); err != nil {
		_ = repo.Close()
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	n.store = repo
	n.closers = append(n.closers, repo.Close)
	return nil
}

// addMaintenance registers the tasks every role runs: registry eviction, the
// pending transaction tracker and mapping sync.
func (n *Node) addMaintenance() error {
	evictionMetrics := metrics.NewEviction()

	filterTask, err := eviction.NewTask("filter_eviction", n.filters.Registry, n.cfg.FilterRetainBlocks, n.client, evictionMetrics, n.logger)
	if err != nil {
		return err
	}
	pendingTask, err := eviction.NewTask("pending_eviction", n.pending.Registry, n.cfg.TxRetainBlocks, n.client, evictionMetrics, n.logger)
	if err != nil {
		return err
	}
	tracker, err := eviction.NewPendingTracker(n.pending, n.pool, n.client, n.logger)
	if err != nil {
		return err
	}
	worker, err := mappingsync.NewWorker(n.client, n.store, metrics.NewMappingSync(), n.cfg.MappingPollInterval, n.logger)
	if err != nil {
		return err
	}

	n.supervisor.Add(filterTask.Name(), filterTask)
	n.supervisor.Add(pendingTask.Name(), pendingTask)
	n.supervisor.Add("pending_tracker", tracker)
	n.supervisor.Add("mapping_sync", worker)
	return nil
}

func (n *Node) addBlockProduction(ctx context.Context) error {
	builder := devchain.NewBuilder(n.cfg.Coinbase, clock.System{}, n.logger)

	switch n.cfg.Role {
	case RoleDev:
		trigger, err := sealing.New(ctx, n.cfg.Sealing, n.pool, n.cfg.SealQueueCapacity)
		if err != nil {
			return err
		}
		n.trigger = trigger
		switch t := trigger.(type) {
		case *sealing.Manual:
			n.manual = t
			n.closers = append(n.closers, closer(t.Close))
		case *sealing.Interval:
			n.closers = append(n.closers, closer(t.Stop))
		}

		loop, err := authorship.NewLoop(trigger, n.client, n.pool, builder, metrics.NewAuthorship(n.cfg.Sealing.String()), n.logger)
		if err != nil {
			return err
		}
		n.loop = loop
		n.supervisor.Add("authorship", loop)
		n.logger.Info("authoring with local sealing", zap.Stringer("sealing", n.cfg.Sealing))
	case RoleCollator:
		relay, err := devchain.NewRelay(n.cfg.RelaySlot, clock.System{}, n.logger)
		if err != nil {
			return err
		}
		n.relay = relay
		proposer := authorship.NewProposer(n.client, n.pool, builder)
		collator, err := collation.NewCollator(relay, relay, proposer, n.client, relay, metrics.NewCollation(), n.logger)
		if err != nil {
			return err
		}
		n.supervisor.Add("collator", collator)
		n.logger.Info("collating on relay slots", zap.Duration("slot", n.cfg.RelaySlot))
	case RoleFull:
		n.logger.Info("block authoring disabled")
	}
	return nil
}

func (n *Node) addTransport() error {
	healthServer := health.NewServer()
	reporter, err := transport.NewHealthReporter(healthServer, n.supervisor, n.cfg.HealthInterval, n.logger)
	if err != nil {
		return err
	}
	n.supervisor.Add("health", reporter)

	if n.cfg.GRPCAddr != "" {
		server := transport.NewGRPCServer(healthServer, n.logger)
		addr := n.cfg.GRPCAddr
		n.supervisor.Add("grpc", supervisor.RunnerFunc(func(ctx context.Context) error {
			return transport.ServeGRPC(ctx, addr, server, n.logger)
		}))
	}
	if n.cfg.HTTPAddr == "" {
		return nil
	}

	// A nil *sealing.Manual must not reach the handler as a non-nil interface.
	var sealer transport.SealSubmitter
	if n.manual != nil {
		sealer = n.manual
	}
	control, err := transport.NewControlHandler(sealer, n, n.precompiles, n.logger)
	if err != nil {
		return err
	}
	chainHandler, err := transport.NewChainHandler(n.pool, n.client, n.filters, n.pending, n.store, n.logger)
	if err != nil {
		return err
	}
	gw := gwruntime.NewServeMux()
	if err := control.Register(gw); err != nil {
		return err
	}
	if err := chainHandler.Register(gw); err != nil {
		return err
	}

	handler := transport.NewHTTPHandler(gw)
	addr := n.cfg.HTTPAddr
	n.supervisor.Add("http", supervisor.RunnerFunc(func(ctx context.Context) error {
		return transport.ServeHTTP(ctx, addr, handler, n.logger)
	}))
	return nil
}

// Run runs every task until ctx is done or one of them exits.
func (n *Node) Run(ctx context.Context) error {
	n.logger.Info("node starting",
		zap.Uint64("filter_retain_blocks", n.cfg.FilterRetainBlocks),
		zap.Uint64("tx_retain_blocks", n.cfg.TxRetainBlocks),
		zap.Duration("mapping_poll_interval", n.cfg.MappingPollInterval),
	)
	return n.supervisor.Run(ctx)
}

func (n *Node) Status(ctx context.Context) (transport.NodeStatus, error) {
	best, err := n.client.BestBlock(ctx)
	if err != nil {
		return transport.NodeStatus{}, err
	}
	status := transport.NodeStatus{
		Role:      string(n.cfg.Role),
		Best:      best,
		Finalized: n.chain.Finalized(),
		Healthy:   n.supervisor.Healthy(),
	}
	if n.loop != nil {
		status.Sealing = n.cfg.Sealing.String()
		status.Authorship = n.loop.State().String()
	}
	return status, nil
}

// Close releases the node's resources. It is safe to call after Run returns.
func (n *Node) Close() error {
	var errs []error
	for i := len(n.closers) - 1; i >= 0; i-- {
		if err := n.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	n.closers = nil
	return errors.Join(errs...)
}

func closer(f func()) func() error {
	return func() error {
		f()
		return nil
	}
}
