package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/evm-node/internal/model"
	"github.com/goodnatureofminers/evm-node/internal/node"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Role              string        `long:"role" env:"EVM_NODE_ROLE" description:"node role" choice:"dev" choice:"collator" choice:"full" default:"dev"`
	Sealing           model.Sealing `long:"sealing" env:"EVM_NODE_SEALING" description:"dev sealing mode: instant, manual or an interval in milliseconds" default:"instant"`
	SealQueueCapacity int           `long:"seal-queue-capacity" env:"EVM_NODE_SEAL_QUEUE_CAPACITY" description:"manual seal command queue capacity" default:"1000"`
	RelaySlot         time.Duration `long:"relay-slot" env:"EVM_NODE_RELAY_SLOT" description:"slot duration of the simulated relay chain driving the collator"`

	FilterRetainBlocks  uint64        `long:"filter-retain-blocks" env:"EVM_NODE_FILTER_RETAIN_BLOCKS" description:"blocks an installed filter survives (default 100)"`
	TxRetainBlocks      uint64        `long:"tx-retain-blocks" env:"EVM_NODE_TX_RETAIN_BLOCKS" description:"blocks a pending transaction stays cached (default 5)"`
	MappingPollInterval time.Duration `long:"mapping-poll" env:"EVM_NODE_MAPPING_POLL" description:"mapping sync fallback poll interval (default 6s)"`

	GasLimit  uint64 `long:"gas-limit" env:"EVM_NODE_GAS_LIMIT" description:"block gas limit of the development genesis (default 30000000)"`
	PoolLimit int    `long:"pool-limit" env:"EVM_NODE_POOL_LIMIT" description:"maximum number of pooled transactions" default:"8192"`
	Coinbase  string `long:"coinbase" env:"EVM_NODE_COINBASE" description:"beneficiary address of authored blocks"`

	ClickhouseDSN string `long:"clickhouse-dsn" env:"EVM_NODE_CLICKHOUSE_DSN" description:"ClickHouse DSN for block mappings, in memory when empty"`

	GRPCAddr       string        `long:"grpc-addr" env:"EVM_NODE_GRPC_ADDR" description:"gRPC health service address" default:":8000"`
	HTTPAddr       string        `long:"http-addr" env:"EVM_NODE_HTTP_ADDR" description:"HTTP control and metrics address" default:":8001"`
	HealthInterval time.Duration `long:"health-interval" env:"EVM_NODE_HEALTH_INTERVAL" description:"health status refresh interval" default:"1s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	nodeCfg, err := cfg.nodeConfig()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	n, err := node.New(ctx, nodeCfg, logger)
	if err != nil {
		logger.Fatal("failed to build node", zap.Error(err))
	}
	runErr := n.Run(ctx)
	if err := n.Close(); err != nil {
		logger.Error("failed to release node resources", zap.Error(err))
	}
	if runErr != nil {
		logger.Fatal("node stopped", zap.Error(runErr))
	}
	logger.Info("node stopped")
}

// nodeConfig overlays the flags on the node defaults. Zero values keep the default.
func (c config) nodeConfig() (node.Config, error) {
	out := node.DefaultConfig()
	out.Role = node.Role(c.Role)
	out.Sealing = c.Sealing
	out.SealQueueCapacity = c.SealQueueCapacity
	out.RelaySlot = c.RelaySlot
	out.PoolLimit = c.PoolLimit
	out.ClickhouseDSN = c.ClickhouseDSN
	out.GRPCAddr = c.GRPCAddr
	out.HTTPAddr = c.HTTPAddr
	out.HealthInterval = c.HealthInterval

	if c.FilterRetainBlocks != 0 {
		out.FilterRetainBlocks = c.FilterRetainBlocks
	}
	if c.TxRetainBlocks != 0 {
		out.TxRetainBlocks = c.TxRetainBlocks
	}
	if c.MappingPollInterval != 0 {
		out.MappingPollInterval = c.MappingPollInterval
	}
	if c.GasLimit != 0 {
		out.GasLimit = c.GasLimit
	}
	if c.Coinbase != "" {
		if !common.IsHexAddress(c.Coinbase) {
			return node.Config{}, fmt.Errorf("invalid coinbase %q", c.Coinbase)
		}
		out.Coinbase = common.HexToAddress(c.Coinbase)
	}
	return out, out.Validate()
}
