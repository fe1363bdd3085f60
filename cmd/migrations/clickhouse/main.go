package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	_ "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN string `long:"clickhouse-dsn" env:"EVM_NODE_CLICKHOUSE_DSN" default:"clickhouse://localhost:9000/default" description:"ClickHouse DSN holding the block mapping table"`
	MigrationsDir string `long:"migrations-dir" env:"EVM_NODE_MIGRATIONS_DIR" default:"migrations/clickhouse" description:"Directory with mapping schema migrations"`
	Direction     string `long:"direction" env:"EVM_NODE_MIGRATIONS_DIRECTION" default:"up" choice:"up" choice:"down" description:"Apply or roll back migrations"`
	Steps         int    `long:"steps" env:"EVM_NODE_MIGRATIONS_STEPS" default:"0" description:"Number of migrations to move; 0 moves all the way"`
}

var errNotDirectory = errors.New("not a directory")

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migrateSchema(ctx, cfg, logger); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}
}

func sourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat migrations dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", abs, errNotDirectory)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// steps converts the direction and count into the signed form migrate.Steps expects.
// A zero result means migrate to the end in the chosen direction.
func steps(cfg config) (int, error) {
	if cfg.Steps < 0 {
		return 0, fmt.Errorf("steps must not be negative, got %d", cfg.Steps)
	}
	if cfg.Direction == "down" {
		return -cfg.Steps, nil
	}
	return cfg.Steps, nil
}

func migrateSchema(ctx context.Context, cfg config, logger *zap.Logger) error {
	n, err := steps(cfg)
	if err != nil {
		return err
	}
	src, err := sourceURL(cfg.MigrationsDir)
	if err != nil {
		return err
	}

	m, err := migrate.New(src, cfg.ClickhouseDSN)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			logger.Warn("close migrate", zap.Error(err))
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			m.GracefulStop <- true
		case <-done:
		}
	}()

	switch {
	case n != 0:
		err = m.Steps(n)
	case cfg.Direction == "down":
		err = m.Down()
	default:
		err = m.Up()
	}
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("mapping schema already current", zap.String("direction", cfg.Direction))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Direction, err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Info("mapping schema migrated",
		zap.String("direction", cfg.Direction),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
