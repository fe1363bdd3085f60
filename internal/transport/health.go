package transport

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NodeServiceName is the health service name reported alongside the server-wide status.
const NodeServiceName = "evmnode.Node"

// HealthReporter mirrors the checker's state into a gRPC health server.
type HealthReporter struct {
	server   *health.Server
	checker  HealthChecker
	interval time.Duration
	logger   *zap.Logger
}

func NewHealthReporter(server *health.Server, checker HealthChecker, interval time.Duration, logger *zap.Logger) (*HealthReporter, error) {
	if server == nil {
		return nil, errors.New("health server is required")
	}
	if checker == nil {
		return nil, errors.New("health checker is required")
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &HealthReporter{
		server:   server,
		checker:  checker,
		interval: interval,
		logger:   logger.Named("health"),
	}, nil
}

// Run refreshes the health status every interval until ctx is done, then marks
// the node as not serving.
func (h *HealthReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	last := healthpb.HealthCheckResponse_UNKNOWN
	for {
		status := healthpb.HealthCheckResponse_NOT_SERVING
		if h.checker.Healthy() {
			status = healthpb.HealthCheckResponse_SERVING
		}
		if status != last {
			h.logger.Info("health changed", zap.Stringer("status", status))
			last = status
		}
		h.server.SetServingStatus("", status)
		h.server.SetServingStatus(NodeServiceName, status)

		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
