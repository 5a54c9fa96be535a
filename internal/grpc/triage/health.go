package triage

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/cache"
	"github.com/RanaNomiRana/AFA-backend/internal/infrastructure/database"
)

const serviceName = "afa.v1.TriageService"

// RegisterHealthServer registers the gRPC health check service and keeps
// its status in sync with the database and cache connections.
func RegisterHealthServer(ctx context.Context, grpcServer *grpc.Server, db *database.PostgresDB, c *cache.RedisCache) {
	healthServer := health.NewServer()

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				healthServer.Shutdown()
				return
			case <-ticker.C:
			}

			healthy := true
			if db != nil {
				if err := db.Ping(ctx); err != nil {
					healthy = false
				}
			}
			if c != nil {
				if err := c.Ping(ctx); err != nil {
					healthy = false
				}
			}

			status := grpc_health_v1.HealthCheckResponse_SERVING
			if !healthy {
				status = grpc_health_v1.HealthCheckResponse_NOT_SERVING
			}
			healthServer.SetServingStatus("", status)
			healthServer.SetServingStatus(serviceName, status)
		}
	}()

	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
}
