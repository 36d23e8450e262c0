package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uberdeluxe/passenger-service/internal/pkg/database"
	"github.com/uberdeluxe/passenger-service/internal/pkg/nats"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// Checker verifies connectivity to one external dependency
type Checker interface {
	Name() string
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

func (p *PostgresChecker) Name() string { return "postgres" }

func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

func (r *RedisChecker) Name() string { return "redis" }

func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// NATSChecker checks NATS connection health
type NATSChecker struct {
	client *nats.Client
}

func NewNATSChecker(client *nats.Client) *NATSChecker {
	return &NATSChecker{client: client}
}

func (n *NATSChecker) Name() string { return "nats" }

func (n *NATSChecker) CheckHealth(ctx context.Context) error {
	if n.client == nil {
		return nil
	}
	if conn := n.client.GetConn(); conn == nil || !conn.IsConnected() {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "NATS not connected")
	}
	return nil
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := BuildInfo{
		Version:     "development",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}

	return func(c echo.Context) error {
		buildInfo.ServerTime = time.Now()
		return c.JSON(http.StatusOK, buildInfo)
	}
}

// NewDetailedHandler creates a handler that pings every registered dependency
func NewDetailedHandler(checkers ...Checker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				deps[checker.Name()] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				deps[checker.Name()] = "ok"
			}
		}

		return c.JSON(status, map[string]interface{}{
			"status":       http.StatusText(status),
			"dependencies": deps,
		})
	}
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers ...Checker) {
	e.GET("/ping", NewPingHandler(serviceName))

	// Kubernetes standard health endpoints
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/ready", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/detailed", NewDetailedHandler(checkers...))
}
