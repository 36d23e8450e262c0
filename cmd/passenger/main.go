package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uberdeluxe/passenger-service/internal/pkg/config"
	"github.com/uberdeluxe/passenger-service/internal/pkg/database"
	"github.com/uberdeluxe/passenger-service/internal/pkg/health"
	"github.com/uberdeluxe/passenger-service/internal/pkg/logger"
	"github.com/uberdeluxe/passenger-service/internal/pkg/middleware"
	natspkg "github.com/uberdeluxe/passenger-service/internal/pkg/nats"
	nrpkg "github.com/uberdeluxe/passenger-service/internal/pkg/newrelic"
	"github.com/uberdeluxe/passenger-service/internal/pkg/server"
	"github.com/uberdeluxe/passenger-service/services/passengers/gateway"
	"github.com/uberdeluxe/passenger-service/services/passengers/handler"
	httpHandler "github.com/uberdeluxe/passenger-service/services/passengers/handler/http"
	"github.com/uberdeluxe/passenger-service/services/passengers/repository"
	"github.com/uberdeluxe/passenger-service/services/passengers/usecase"
)

func main() {
	appName := "passenger-service"
	configs := config.InitConfig("config/passenger.env")

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	passengerRepo := repository.NewPassengerRepo(configs, postgresClient.GetDB())

	// Initialize gateway
	passengerGW := gateway.NewPassengerGW(natsClient, configs.DistanceMatrix)

	// Initialize usecase
	passengerUC := usecase.NewPassengerUC(passengerRepo, passengerGW, configs)

	// Initialize handlers
	passengerHandler := httpHandler.NewPassengerHandler(passengerUC)
	Handler := handler.NewHandler(passengerHandler, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresChecker(postgresClient),
		health.NewRedisChecker(redisClient),
		health.NewNATSChecker(natsClient),
	)

	Handler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error", logger.Err(err))
	}
}
