package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/uberdeluxe/passenger-service/internal/pkg/database"
	"github.com/uberdeluxe/passenger-service/internal/pkg/middleware"
	"github.com/uberdeluxe/passenger-service/internal/pkg/models"
	httpHandler "github.com/uberdeluxe/passenger-service/services/passengers/handler/http"
)

// Handler coordinates the HTTP handlers for the passenger service
type Handler struct {
	passengerHandler *httpHandler.PassengerHandler
	redisClient      *database.RedisClient
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	passengerHandler *httpHandler.PassengerHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		passengerHandler: passengerHandler,
		redisClient:      redisClient,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all passenger routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	passengerGroup := e.Group("/passengers")
	passengerGroup.POST("/register", h.passengerHandler.RegisterPassenger)
	passengerGroup.GET("", h.passengerHandler.ListPassengers)
	passengerGroup.GET("/:id", h.passengerHandler.GetPassenger)
	passengerGroup.PATCH("/:id", h.passengerHandler.UpdatePassenger)
	passengerGroup.DELETE("/:id", h.passengerHandler.DeletePassenger)

	// Each quote costs one provider call, so the booking route is rate limited
	rideGroup := e.Group("/rides")
	if h.cfg.RateLimit.Enabled && h.redisClient != nil {
		rideGroup.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: h.redisClient.GetClient(),
			Key:         "ratelimit",
			Limit:       h.cfg.RateLimit.Limit,
			Period:      time.Duration(h.cfg.RateLimit.PeriodSeconds) * time.Second,
		}))
	}
	rideGroup.POST("/book", h.passengerHandler.BookRide)
}
