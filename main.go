package main

import (
	"log"
	"time"

	"ticketing/config"
	"ticketing/internal/handler"
	appMw "ticketing/internal/middleware"
	"ticketing/internal/repository"
	"ticketing/internal/service"
	"ticketing/pkg/cache"
	"ticketing/pkg/database"
	"ticketing/pkg/rabbitmq"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Notifications are best-effort: the service runs without RabbitMQ.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Printf("rabbitmq unavailable, notifications disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	rdb := cache.NewRedisClient(cfg.RedisAddr)
	if rdb == nil {
		log.Printf("redis unavailable at %s, rate limiting disabled", cfg.RedisAddr)
	}

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Services
	eventSvc := service.NewEventService(eventRepo, publisher)
	bookingSvc := service.NewBookingService(bookingRepo, eventRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = appMw.ErrorHandler
	e.Validator = handler.NewRequestValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "ticketing"})
	})

	limiter := appMw.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute)

	handler.NewEventHandler(eventSvc).RegisterRoutes(e.Group("/api/v1/events"))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, limiter)

	log.Printf("Ticketing service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
