package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jdvanegasm/proticket/internal/auth"
	"github.com/jdvanegasm/proticket/internal/handler"
	"github.com/jdvanegasm/proticket/internal/repository"
	"github.com/jdvanegasm/proticket/internal/service"
	"github.com/jdvanegasm/proticket/pkg/config"
	"github.com/jdvanegasm/proticket/pkg/database"
	"github.com/jdvanegasm/proticket/pkg/logger"
	"github.com/jdvanegasm/proticket/pkg/redis"
	"github.com/jdvanegasm/proticket/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.Environment,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting ProTicket business service...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection (optional, stats caching is disabled without it)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := &redis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		}
		redisClient, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed (stats caching disabled): %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
		}
	}

	// Wire repositories
	pool := db.Pool()
	organizerRepo := repository.NewPostgresOrganizerRepository(pool)
	eventRepo := repository.NewPostgresEventRepository(pool)
	orderRepo := repository.NewPostgresOrderRepository(pool)
	paymentRepo := repository.NewPostgresPaymentRepository(pool)
	ticketRepo := repository.NewPostgresTicketRepository(pool)

	// Wire services
	statsCache := service.NewEventStatsCache(redisClient, cfg.Redis.StatsTTL)
	organizerService := service.NewOrganizerService(organizerRepo)
	eventService := service.NewEventService(eventRepo, organizerRepo, statsCache)
	orderService := service.NewOrderService(orderRepo, statsCache)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo)
	ticketService := service.NewTicketService(ticketRepo, orderRepo)

	// Wire handlers
	organizerHandler := handler.NewOrganizerHandler(organizerService)
	eventHandler := handler.NewEventHandler(eventService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Token verification accepts internal and Supabase credentials
	verifier := auth.NewChainVerifier(
		auth.NewInternalVerifier(cfg.JWT.Secret, cfg.JWT.Issuer),
		auth.NewSupabaseVerifier(cfg.JWT.SupabaseSecret),
	)
	requireAuth := auth.Middleware(verifier)

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware())
	}

	// Health check endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	{
		organizers := v1.Group("/organizers")
		{
			organizers.GET("", organizerHandler.List)
			organizers.GET("/:id", organizerHandler.GetByID)
			organizers.GET("/user/:user_id", organizerHandler.GetByUserID)

			protected := organizers.Group("", requireAuth)
			{
				protected.POST("", organizerHandler.Create)
				protected.PUT("/:id", organizerHandler.Update)
				protected.DELETE("/:id", organizerHandler.Delete)
			}
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.GetByID)

			protected := events.Group("", requireAuth)
			{
				protected.GET("/creator/:user_id", eventHandler.ListByCreator)
				protected.POST("", eventHandler.Create)
				protected.PUT("/:id", eventHandler.Update)
				protected.DELETE("/:id", eventHandler.Delete)
			}
		}

		orders := v1.Group("/orders", requireAuth)
		{
			orders.POST("", orderHandler.Create)
			orders.GET("/:id", orderHandler.GetByID)
			orders.GET("/user/:user_id", orderHandler.ListByBuyer)
			orders.GET("/organizer/:user_id", orderHandler.ListByOrganizer)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		payments := v1.Group("/payments", requireAuth)
		{
			payments.POST("", paymentHandler.Create)
			payments.GET("/:id", paymentHandler.GetByID)
			payments.PUT("/:id/status", paymentHandler.UpdateStatus)
		}

		tickets := v1.Group("/tickets")
		{
			// Scan-time lookup stays public
			tickets.GET("/code/:code", ticketHandler.GetByCode)

			protected := tickets.Group("", requireAuth)
			{
				protected.POST("", ticketHandler.Create)
				protected.GET("/:id", ticketHandler.GetByID)
				protected.GET("/order/:order_id", ticketHandler.ListByOrder)
			}
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("ProTicket listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
