package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/ashworthrenovations/ashworth-api/config"
	"github.com/ashworthrenovations/ashworth-api/internal/cache"
	"github.com/ashworthrenovations/ashworth-api/internal/content"
	"github.com/ashworthrenovations/ashworth-api/internal/handlers"
	"github.com/ashworthrenovations/ashworth-api/internal/middleware"
	"github.com/ashworthrenovations/ashworth-api/internal/repository"
	"github.com/ashworthrenovations/ashworth-api/internal/services"
	"github.com/ashworthrenovations/ashworth-api/internal/validation"
	"github.com/ashworthrenovations/ashworth-api/pkg/db"
	"github.com/ashworthrenovations/ashworth-api/pkg/email"
	"github.com/ashworthrenovations/ashworth-api/pkg/httpclient"
	"github.com/ashworthrenovations/ashworth-api/pkg/logger"
	"github.com/ashworthrenovations/ashworth-api/pkg/metrics"
	"github.com/ashworthrenovations/ashworth-api/pkg/profiling"
	"github.com/ashworthrenovations/ashworth-api/pkg/storage"
	"github.com/ashworthrenovations/ashworth-api/pkg/tracing"
)

// registerAPIRoutes mounts the public v1 surface
func registerAPIRoutes(
	group *gin.RouterGroup,
	generalRateLimiter, leadRateLimiter *middleware.RateLimiter,
	leadHandler *handlers.LeadHandler,
	seoHandler *handlers.SeoHandler,
	logsHandler *handlers.LogsHandler,
) {
	// the lead form accepts up to ten photos, so its body cap is generous
	group.POST("/leads", leadRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(60*1024*1024), leadHandler.SubmitLead)

	group.GET("/sitemap", generalRateLimiter.Middleware(), seoHandler.GetSitemap)
	group.GET("/locations", generalRateLimiter.Middleware(), seoHandler.GetLocations)
	group.GET("/locations/:slug", generalRateLimiter.Middleware(), seoHandler.GetLocation)
	group.GET("/reviews", generalRateLimiter.Middleware(), seoHandler.GetReviews)
	group.GET("/gallery", generalRateLimiter.Middleware(), seoHandler.GetGallery)

	group.POST("/logs", generalRateLimiter.Middleware(), middleware.BodySizeLimitMiddleware(1*1024*1024), logsHandler.ReceiveFrontendLogs)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Ashworth Renovations API",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
	)

	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.CollectorEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	profilerStop, err := profiling.InitProfiler(
		cfg.Profiling,
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
	)
	if err != nil {
		logger.Fatal("Failed to initialize profiler", zap.Error(err))
	}
	defer profilerStop()

	metrics.RecordInfrastructureMetrics()

	pool, err := db.NewPool(context.Background(), db.PoolConfig{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		logger.Fatal("Failed to initialize database connection pool", zap.Error(err))
	}
	defer pool.Close()

	// NOTE: migrations run separately via the migrate command before startup

	var storageClient storage.ClientInterface
	if cfg.Storage.AccessKeyID != "" && cfg.Storage.SecretAccessKey != "" {
		client, err := storage.NewClient(
			cfg.Storage.AccessKeyID,
			cfg.Storage.SecretAccessKey,
			cfg.Storage.BucketName,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to initialize storage client", zap.Error(err))
		}
		storageClient = client
	} else {
		logger.Warn("Object storage not configured, lead photos will not be stored")
	}

	var emailSender email.Sender
	if cfg.SendGrid.APIKey != "" {
		emailSender = email.NewSendGridSender(email.SendGridConfig{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
		})
	} else {
		logger.Warn("SendGrid not configured, lead notifications will be logged only")
		emailSender = &email.StubSender{}
	}

	httpClient := httpclient.NewStandardClient()

	leadRepo := repository.NewLeadRepository(pool)

	leadService := services.NewLeadService(leadRepo, emailSender, storageClient, nil, cfg, httpClient)
	seoService := services.NewSeoService(cfg)

	// warm the SEO artifact cache before accepting traffic
	seoCache := cache.NewSeoCache(seoService, cfg.Cache.SeoTTLSeconds)
	seoService.SetCache(seoCache)
	slugs := make([]string, 0)
	for _, loc := range content.Locations() {
		slugs = append(slugs, loc.Slug)
	}
	if err := seoCache.Initialize(slugs); err != nil {
		logger.Fatal("Failed to initialize SEO cache", zap.Error(err))
	}

	leadHandler := handlers.NewLeadHandler(leadService)
	seoHandler := handlers.NewSeoHandler(seoService)
	adminHandler := handlers.NewAdminHandler(leadService)
	logsHandler := handlers.NewLogsHandler(cfg.Logging.Dir)
	healthHandler := handlers.NewHealthHandler(seoCache.IsReady, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return pool.Ping(ctx)
	})

	gin.SetMode(cfg.Server.GinMode)
	validation.RegisterCustomValidators()

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminAuthHeader, "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	leadRateLimiter := middleware.NewRateLimiter(2, 5)        // 2 req/sec, burst of 5 (spam protection)

	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	registerAPIRoutes(v1, generalRateLimiter, leadRateLimiter, leadHandler, seoHandler, logsHandler)

	internal := router.Group("/api/v1/internal")
	internal.Use(generalRateLimiter.Middleware(), middleware.AdminAuthMiddleware(cfg.Auth.AdminAPIToken))
	internal.GET("/leads", adminHandler.ListLeads)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
