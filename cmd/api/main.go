package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/visionlane/vision-board/internal/application"
	"github.com/visionlane/vision-board/internal/application/analysis"
	"github.com/visionlane/vision-board/internal/application/traversal"
	appvb "github.com/visionlane/vision-board/internal/application/visionboard"
	"github.com/visionlane/vision-board/internal/config"
	"github.com/visionlane/vision-board/internal/domain/faults"
	"github.com/visionlane/vision-board/internal/domain/questions"
	"github.com/visionlane/vision-board/internal/domain/sessions"
	openaiclient "github.com/visionlane/vision-board/internal/infra/ai/openai"
	mysqlp "github.com/visionlane/vision-board/internal/infra/db/mysql"
	postgresp "github.com/visionlane/vision-board/internal/infra/db/postgres"
	"github.com/visionlane/vision-board/internal/infra/httpserver"
	"github.com/visionlane/vision-board/internal/infra/mail/resend"
	minioStore "github.com/visionlane/vision-board/internal/infra/storage"
	"github.com/visionlane/vision-board/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// load + validate question catalog
	catalog, err := questions.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}
	log.Printf("catalog loaded: %d questions", catalog.Len())

	ctx := context.Background()

	// connect database (driver per config)
	var (
		db          *sql.DB
		sessionRepo sessions.Repository
		faultRepo   faults.Repository
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		sessionRepo = postgresp.NewSessionRepository(db)
		faultRepo = postgresp.NewFaultRepository(db)
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		sessionRepo = mysqlp.NewSessionRepository(db)
		faultRepo = mysqlp.NewFaultRepository(db)
	}
	defer db.Close()

	// init minio (optional report archive)
	var archive appvb.ArchiveStore
	healthCheckers := map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
	}
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			log.Fatalf("minio init error: %v", err)
		}
		archive = store
		healthCheckers["storage"] = &middleware.PingHealthChecker{Target: store}
	}

	// init collaborators
	aiClient := openaiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.ComprehensiveModel)
	mailer := resend.NewClient(cfg.Resend.APIKey, cfg.Resend.From)

	// init services
	svc := &appvb.Service{
		Repo:     sessionRepo,
		Analysis: analysis.NewService(aiClient, faultRepo),
		Mailer:   mailer,
		Archive:  archive,
		Faults:   faultRepo,
		Clock:    application.SystemClock{},
	}

	// live traversal sessions
	engine := traversal.NewEngine(catalog)
	registry := httpserver.NewRegistry(engine)

	// init router
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 5))

	mux.Get("/health", middleware.HealthHandler(healthCheckers))
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	adminAuth := middleware.APIKeyAuth(cfg.AdminKeys)
	mux.Mount("/", httpserver.NewRouter(svc, registry, adminAuth))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // report generation waits on the AI call
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
