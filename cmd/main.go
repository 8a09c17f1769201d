package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"maitred/internal/api"
	"maitred/internal/chat"
	"maitred/internal/config"
	"maitred/internal/database"
	"maitred/internal/llm"
	"maitred/internal/monitoring"
	"maitred/internal/store"
	"maitred/internal/tools"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}
	if cfg.Server.JWTSecret == "" {
		log.Println("Warning: no JWT secret configured (MAITRED_JWT_SECRET), all sessions will be treated as external")
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	model, err := llm.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	metrics := monitoring.NewMetrics()
	monitor := monitoring.NewMonitor()

	registry := tools.New(store.New(db),
		tools.WithMaxResults(cfg.Tools.MaxResults),
		tools.WithMetrics(metrics),
	)

	chatSvc := chat.NewService(model, registry,
		chat.WithTemperature(cfg.LLM.Temperature),
		chat.WithMaxToolRounds(cfg.Chat.MaxToolRounds),
		chat.WithHistoryLimit(cfg.Chat.HistoryLimit),
		chat.WithMetrics(metrics),
		chat.WithMonitor(monitor),
	)

	apiServer := api.NewServer(chatSvc, registry, monitor, cfg.Server.JWTSecret)

	go startMetricsServer(cfg.Server.MetricsPort, metrics)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: apiServer.Router,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

func startMetricsServer(port int, metrics *monitoring.Metrics) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
