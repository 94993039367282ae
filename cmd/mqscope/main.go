package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/config"
	"github.com/mqscope/mqscope/internal/core/audit"
	"github.com/mqscope/mqscope/internal/core/engine"
	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/internal/core/mqi/ibmclient"
	"github.com/mqscope/mqscope/internal/core/secrets"
	"github.com/mqscope/mqscope/internal/persistdb"
	"github.com/mqscope/mqscope/pkg/logger"
	"github.com/mqscope/mqscope/pkg/metrics"
	"github.com/mqscope/mqscope/web"
)

var (
	VERSION = ""
)

// @title mqscope API
// @version 1.0
// @description API documentation for the mqscope queue-manager inspector
// @host localhost:3000
// @BasePath /api/
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env file, environment variables, or defaults
	cfg := config.LoadConfig(VERSION)

	// Initialize logger with configured log level
	logger.Init(cfg.LogLevel, cfg.LogFile)

	// Ensure the data directory exists
	dataDir := cfg.DataDir
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		log.Info().Msg("Data directory not found. Creating a new one...")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create data directory")
		}
	}

	// Verify if the database file exists
	log.Info().Msg("Searching for database...")
	dbPath := cfg.ConnectionsFile
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "mqscope.db")
	}
	persistdb.SetDbPath(dbPath)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Info().Msg("Database file not found. Creating a new one...")
		if err := persistdb.InitDB(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize database")
		}
		if err := persistdb.AddDefaultRoles(); err != nil {
			log.Error().Err(err).Msg("Failed to seed roles")
		}
		user := persistdb.UserCreateDTO{Username: cfg.Username, Password: cfg.Password, RoleID: persistdb.RoleAdmin}
		if err := persistdb.AddUser(user); err != nil {
			log.Error().Err(err).Msg("Failed to add user")
		}
		persistdb.CloseDB()
	}

	// Secrets store: file-backed when configured, in-memory otherwise
	var secretStore secrets.Store
	if cfg.SecretsFile != "" {
		fileStore, err := secrets.OpenFileStore(cfg.SecretsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open secrets file")
		}
		secretStore = fileStore
	} else {
		log.Warn().Msg("No secrets file configured; passwords will not survive restarts")
		secretStore = secrets.NewMemoryStore()
	}

	var collector metrics.Collector
	var promCollector *metrics.PrometheusCollector
	if cfg.EnablePrometheus {
		promCollector = metrics.NewPrometheusCollector()
		collector = promCollector
	} else {
		collector = metrics.NewNoopCollector()
	}

	auditLog := audit.NewLog(cfg.AuditCapacity)
	eng := engine.NewEngine(ibmclient.NewTransport(), secretStore, auditLog, collector, cfg.Actor)
	eng.SetTimeouts(time.Duration(cfg.ConnectTimeout)*time.Second, time.Duration(cfg.RefreshTimeout)*time.Second)

	// Re-register the connections saved from previous runs
	if err := persistdb.OpenDB(); err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	saved, err := persistdb.ListConnections()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load saved connections")
	}
	persistdb.CloseDB()
	for _, c := range saved {
		if err := eng.AddConnection(c); err != nil {
			log.Error().Err(err).Str("connection", c.ID).Msg("Failed to register saved connection")
			continue
		}
		log.Info().Str("connection", c.ID).Str("queue_manager", c.QueueManager).Msg("Registered saved connection")
	}

	service := management.NewService(eng, secretStore, persistdb.ConnectionStore{})

	// Conditionally start web server based on EnableWebAPI flag
	var app *fiber.App
	var logfile *os.File

	if cfg.EnableWebAPI {
		log.Info().Msg("Web API enabled - initializing web server...")

		webConfig := &web.Config{
			JwtKey:        cfg.JwtSecret,
			WebServerPort: cfg.WebPort,
			EnableSwagger: cfg.EnableSwagger,
			SwaggerPrefix: cfg.SwaggerPrefix,
			ApiPrefix:     cfg.ApiPrefix,
		}
		if promCollector != nil {
			webConfig.MetricsRegistry = promCollector.Registry()
		}

		webServer, err := web.NewWebServer(webConfig, service)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create web server")
		}

		// open "server.log" for appending
		logfile, err = os.OpenFile(filepath.Join(dataDir, "server.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open log file")
		}
		defer logfile.Close()

		app = webServer.SetupApp(logfile)

		// Start the web server in a goroutine
		go func() {
			addr := fmt.Sprintf(":%s", cfg.WebPort)
			log.Info().Str("addr", addr).Msg("Starting web server")
			if err := app.Listen(addr); err != nil {
				log.Fatal().Err(err).Msg("Web server error")
			}
		}()
	} else {
		log.Info().Msg("Web API disabled - skipping web server initialization")
	}

	// Handle OS signals for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Info().Msg("Shutting down mqscope...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Release every queue-manager connection before going down
	failures := eng.DisconnectAll(shutdownCtx)
	for id, err := range failures {
		log.Warn().Err(err).Str("connection", id).Msg("Failed to disconnect cleanly")
	}
	if len(failures) == 0 {
		log.Info().Msg("All queue-manager connections released")
	}

	// Shutdown the web server if it was started
	if app != nil {
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Fatal().Err(err).Msg("Failed to shutdown web server")
		}
		log.Info().Msg("Web server gracefully stopped")
	}
	log.Info().Msg("Server gracefully stopped")
	os.Exit(0) // if came so far it means the server has stopped gracefully
}
