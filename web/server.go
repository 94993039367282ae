package web

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mqscope/mqscope/internal/core/management"
	"github.com/mqscope/mqscope/web/docs"
	_ "github.com/mqscope/mqscope/web/docs"
	"github.com/mqscope/mqscope/web/handlers/api"
	"github.com/mqscope/mqscope/web/handlers/api_admin"
	"github.com/mqscope/mqscope/web/middleware"
)

type WebServer struct {
	config  *Config
	service management.InspectorService
}

type Config struct {
	JwtKey        string
	WebServerPort string
	EnableSwagger bool
	SwaggerPrefix string
	ApiPrefix     string

	// MetricsRegistry, when set, exposes /metrics scraping over it.
	MetricsRegistry *prometheus.Registry
}

func NewWebServer(config *Config, service management.InspectorService) (*WebServer, error) {
	return &WebServer{
		config:  config,
		service: service,
	}, nil
}

func (ws *WebServer) SetupApp(logFile *os.File) *fiber.App {
	app := ws.configServer(logFile)

	if ws.config.EnableSwagger {
		docs.SwaggerInfo.Host = "localhost:" + ws.config.WebServerPort
		log.Info().Str("path", ws.config.SwaggerPrefix+"/index.html").Msg("Swagger docs enabled")
		app.Get(ws.config.SwaggerPrefix+"/*", swagger.HandlerDefault)
	}

	if ws.config.MetricsRegistry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(ws.config.MetricsRegistry, promhttp.HandlerOpts{})))
	}

	ws.AddApi(app)
	ws.AddAdminApi(app)

	return app
}

func (ws *WebServer) AddApi(app *fiber.App) {
	// Public API routes
	app.Post(ws.config.ApiPrefix+"/login", func(c *fiber.Ctx) error {
		return api_admin.Login(c, ws.config.JwtKey)
	})

	// Protected API routes
	apiGrp := app.Group(ws.config.ApiPrefix)
	apiGrp.Use(middleware.JwtMiddleware(ws.config.JwtKey))

	// Connection routes

	apiGrp.Get("/connections", func(c *fiber.Ctx) error {
		return api.ListConnections(c, ws.service)
	})
	apiGrp.Post("/connections", func(c *fiber.Ctx) error {
		return api.CreateConnection(c, ws.service)
	})
	apiGrp.Get("/connections/:id", func(c *fiber.Ctx) error {
		return api.GetConnection(c, ws.service)
	})
	apiGrp.Delete("/connections/:id", func(c *fiber.Ctx) error {
		return api.DeleteConnection(c, ws.service)
	})
	apiGrp.Post("/connections/:id/connect", func(c *fiber.Ctx) error {
		return api.Connect(c, ws.service)
	})
	apiGrp.Post("/connections/:id/disconnect", func(c *fiber.Ctx) error {
		return api.Disconnect(c, ws.service)
	})

	// Queue routes

	apiGrp.Get("/connections/:id/queues", func(c *fiber.Ctx) error {
		return api.ListQueues(c, ws.service)
	})
	apiGrp.Post("/connections/:id/queues", func(c *fiber.Ctx) error {
		return api.CreateQueue(c, ws.service)
	})
	apiGrp.Post("/connections/:id/queues/refresh", func(c *fiber.Ctx) error {
		return api.RefreshQueues(c, ws.service)
	})
	apiGrp.Delete("/connections/:id/queues/:queue", func(c *fiber.Ctx) error {
		return api.DeleteQueue(c, ws.service)
	})
	apiGrp.Delete("/connections/:id/queues/:queue/content", func(c *fiber.Ctx) error {
		return api.PurgeQueue(c, ws.service)
	})

	// Message routes

	apiGrp.Get("/connections/:id/queues/:queue/messages", func(c *fiber.Ctx) error {
		return api.BrowseMessages(c, ws.service)
	})
	apiGrp.Post("/connections/:id/queues/:queue/messages", func(c *fiber.Ctx) error {
		return api.SendMessage(c, ws.service)
	})
	apiGrp.Delete("/connections/:id/queues/:queue/messages/:msgId", func(c *fiber.Ctx) error {
		return api.DeleteMessage(c, ws.service)
	})

	// Audit routes

	apiGrp.Get("/audit", func(c *fiber.Ctx) error {
		return api.ListAuditEntries(c, ws.service)
	})
	apiGrp.Post("/audit/export", func(c *fiber.Ctx) error {
		return api.ExportAudit(c, ws.service)
	})
}

func (ws *WebServer) AddAdminApi(app *fiber.App) {
	// Admin API routes
	apiAdminGrp := app.Group(ws.config.ApiPrefix + "/admin")
	apiAdminGrp.Use(middleware.JwtMiddleware(ws.config.JwtKey))
	apiAdminGrp.Get("/users", api_admin.GetUsers)
	apiAdminGrp.Post("/users", api_admin.AddUser)
}

func (ws *WebServer) configServer(logFile *os.File) *fiber.App {
	config := fiber.Config{
		Prefork:               false,
		AppName:               "mqscope-inspector",
		DisableStartupMessage: true,
	}
	app := fiber.New(config)

	// Enable CORS
	app.Use(middleware.CORSMiddleware())

	app.Use(fiberlogger.New(fiberlogger.Config{
		Output: logFile,
	}))
	return app
}
