package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/http/middleware"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/ratelimit"
	"github.com/GLITCH-in-MATRIX9/VDS-Vikram-Design-Studio--sub000/internal/service"
)

// RouteDeps carries the collaborators the route table needs.
type RouteDeps struct {
	DB           *sql.DB
	Projects     service.ProjectService
	Pages        service.PageService
	Applications service.ApplicationService
	Limiter      ratelimit.CounterStore
	LimiterMax   int
	LimiterWin   time.Duration
	Registry     *prometheus.Registry
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; business logic lives in the services.
func RegisterRoutes(app *fiber.App, deps RouteDeps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", SwaggerUI())

	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Admin-edited portfolio projects
	app.Get("/projects", ListProjects(deps.Projects))
	app.Post("/projects", CreateProject(deps.Projects))
	app.Get("/projects/:id", GetProject(deps.Projects))
	app.Put("/projects/:id", UpdateProject(deps.Projects))
	app.Delete("/projects/:id", DeleteProject(deps.Projects))

	// Page singletons keyed by slug (about, studio, team)
	app.Get("/pages/:slug", GetPage(deps.Pages))
	app.Put("/pages/:slug", UpsertPage(deps.Pages))
	app.Delete("/pages/:slug", DeletePage(deps.Pages))

	// Careers: submission is public and rate-limited; the rest is admin
	submit := SubmitApplication(deps.Applications)
	if deps.Limiter != nil {
		app.Post("/applications", middleware.RateLimit(deps.Limiter, deps.LimiterMax, deps.LimiterWin), submit)
	} else {
		app.Post("/applications", submit)
	}
	app.Get("/applications", ListApplications(deps.Applications))
	app.Get("/applications/:id", GetApplication(deps.Applications))
	app.Delete("/applications/:id", DeleteApplication(deps.Applications))
}
