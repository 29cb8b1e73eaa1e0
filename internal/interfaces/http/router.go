package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Employees-api/internal/application/assembler"
	"github.com/jhoicas/Employees-api/internal/application/usecase"
	"github.com/jhoicas/Employees-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName    string
	Storage    string
	PublicURL  string
	EmployeeUC *usecase.EmployeeUseCase
	ManagerUC  *usecase.ManagerUseCase
	Pinger     Pinger
	Logger     *logger.Logger
	Metrics    *metrics.Metrics    // opcional
	Gatherer   prometheus.Gatherer // opcional; expone /metrics
}

// NewApp crea la aplicación Fiber con el ErrorHandler HAL y recuperación de panics.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log),
	})
	app.Use(recover.New())
	return app
}

// Router registra middlewares y rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		app.Use(Metrics(deps.Metrics))
	}

	app.Get("/health", Health(deps.AppName, deps.Storage, deps.Pinger, deps.Logger))
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	app.Get("/", Root(deps.PublicURL))

	employeeHandler := NewEmployeeHandler(
		deps.EmployeeUC,
		assembler.NewEmployeeAssembler(),
		assembler.NewEmployeeWithManagerAssembler(),
		deps.PublicURL,
	)
	managerHandler := NewManagerHandler(deps.ManagerUC, assembler.NewManagerAssembler(), deps.PublicURL)

	// /employees/detailed debe registrarse antes que /employees/:id
	app.Get("/employees", employeeHandler.FindAll)
	app.Get("/employees/detailed", employeeHandler.FindAllDetailed)
	app.Get("/employees/:id", employeeHandler.FindOne)
	app.Get("/employees/:id/detailed", employeeHandler.FindDetailed)
	app.Get("/employees/:id/manager", managerHandler.FindByEmployee)

	app.Get("/managers", managerHandler.FindAll)
	app.Get("/managers/:id", managerHandler.FindOne)
	app.Get("/managers/:id/employees", employeeHandler.FindByManager)
}
