package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/Employees-api/internal/application/usecase"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
	"github.com/jhoicas/Employees-api/internal/infrastructure/memory"
	"github.com/jhoicas/Employees-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Employees-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Employees-api/internal/interfaces/http"
	"github.com/jhoicas/Employees-api/pkg/config"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	ctx := context.Background()

	var (
		employeeRepo repository.EmployeeRepository
		managerRepo  repository.ManagerRepository
		pinger       httpRouter.Pinger
	)
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		employeeRepo = postgres.NewEmployeeRepository(pool, appMetrics)
		managerRepo = postgres.NewManagerRepository(pool, appMetrics)
		pinger = pool
	default:
		store := memory.NewSeededStore()
		employeeRepo = store.Employees()
		managerRepo = store.Managers()
		pinger = store
	}

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    "Employees HAL API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:    cfg.App.Name,
		Storage:    cfg.Storage.Driver,
		PublicURL:  cfg.HTTP.PublicURL,
		EmployeeUC: usecase.NewEmployeeUseCase(employeeRepo, managerRepo),
		ManagerUC:  usecase.NewManagerUseCase(managerRepo, employeeRepo),
		Pinger:     pinger,
		Logger:     log,
		Metrics:    appMetrics,
		Gatherer:   reg,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
