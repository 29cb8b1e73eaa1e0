package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Employees-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Employees-api/pkg/config"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

type (
	connectFunc func(context.Context, config.DBConfig) (*pgxpool.Pool, error)
	migrateFunc func(context.Context, *pgxpool.Pool) error
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	if err := run(context.Background(), cfg.DB, postgres.NewPool, postgres.Migrate); err != nil {
		log.Fatal().Err(err).Msg("migrator")
	}
	log.Info().Msg("migraciones aplicadas")
}

// run conecta y aplica las migraciones. Cualquier error termina el proceso con código distinto de cero.
func run(ctx context.Context, cfg config.DBConfig, connect connectFunc, migrate migrateFunc) error {
	pool, err := connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	if err := migrate(ctx, pool); err != nil {
		return fmt.Errorf("migraciones: %w", err)
	}
	return nil
}
