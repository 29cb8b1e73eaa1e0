package main

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Employees-api/pkg/config"
)

// lazyPool crea un pool sin abrir conexiones.
func lazyPool(ctx context.Context, _ config.DBConfig) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, "postgres://u:p@127.0.0.1:1/x?sslmode=disable")
}

func TestRun_FallaMigracionDevuelveError(t *testing.T) {
	migrate := func(context.Context, *pgxpool.Pool) error { return assert.AnError }

	err := run(context.Background(), config.DBConfig{}, lazyPool, migrate)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "migraciones")
}

func TestRun_FallaConexionNoMigra(t *testing.T) {
	called := false
	connect := func(context.Context, config.DBConfig) (*pgxpool.Pool, error) { return nil, assert.AnError }
	migrate := func(context.Context, *pgxpool.Pool) error { called = true; return nil }

	err := run(context.Background(), config.DBConfig{}, connect, migrate)
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, called)
}

func TestRun_OK(t *testing.T) {
	var got *pgxpool.Pool
	migrate := func(_ context.Context, p *pgxpool.Pool) error { got = p; return nil }

	require.NoError(t, run(context.Background(), config.DBConfig{}, lazyPool, migrate))
	assert.NotNil(t, got)
}
