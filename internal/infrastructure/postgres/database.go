package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Employees-api/internal/infrastructure/metrics"
)

// DB subconjunto de *pgxpool.Pool que usan los repositorios (permite pgxmock en tests).
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// observe registra la duración de una consulta si hay métricas configuradas.
func observe(m *metrics.Metrics, queryType string, start time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(start).Seconds())
}
