package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
	"github.com/jhoicas/Employees-api/internal/infrastructure/metrics"
)

var _ repository.ManagerRepository = (*ManagerRepo)(nil)

const (
	findAllManagersQuery = `SELECT id, name FROM managers ORDER BY id`
	findManagerByIDQuery = `SELECT id, name FROM managers WHERE id = $1`
)

// ManagerRepo implementación del puerto ManagerRepository sobre PostgreSQL.
type ManagerRepo struct {
	db      DB
	metrics *metrics.Metrics
}

// NewManagerRepository construye el adaptador de persistencia para managers. m puede ser nil.
func NewManagerRepository(db DB, m *metrics.Metrics) *ManagerRepo {
	return &ManagerRepo{db: db, metrics: m}
}

// FindAll lista todos los managers ordenados por ID.
func (r *ManagerRepo) FindAll(ctx context.Context) ([]entity.Manager, error) {
	defer observe(r.metrics, "find_all_managers", time.Now())
	rows, err := r.db.Query(ctx, findAllManagersQuery)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()
	list := make([]entity.Manager, 0)
	for rows.Next() {
		var m entity.Manager
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// FindByID obtiene un manager por ID; (nil, nil) si no existe.
func (r *ManagerRepo) FindByID(ctx context.Context, id int64) (*entity.Manager, error) {
	defer observe(r.metrics, "find_manager_by_id", time.Now())
	var m entity.Manager
	err := r.db.QueryRow(ctx, findManagerByIDQuery, id).Scan(&m.ID, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}
	return &m, nil
}
