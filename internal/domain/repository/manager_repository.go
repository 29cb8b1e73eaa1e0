package repository

import (
	"context"

	"github.com/jhoicas/Employees-api/internal/domain/entity"
)

// ManagerRepository define el puerto de persistencia de solo lectura para Manager (DIP).
// FindByID devuelve (nil, nil) si no existe.
type ManagerRepository interface {
	FindAll(ctx context.Context) ([]entity.Manager, error)
	FindByID(ctx context.Context, id int64) (*entity.Manager, error)
}
