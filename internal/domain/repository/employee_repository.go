package repository

import (
	"context"

	"github.com/jhoicas/Employees-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia de solo lectura para Employee (DIP).
// FindByID devuelve (nil, nil) si no existe.
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]entity.Employee, error)
	FindByID(ctx context.Context, id int64) (*entity.Employee, error)
	FindByManagerID(ctx context.Context, managerID int64) ([]entity.Employee, error)
}
