package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
)

// ManagerUseCase consultas de solo lectura sobre managers.
type ManagerUseCase struct {
	managers  repository.ManagerRepository
	employees repository.EmployeeRepository
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(managers repository.ManagerRepository, employees repository.EmployeeRepository) *ManagerUseCase {
	return &ManagerUseCase{managers: managers, employees: employees}
}

// FindAll lista todos los managers.
func (uc *ManagerUseCase) FindAll(ctx context.Context) ([]entity.Manager, error) {
	return uc.managers.FindAll(ctx)
}

// FindOne obtiene un manager por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *ManagerUseCase) FindOne(ctx context.Context, id int64) (*entity.Manager, error) {
	m, err := uc.managers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("%w: manager %d", domain.ErrNotFound, id)
	}
	return m, nil
}

// FindByEmployee obtiene el manager de un empleado.
// Devuelve domain.ErrNotFound si el empleado no existe o no tiene manager.
func (uc *ManagerUseCase) FindByEmployee(ctx context.Context, employeeID int64) (*entity.Manager, error) {
	e, err := uc.employees.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, employeeID)
	}
	if !e.HasManager() {
		return nil, fmt.Errorf("%w: el empleado %d no tiene manager", domain.ErrNotFound, employeeID)
	}
	return uc.FindOne(ctx, *e.ManagerID)
}
