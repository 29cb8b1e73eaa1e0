package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
)

// EmployeeUseCase consultas de solo lectura sobre empleados.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	managers  repository.ManagerRepository
}

// NewEmployeeUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployeeUseCase(employees repository.EmployeeRepository, managers repository.ManagerRepository) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, managers: managers}
}

// FindAll lista todos los empleados.
func (uc *EmployeeUseCase) FindAll(ctx context.Context) ([]entity.Employee, error) {
	return uc.employees.FindAll(ctx)
}

// FindOne obtiene un empleado por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) FindOne(ctx context.Context, id int64) (*entity.Employee, error) {
	e, err := uc.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: empleado %d", domain.ErrNotFound, id)
	}
	return e, nil
}

// FindByManager lista los empleados de un manager. Un manager inexistente da lista vacía.
func (uc *EmployeeUseCase) FindByManager(ctx context.Context, managerID int64) ([]entity.Employee, error) {
	return uc.employees.FindByManagerID(ctx, managerID)
}

// ManagerExists indica si el manager está registrado.
func (uc *EmployeeUseCase) ManagerExists(ctx context.Context, managerID int64) (bool, error) {
	m, err := uc.managers.FindByID(ctx, managerID)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}

// FindAllDetailed lista todos los empleados junto a su manager resuelto.
func (uc *EmployeeUseCase) FindAllDetailed(ctx context.Context) ([]entity.EmployeeWithManager, error) {
	employees, err := uc.employees.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	managers, err := uc.managers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Manager, len(managers))
	for i := range managers {
		byID[managers[i].ID] = &managers[i]
	}
	views := make([]entity.EmployeeWithManager, 0, len(employees))
	for _, e := range employees {
		var m *entity.Manager
		if e.HasManager() {
			m = byID[*e.ManagerID]
		}
		views = append(views, entity.NewEmployeeWithManager(e, m))
	}
	return views, nil
}

// FindDetailed obtiene la vista empleado + manager. Devuelve domain.ErrNotFound si el empleado no existe.
func (uc *EmployeeUseCase) FindDetailed(ctx context.Context, id int64) (*entity.EmployeeWithManager, error) {
	e, err := uc.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	var m *entity.Manager
	if e.HasManager() {
		m, err = uc.managers.FindByID(ctx, *e.ManagerID)
		if err != nil {
			return nil, err
		}
	}
	view := entity.NewEmployeeWithManager(*e, m)
	return &view, nil
}
