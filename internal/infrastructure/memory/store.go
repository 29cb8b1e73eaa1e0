package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/tidwall/btree"

	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
)

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.ManagerRepository  = (*ManagerRepo)(nil)
)

// Store almacenamiento en memoria ordenado por ID (B-tree). Seguro para uso concurrente.
type Store struct {
	mu        sync.RWMutex
	employees btree.Map[int64, entity.Employee]
	managers  btree.Map[int64, entity.Manager]
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{}
}

// PutManager inserta o reemplaza un manager.
func (s *Store) PutManager(m entity.Manager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.managers.Set(m.ID, m)
}

// PutEmployee inserta o reemplaza un empleado. El manager referenciado debe existir.
func (s *Store) PutEmployee(e entity.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.HasManager() {
		if _, ok := s.managers.Get(*e.ManagerID); !ok {
			return fmt.Errorf("%w: manager %d inexistente", domain.ErrInvalidInput, *e.ManagerID)
		}
	}
	s.employees.Set(e.ID, cloneEmployee(e))
	return nil
}

// Ping siempre responde ok; existe para el health check.
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Employees devuelve el adaptador EmployeeRepository sobre este store.
func (s *Store) Employees() *EmployeeRepo {
	return &EmployeeRepo{store: s}
}

// Managers devuelve el adaptador ManagerRepository sobre este store.
func (s *Store) Managers() *ManagerRepo {
	return &ManagerRepo{store: s}
}

func cloneEmployee(e entity.Employee) entity.Employee {
	if e.ManagerID != nil {
		id := *e.ManagerID
		e.ManagerID = &id
	}
	return e
}

// EmployeeRepo implementación en memoria del puerto EmployeeRepository.
type EmployeeRepo struct {
	store *Store
}

// FindAll lista empleados ordenados por ID.
func (r *EmployeeRepo) FindAll(_ context.Context) ([]entity.Employee, error) {
	return r.scan(func(entity.Employee) bool { return true }), nil
}

// FindByID obtiene un empleado; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	e, ok := r.store.employees.Get(id)
	if !ok {
		return nil, nil
	}
	out := cloneEmployee(e)
	return &out, nil
}

// FindByManagerID lista los empleados cuyo manager es managerID.
func (r *EmployeeRepo) FindByManagerID(_ context.Context, managerID int64) ([]entity.Employee, error) {
	return r.scan(func(e entity.Employee) bool {
		return e.HasManager() && *e.ManagerID == managerID
	}), nil
}

func (r *EmployeeRepo) scan(keep func(entity.Employee) bool) []entity.Employee {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]entity.Employee, 0, r.store.employees.Len())
	r.store.employees.Scan(func(_ int64, e entity.Employee) bool {
		if keep(e) {
			list = append(list, cloneEmployee(e))
		}
		return true
	})
	return list
}

// ManagerRepo implementación en memoria del puerto ManagerRepository.
type ManagerRepo struct {
	store *Store
}

// FindAll lista managers ordenados por ID.
func (r *ManagerRepo) FindAll(_ context.Context) ([]entity.Manager, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]entity.Manager, 0, r.store.managers.Len())
	r.store.managers.Scan(func(_ int64, m entity.Manager) bool {
		list = append(list, m)
		return true
	})
	return list, nil
}

// FindByID obtiene un manager; (nil, nil) si no existe.
func (r *ManagerRepo) FindByID(_ context.Context, id int64) (*entity.Manager, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	m, ok := r.store.managers.Get(id)
	if !ok {
		return nil, nil
	}
	return &m, nil
}
