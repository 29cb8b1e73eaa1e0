package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/internal/domain/repository"
	"github.com/jhoicas/Employees-api/internal/infrastructure/metrics"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const (
	findAllEmployeesQuery       = `SELECT id, name, role, manager_id FROM employees ORDER BY id`
	findEmployeeByIDQuery       = `SELECT id, name, role, manager_id FROM employees WHERE id = $1`
	findEmployeesByManagerQuery = `
		SELECT id, name, role, manager_id
		FROM employees WHERE manager_id = $1 ORDER BY id`
)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	db      DB
	metrics *metrics.Metrics
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados. m puede ser nil.
func NewEmployeeRepository(db DB, m *metrics.Metrics) *EmployeeRepo {
	return &EmployeeRepo{db: db, metrics: m}
}

// FindAll lista todos los empleados ordenados por ID.
func (r *EmployeeRepo) FindAll(ctx context.Context) ([]entity.Employee, error) {
	defer observe(r.metrics, "find_all_employees", time.Now())
	rows, err := r.db.Query(ctx, findAllEmployeesQuery)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return collectEmployees(rows)
}

// FindByID obtiene un empleado por ID; (nil, nil) si no existe.
func (r *EmployeeRepo) FindByID(ctx context.Context, id int64) (*entity.Employee, error) {
	defer observe(r.metrics, "find_employee_by_id", time.Now())
	e, err := scanEmployee(r.db.QueryRow(ctx, findEmployeeByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// FindByManagerID lista los empleados de un manager.
func (r *EmployeeRepo) FindByManagerID(ctx context.Context, managerID int64) ([]entity.Employee, error) {
	defer observe(r.metrics, "find_employees_by_manager", time.Now())
	rows, err := r.db.Query(ctx, findEmployeesByManagerQuery, managerID)
	if err != nil {
		return nil, fmt.Errorf("list employees by manager: %w", err)
	}
	return collectEmployees(rows)
}

func scanEmployee(row pgx.Row) (entity.Employee, error) {
	var (
		e         entity.Employee
		managerID pgtype.Int8
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Role, &managerID); err != nil {
		return entity.Employee{}, err
	}
	if managerID.Valid {
		id := managerID.Int64
		e.ManagerID = &id
	}
	return e, nil
}

func collectEmployees(rows pgx.Rows) ([]entity.Employee, error) {
	defer rows.Close()
	list := make([]entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
