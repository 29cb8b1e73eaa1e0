package dto

import "github.com/jhoicas/Employees-api/pkg/hal"

// Relaciones de enlaces y de colecciones embebidas para empleados.
const (
	RelEmployees            = "employees"
	RelEmployee             = "employee"
	RelDetailed             = "detailed"
	RelDetailedEmployees    = "detailedEmployees"
	RelEmployeeWithManagers = "employeeWithManagers"
)

// EmployeeResource salida HAL de un empleado.
type EmployeeResource struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Links hal.Links `json:"_links"`
}

// EmployeeWithManagerResource salida HAL de la vista empleado + manager.
// Manager es el nombre del manager; se omite si el empleado no tiene.
type EmployeeWithManagerResource struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	Manager string    `json:"manager,omitempty"`
	Links   hal.Links `json:"_links"`
}

// EmployeeCollection colección HAL de empleados.
type EmployeeCollection = hal.Collection[EmployeeResource]

// EmployeeWithManagerCollection colección HAL de vistas detalladas.
type EmployeeWithManagerCollection = hal.Collection[EmployeeWithManagerResource]
