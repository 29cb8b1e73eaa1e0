package entity

// EmployeeWithManager vista compuesta de solo lectura: empleado + su manager resuelto (nil si no tiene).
// Se construye por petición y se descarta tras serializar.
type EmployeeWithManager struct {
	Employee Employee
	Manager  *Manager
}

// NewEmployeeWithManager arma la vista compuesta.
func NewEmployeeWithManager(e Employee, m *Manager) EmployeeWithManager {
	return EmployeeWithManager{Employee: e, Manager: m}
}

// ManagerName devuelve el nombre del manager o "" si no tiene.
func (v EmployeeWithManager) ManagerName() string {
	if v.Manager == nil {
		return ""
	}
	return v.Manager.Name
}
