package entity

// Employee representa un empleado. ManagerID es nil cuando no reporta a nadie.
type Employee struct {
	ID        int64
	Name      string
	Role      string
	ManagerID *int64
}

// HasManager indica si el empleado tiene un manager asignado.
func (e Employee) HasManager() bool {
	return e.ManagerID != nil
}
