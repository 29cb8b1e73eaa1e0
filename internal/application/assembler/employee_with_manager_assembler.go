package assembler

import (
	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/pkg/hal"
)

// EmployeeWithManagerAssembler convierte la vista empleado + manager en recursos HAL.
type EmployeeWithManagerAssembler struct{}

// NewEmployeeWithManagerAssembler construye el assembler.
func NewEmployeeWithManagerAssembler() *EmployeeWithManagerAssembler {
	return &EmployeeWithManagerAssembler{}
}

// ToResource arma el recurso detallado.
func (a *EmployeeWithManagerAssembler) ToResource(lb hal.LinkBuilder, v entity.EmployeeWithManager) dto.EmployeeWithManagerResource {
	id := v.Employee.ID
	links := hal.Links{
		hal.RelSelf:              lb.To("employees", id, "detailed"),
		dto.RelEmployee:          lb.To("employees", id),
		dto.RelDetailedEmployees: lb.To("employees", "detailed"),
	}
	if v.Manager != nil {
		links.Add(dto.RelManager, lb.To("managers", v.Manager.ID))
	}
	return dto.EmployeeWithManagerResource{
		ID:      id,
		Name:    v.Employee.Name,
		Role:    v.Employee.Role,
		Manager: v.ManagerName(),
		Links:   links,
	}
}

// ToCollection arma la colección de vistas detalladas con self = /employees/detailed.
func (a *EmployeeWithManagerAssembler) ToCollection(lb hal.LinkBuilder, views []entity.EmployeeWithManager) dto.EmployeeWithManagerCollection {
	items := make([]dto.EmployeeWithManagerResource, 0, len(views))
	for _, v := range views {
		items = append(items, a.ToResource(lb, v))
	}
	return hal.NewCollection(dto.RelEmployeeWithManagers, items, hal.Links{
		hal.RelSelf: lb.To("employees", "detailed"),
	})
}
