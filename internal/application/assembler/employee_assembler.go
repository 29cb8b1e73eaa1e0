package assembler

import (
	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/pkg/hal"
)

// EmployeeAssembler convierte empleados en recursos HAL.
type EmployeeAssembler struct{}

// NewEmployeeAssembler construye el assembler.
func NewEmployeeAssembler() *EmployeeAssembler {
	return &EmployeeAssembler{}
}

// ToResource arma el recurso con enlaces self, employees, detailed y manager (si aplica).
func (a *EmployeeAssembler) ToResource(lb hal.LinkBuilder, e entity.Employee) dto.EmployeeResource {
	links := hal.Links{
		hal.RelSelf:      lb.To("employees", e.ID),
		dto.RelEmployees: lb.To("employees"),
		dto.RelDetailed:  lb.To("employees", e.ID, "detailed"),
	}
	if e.HasManager() {
		links.Add(dto.RelManager, lb.To("managers", *e.ManagerID))
	}
	return dto.EmployeeResource{
		ID:    e.ID,
		Name:  e.Name,
		Role:  e.Role,
		Links: links,
	}
}

// ToCollection arma la colección. self es el href de la colección pedida.
func (a *EmployeeAssembler) ToCollection(lb hal.LinkBuilder, employees []entity.Employee, self hal.Link) dto.EmployeeCollection {
	items := make([]dto.EmployeeResource, 0, len(employees))
	for _, e := range employees {
		items = append(items, a.ToResource(lb, e))
	}
	return hal.NewCollection(dto.RelEmployees, items, hal.Links{hal.RelSelf: self})
}
