package assembler

import (
	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/internal/domain/entity"
	"github.com/jhoicas/Employees-api/pkg/hal"
)

// ManagerAssembler convierte managers en recursos HAL.
type ManagerAssembler struct{}

// NewManagerAssembler construye el assembler.
func NewManagerAssembler() *ManagerAssembler {
	return &ManagerAssembler{}
}

// ToResource arma el recurso con enlaces self, managers y employees.
func (a *ManagerAssembler) ToResource(lb hal.LinkBuilder, m entity.Manager) dto.ManagerResource {
	return dto.ManagerResource{
		ID:   m.ID,
		Name: m.Name,
		Links: hal.Links{
			hal.RelSelf:      lb.To("managers", m.ID),
			dto.RelManagers:  lb.To("managers"),
			dto.RelEmployees: lb.To("managers", m.ID, "employees"),
		},
	}
}

// ToCollection arma la colección de managers.
func (a *ManagerAssembler) ToCollection(lb hal.LinkBuilder, managers []entity.Manager) dto.ManagerCollection {
	items := make([]dto.ManagerResource, 0, len(managers))
	for _, m := range managers {
		items = append(items, a.ToResource(lb, m))
	}
	return hal.NewCollection(dto.RelManagers, items, hal.Links{hal.RelSelf: lb.To("managers")})
}
