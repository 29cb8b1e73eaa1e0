package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Employees-api/internal/application/assembler"
	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP para Employee. Todas las respuestas son HAL+JSON.
type EmployeeHandler struct {
	uc        *usecase.EmployeeUseCase
	employees *assembler.EmployeeAssembler
	detailed  *assembler.EmployeeWithManagerAssembler
	publicURL string
}

// NewEmployeeHandler construye el handler inyectando el caso de uso y los assemblers.
func NewEmployeeHandler(
	uc *usecase.EmployeeUseCase,
	employees *assembler.EmployeeAssembler,
	detailed *assembler.EmployeeWithManagerAssembler,
	publicURL string,
) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, employees: employees, detailed: detailed, publicURL: publicURL}
}

// FindAll godoc
// @Summary      Listar empleados
// @Tags         employees
// @Produce      application/hal+json
// @Success      200  {object}  dto.EmployeeCollection
// @Router       /employees [get]
func (h *EmployeeHandler) FindAll(c *fiber.Ctx) error {
	list, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	lb := linkBuilder(c, h.publicURL)
	return respondHAL(c, h.employees.ToCollection(lb, list, lb.To("employees")))
}

// FindOne godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      application/hal+json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResource
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) FindOne(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	e, err := h.uc.FindOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondHAL(c, h.employees.ToResource(linkBuilder(c, h.publicURL), *e))
}

// FindByManager godoc
// @Summary      Listar empleados de un manager
// @Tags         managers
// @Produce      application/hal+json
// @Param        id   path  int  true  "ID del manager"
// @Success      200  {object}  dto.EmployeeCollection
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /managers/{id}/employees [get]
func (h *EmployeeHandler) FindByManager(c *fiber.Ctx) error {
	managerID, err := paramID(c)
	if err != nil {
		return err
	}
	ctx := c.UserContext()
	list, err := h.uc.FindByManager(ctx, managerID)
	if err != nil {
		return err
	}
	exists, err := h.uc.ManagerExists(ctx, managerID)
	if err != nil {
		return err
	}
	lb := linkBuilder(c, h.publicURL)
	out := h.employees.ToCollection(lb, list, lb.To("managers", managerID, "employees"))
	// Sin enlace "manager" si no existe: apuntaría a un 404.
	if exists {
		out.Links.Add(dto.RelManager, lb.To("managers", managerID))
	}
	return respondHAL(c, out)
}

// FindAllDetailed godoc
// @Summary      Listar empleados con su manager
// @Tags         employees
// @Produce      application/hal+json
// @Success      200  {object}  dto.EmployeeWithManagerCollection
// @Router       /employees/detailed [get]
func (h *EmployeeHandler) FindAllDetailed(c *fiber.Ctx) error {
	views, err := h.uc.FindAllDetailed(c.UserContext())
	if err != nil {
		return err
	}
	return respondHAL(c, h.detailed.ToCollection(linkBuilder(c, h.publicURL), views))
}

// FindDetailed godoc
// @Summary      Obtener empleado con su manager
// @Tags         employees
// @Produce      application/hal+json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeWithManagerResource
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id}/detailed [get]
func (h *EmployeeHandler) FindDetailed(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	view, err := h.uc.FindDetailed(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondHAL(c, h.detailed.ToResource(linkBuilder(c, h.publicURL), *view))
}
