package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Employees-api/internal/application/assembler"
	"github.com/jhoicas/Employees-api/internal/application/usecase"
)

// ManagerHandler maneja las peticiones HTTP para Manager.
type ManagerHandler struct {
	uc        *usecase.ManagerUseCase
	managers  *assembler.ManagerAssembler
	publicURL string
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase, managers *assembler.ManagerAssembler, publicURL string) *ManagerHandler {
	return &ManagerHandler{uc: uc, managers: managers, publicURL: publicURL}
}

// FindAll godoc
// @Summary      Listar managers
// @Tags         managers
// @Produce      application/hal+json
// @Success      200  {object}  dto.ManagerCollection
// @Router       /managers [get]
func (h *ManagerHandler) FindAll(c *fiber.Ctx) error {
	list, err := h.uc.FindAll(c.UserContext())
	if err != nil {
		return err
	}
	return respondHAL(c, h.managers.ToCollection(linkBuilder(c, h.publicURL), list))
}

// FindOne godoc
// @Summary      Obtener manager por ID
// @Tags         managers
// @Produce      application/hal+json
// @Param        id   path  int  true  "ID del manager"
// @Success      200  {object}  dto.ManagerResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /managers/{id} [get]
func (h *ManagerHandler) FindOne(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	m, err := h.uc.FindOne(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondHAL(c, h.managers.ToResource(linkBuilder(c, h.publicURL), *m))
}

// FindByEmployee godoc
// @Summary      Obtener el manager de un empleado
// @Tags         employees
// @Produce      application/hal+json
// @Param        id   path  int  true  "ID del empleado"
// @Success      200  {object}  dto.ManagerResource
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id}/manager [get]
func (h *ManagerHandler) FindByEmployee(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	m, err := h.uc.FindByEmployee(c.UserContext(), id)
	if err != nil {
		return err
	}
	return respondHAL(c, h.managers.ToResource(linkBuilder(c, h.publicURL), *m))
}
