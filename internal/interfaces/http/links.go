package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/pkg/hal"
)

// linkBuilder usa la URL pública configurada o, si está vacía, el esquema y host de la petición.
func linkBuilder(c *fiber.Ctx, publicURL string) hal.LinkBuilder {
	if publicURL != "" {
		return hal.NewLinkBuilder(publicURL)
	}
	return hal.NewLinkBuilder(c.BaseURL())
}

// respondHAL responde 200 forzando application/hal+json sin importar el header Accept.
func respondHAL(c *fiber.Ctx, body any) error {
	return c.Status(fiber.StatusOK).JSON(body, hal.MediaType)
}

// paramID convierte el parámetro :id a int64.
func paramID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q no es un entero", domain.ErrInvalidInput, raw)
	}
	return id, nil
}
