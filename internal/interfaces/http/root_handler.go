package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/pkg/hal"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

// Root godoc
// @Summary      Punto de entrada con enlaces a las colecciones
// @Tags         root
// @Produce      application/hal+json
// @Success      200  {object}  dto.RootResource
// @Router       / [get]
func Root(publicURL string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lb := linkBuilder(c, publicURL)
		return respondHAL(c, dto.RootResource{Links: hal.Links{
			hal.RelSelf:              lb.To(),
			dto.RelEmployees:         lb.To("employees"),
			dto.RelDetailedEmployees: lb.To("employees", "detailed"),
			dto.RelManagers:          lb.To("managers"),
		}})
	}
}

// Pinger permite verificar la disponibilidad del almacenamiento.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health responde el estado del servicio y del almacenamiento (503 si el ping falla).
func Health(appName, storage string, db Pinger, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, code := "ok", fiber.StatusOK
		if err := db.Ping(c.UserContext()); err != nil {
			log.Warn().Err(err).Str("storage", storage).Msg("health check: ping al almacenamiento falló")
			status, code = "degraded", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{"status": status, "service": appName, "storage": storage})
	}
}
