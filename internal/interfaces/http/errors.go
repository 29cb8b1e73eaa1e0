package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/Employees-api/internal/application/dto"
	"github.com/jhoicas/Employees-api/internal/domain"
	"github.com/jhoicas/Employees-api/pkg/hal"
	"github.com/jhoicas/Employees-api/pkg/logger"
)

// ErrorHandler traduce los errores devueltos por los handlers a respuestas HAL+JSON.
// Los 5xx se registran y no exponen el detalle al cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := translateError(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Msg("error atendiendo la petición")
		}
		return c.Status(status).JSON(body, hal.MediaType)
	}
}

func translateError(err error) (int, dto.ErrorResponse) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.As(err, &fe):
		code := strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(fe.Code), " ", "_"))
		return fe.Code, dto.ErrorResponse{Code: code, Message: fe.Message}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
	}
}

// statusFor devuelve el código HTTP final de una petición (para logs y métricas).
func statusFor(c *fiber.Ctx, err error) int {
	if err != nil {
		status, _ := translateError(err)
		return status
	}
	return c.Response().StatusCode()
}
