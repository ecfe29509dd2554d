package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// pageChecker es el contrato mínimo que necesita el middleware para verificar
// permisos de página. Lo implementa *usecase.PermissionUseCase; el uso de
// interfaz evita el import circular.
type pageChecker interface {
	HasPageAccess(role, page string) (bool, error)
}

// RequirePage devuelve un middleware Fiber que verifica si el rol del token
// tiene acceso a la página del SPA. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 403 Forbidden → el rol no tiene la página habilitada.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Sin rol en el contexto responde 401 (el AuthMiddleware debería haberlo puesto).
func RequirePage(page string, checker pageChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("MISSING_ROLE", "rol no encontrado en el token"))
		}

		allowed, err := checker.HasPageAccess(role, page)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.Error("PERMISSION_CHECK_FAILED", "no se pudo verificar el permiso, intente más tarde"))
		}
		if !allowed {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("PAGE_FORBIDDEN", "el rol '"+role+"' no tiene acceso a la página '"+page+"'"))
		}
		return c.Next()
	}
}
