package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// roleReader es el contrato mínimo que necesita el middleware para leer el rol vigente.
// Lo implementa *usecase.UserUseCase; devuelve "" si el usuario no existe.
type roleReader interface {
	Role(ctx context.Context, id string) (string, error)
}

// RequireRole devuelve un middleware Fiber que consulta el rol en la DB en cada petición
// y solo deja pasar a role. Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 UNAUTHORIZED → no hay identidad en el contexto.
//   - 403 FORBIDDEN    → usuario inexistente o con otro rol.
//   - 500 INTERNAL     → fallo al consultar la DB.
func RequireRole(role string, roles roleReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Não autenticado")
		}

		current, err := roles.Role(c.UserContext(), userID)
		if err != nil {
			return writeError(c, err)
		}
		if current != role {
			return errorJSON(c, fiber.StatusForbidden, "FORBIDDEN", "Acesso negado")
		}
		return c.Next()
	}
}
