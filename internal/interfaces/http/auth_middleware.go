package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gleikstore/gleikstore-api/internal/application/dto"
	"github.com/gleikstore/gleikstore-api/pkg/jwt"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalUserID = "user_id"
	LocalUser   = "user"
)

// userLoader es el contrato mínimo que necesita el middleware para cargar al usuario.
// Lo implementa *usecase.UserUseCase; devuelve (nil, nil) si no existe.
type userLoader interface {
	GetPublic(ctx context.Context, id string) (*dto.UserResponse, error)
}

// AuthMiddleware valida el Bearer Token JWT, carga el perfil público del usuario
// y lo deja en c.Locals (LocalUserID, LocalUser).
//
// Comportamiento:
//   - 401 MISSING_TOKEN   → sin header Authorization.
//   - 401 MALFORMED_TOKEN → no es exactamente "Bearer <token>".
//   - 401 INVALID_TOKEN   → firma incorrecta o token ilegible.
//   - 401 EXPIRED_TOKEN   → firma válida pero vencido.
//   - 401 USER_NOT_FOUND  → el usuario del token ya no existe.
//   - 500 INTERNAL        → cualquier otro fallo (DB caída, secret vacío).
func AuthMiddleware(jwtSecret string, users userLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Token não fornecido")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MALFORMED_TOKEN", "Token mal formatado")
		}

		userID, err := jwt.Parse(jwtSecret, parts[1])
		switch {
		case errors.Is(err, jwt.ErrExpired):
			return errorJSON(c, fiber.StatusUnauthorized, "EXPIRED_TOKEN", "Token expirado")
		case errors.Is(err, jwt.ErrInvalid):
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Token inválido")
		case err != nil:
			return writeError(c, err)
		}

		user, err := users.GetPublic(c.UserContext(), userID)
		if err != nil {
			return writeError(c, err)
		}
		if user == nil {
			return errorJSON(c, fiber.StatusUnauthorized, "USER_NOT_FOUND", "Usuário não encontrado")
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUser devuelve el perfil público cargado por AuthMiddleware, o nil.
func GetUser(c *fiber.Ctx) *dto.UserResponse {
	u, _ := c.Locals(LocalUser).(*dto.UserResponse)
	return u
}
