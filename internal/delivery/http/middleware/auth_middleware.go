package middleware

import (
	"errors"
	"strings"

	"jobboard/internal/domain/ids"
	"jobboard/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

const CtxCitizenIDKey = "citizen_id"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.Validate(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		citizenID, err := ids.ParseCitizenID(claims.Subject)
		if err != nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxCitizenIDKey, citizenID)

		return c.Next()
	}
}

// CurrentCitizenID pulls the authenticated citizen out of the request
// context; it only succeeds behind the auth middleware.
func CurrentCitizenID(c fiber.Ctx) (ids.CitizenID, bool) {
	id, ok := c.Locals(CtxCitizenIDKey).(ids.CitizenID)
	return id, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
