package middleware

import (
	"net/http"
	"strings"

	"hokhau/internal/domain/entity"
	"hokhau/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the authenticated actor lives under.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token and attaches the resulting actor to the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Thiếu header Authorization"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token phải ở dạng Bearer"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token không hợp lệ hoặc đã hết hạn"})
		}

		c.Set(actorContextKey, claims.Actor())

		return next(c)
	}
}

// RequireReviewer only admits actors whose role may approve or reject
// requests. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireReviewer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Thiếu thông tin định danh"})
		}

		if !actor.Role.CanReview() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Bạn không có quyền thực hiện thao tác này"})
		}

		return next(c)
	}
}

// ActorFrom extracts the authenticated actor placed on the context by Authenticate.
func ActorFrom(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(entity.Actor)

	return actor, ok
}
