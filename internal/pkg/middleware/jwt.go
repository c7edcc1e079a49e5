package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/raditp/dompet/internal/pkg/jwt"
	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDClaim, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := strconv.ParseInt(fmt.Sprintf("%v", userIDClaim), 10, 64)
			if err != nil {
				// Claims decoded from JSON arrive as float64
				if f, ferr := strconv.ParseFloat(fmt.Sprintf("%v", userIDClaim), 64); ferr == nil {
					userID = int64(f)
				} else {
					return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid id")
				}
			}

			c.Set("user_id", userID)
			c.Set("user_role", role)

			return next(c)
		}
	}
}
