package middleware

import (
	"fmt"
	"sponsorship/config"
	"sponsorship/domain"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 24 * time.Hour

func GenerateJWT(userID uint, username string, role domain.Role) (string, error) {
	now := time.Now()
	claims := &domain.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.GetJWTKey())
}

func VerifyJWT(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return config.GetJWTKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthRequired accepts "Bearer <token>" or the bare token and stores the claims under "user".
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer"))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided",
			})
		}

		claims, err := VerifyJWT(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid token",
				"error":   err.Error(),
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

func RoleRequired(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "No token provided",
			})
		}

		for _, role := range roles {
			if strings.EqualFold(string(claims.Role), string(role)) {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Access denied: role '%s' is not allowed", claims.Role),
		})
	}
}

// ClaimsFrom returns the claims AuthRequired stored, or nil on public routes.
func ClaimsFrom(c *fiber.Ctx) *domain.Claims {
	claims, _ := c.Locals("user").(*domain.Claims)
	return claims
}
