package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"academy/config"
	"academy/models"
)

// GenerateJWTToken issues an HS256 token carrying the profile id and role.
func GenerateJWTToken(profile models.Profile, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.ID,
		"role":    string(profile.Role),
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ExtractUserFromToken returns the authenticated profile id and role from
// the Authorization header.
func ExtractUserFromToken(c *fiber.Ctx, cfg *config.Config) (string, models.Role, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}
	tokenString = stripBearer(tokenString)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}

	roleClaim, _ := claims["role"].(string)
	role := models.Role(roleClaim)
	if !role.Valid() {
		role = models.RoleStudent
	}

	return userID, role, nil
}

func stripBearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return header
}
