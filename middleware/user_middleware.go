package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	"hr-evaluation-backend/models"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, ok := claims["role"].(string); ok && role != "" {
		return models.UserRole(role)
	}
	return ""
}
