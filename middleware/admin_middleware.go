package middleware

import (
	"slices"

	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
)

func AdminRequired() fiber.Handler {
	return RolesRequired(models.AdminRole)
}

// RolesRequired пропускает только пользователей с одной из ролей
func RolesRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !slices.Contains(roles, GetUserRole(ctx)) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
