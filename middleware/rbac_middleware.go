package middleware

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/lib/rbac"
	apimodels "hr-evaluation-backend/models/api"
)

// RbacMiddleware маршруты без правил пропускаются, доступ к ним ограничен только авторизацией
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRole := GetUserRole(ctx)
		if userID == "" || userRole == "" {
			return forbidden(ctx)
		}
		allowed, known := rbac.Instance.Check(userID, userRole, ctx.Method(), ctx.Path())
		if known && !allowed {
			return forbidden(ctx)
		}
		return ctx.Next()
	}
}

func forbidden(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("недостаточно прав"))
}
