package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	"hr-evaluation-backend/db"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	apimodels "hr-evaluation-backend/models/api"
)

type healthApiController struct {
	controllers.BaseAPIController
}

type HealthView struct {
	Database  string `json:"database"`
	WsClients int    `json:"ws_clients"`
}

func InitHealthApiRouters(app *fiber.App) {
	controller := healthApiController{}
	app.Get("health", controller.health)
}

// @Summary Состояние сервиса
// @Tags Служебное
// @Description Проверка соединения с БД
// @Success 200 {object} apimodels.Response{data=apiv1.HealthView}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/health [get]
func (c *healthApiController) health(ctx *fiber.Ctx) error {
	view := HealthView{Database: "ok", WsClients: connectionhub.Instance.ClientCount()}
	if err := db.PingDB(); err != nil {
		c.GetLogger(ctx).WithError(err).Error("БД недоступна")
		view.Database = "unavailable"
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.Response{Status: "fail", Message: "БД недоступна", Data: view})
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
