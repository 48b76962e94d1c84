package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	dashboardhandler "hr-evaluation-backend/lib/dashboard"
	"hr-evaluation-backend/middleware"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("admin", controller.admin)
		router.Get("hr", controller.hr)
		router.Get("evaluator", controller.evaluator)
	})
}

// @Summary Панель администратора
// @Tags Дашборды
// @Description Сводка по сотрудникам, заявкам и оценкам
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.AdminDashboard}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/admin [get]
func (c *dashboardApiController) admin(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Admin(middleware.GetUserID(ctx))
	return c.SendResult(ctx, resp, "", err, "Ошибка получения панели администратора")
}

// @Summary Панель HR
// @Tags Дашборды
// @Description Оценки по статусам и подразделениям, лучшие и отстающие сотрудники
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.HRDashboard}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/hr [get]
func (c *dashboardApiController) hr(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.HR(middleware.GetUserID(ctx))
	return c.SendResult(ctx, resp, "", err, "Ошибка получения панели HR")
}

// @Summary Панель оценщика
// @Tags Дашборды
// @Description Оценки, выставленные текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.EvaluatorDashboard}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/evaluator [get]
func (c *dashboardApiController) evaluator(ctx *fiber.Ctx) error {
	resp, err := dashboardhandler.Instance.Evaluator(middleware.GetUserID(ctx))
	return c.SendResult(ctx, resp, "", err, "Ошибка получения панели оценщика")
}
