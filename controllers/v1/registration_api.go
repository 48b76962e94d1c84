package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	registrationhandler "hr-evaluation-backend/lib/registration"
	"hr-evaluation-backend/middleware"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	registrationapimodels "hr-evaluation-backend/models/api/registration"
)

type registrationApiController struct {
	controllers.BaseAPIController
}

func InitRegistrationApiRouters(app *fiber.App) {
	controller := registrationApiController{}
	app.Post("registration", controller.submit)
	app.Route("admin/registration", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.AdminRequired())
		router.Use(middleware.RbacMiddleware())
		router.Get("pending", controller.listPending)
		router.Get("processed", controller.listProcessed)
		router.Put(":id/approve", controller.approve)
		router.Put(":id/reject", controller.reject)
	})
}

// @Summary Заявка на регистрацию
// @Tags Регистрация
// @Description Подать заявку на регистрацию, учетная запись создается после одобрения администратором
// @Param	body				body		registrationapimodels.RegistrationRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/registration [post]
func (c *registrationApiController) submit(ctx *fiber.Ctx) error {
	var payload registrationapimodels.RegistrationRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := registrationhandler.Instance.Submit(payload)
	return c.SendResult(ctx, id, hMsg, err, "Ошибка сохранения заявки на регистрацию")
}

// @Summary Заявки на рассмотрении
// @Tags Регистрация
// @Description Заявки на регистрацию, ожидающие решения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]registrationapimodels.RegistrationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/registration/pending [get]
func (c *registrationApiController) listPending(ctx *fiber.Ctx) error {
	list, err := registrationhandler.Instance.ListPending()
	return c.SendResult(ctx, list, "", err, "Ошибка получения заявок на регистрацию")
}

// @Summary Рассмотренные заявки
// @Tags Регистрация
// @Description Одобренные и отклоненные заявки на регистрацию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   status				query		string	false	"approved | rejected"
// @Success 200 {object} apimodels.Response{data=[]registrationapimodels.RegistrationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/registration/processed [get]
func (c *registrationApiController) listProcessed(ctx *fiber.Ctx) error {
	status := models.RegistrationStatus(ctx.Query("status"))
	list, err := registrationhandler.Instance.ListProcessed(status)
	return c.SendResult(ctx, list, "", err, "Ошибка получения заявок на регистрацию")
}

// @Summary Одобрение заявки
// @Tags Регистрация
// @Description Одобрить заявку и создать учетную запись сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/registration/{id}/approve [put]
func (c *registrationApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := registrationhandler.Instance.Approve(middleware.GetUserID(ctx), id)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка одобрения заявки")
}

// @Summary Отклонение заявки
// @Tags Регистрация
// @Description Отклонить заявку на регистрацию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		registrationapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/registration/{id}/reject [put]
func (c *registrationApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload registrationapimodels.RejectRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := registrationhandler.Instance.Reject(middleware.GetUserID(ctx), id, payload.Reason)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка отклонения заявки")
}
