package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	suspensionhandler "hr-evaluation-backend/lib/suspension"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	suspensionapimodels "hr-evaluation-backend/models/api/suspension"
)

type suspensionApiController struct {
	controllers.BaseAPIController
}

func InitSuspensionApiRouters(app *fiber.App) {
	controller := suspensionApiController{}
	app.Route("suspension", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.suspend)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("review", controller.review)
			idRoute.Put("reinstate", controller.reinstate)
		})
	})
}

// @Summary Отстранение сотрудника
// @Tags Отстранения
// @Description Отстранить сотрудника на срок или бессрочно
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		suspensionapimodels.SuspendRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension [post]
func (c *suspensionApiController) suspend(ctx *fiber.Ctx) error {
	var payload suspensionapimodels.SuspendRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := suspensionhandler.Instance.Suspend(middleware.GetUserID(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "Ошибка отстранения сотрудника")
}

// @Summary Список отстранений
// @Tags Отстранения
// @Description Список отстранений с фильтром по статусу
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		suspensionapimodels.SuspensionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]suspensionapimodels.SuspensionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension/list [post]
func (c *suspensionApiController) list(ctx *fiber.Ctx) error {
	var payload suspensionapimodels.SuspensionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := suspensionhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка отстранений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Отстранение
// @Tags Отстранения
// @Description Получить отстранение по ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=suspensionapimodels.SuspensionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension/{id} [get]
func (c *suspensionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, hMsg, err := suspensionhandler.Instance.Get(id)
	return c.SendResult(ctx, item, hMsg, err, "Ошибка получения отстранения")
}

// @Summary На рассмотрение
// @Tags Отстранения
// @Description Перевести отстранение в статус "на рассмотрении"
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension/{id}/review [put]
func (c *suspensionApiController) review(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := suspensionhandler.Instance.MarkForReview(id)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка изменения статуса отстранения")
}

// @Summary Восстановление
// @Tags Отстранения
// @Description Восстановить отстраненного сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension/{id}/reinstate [put]
func (c *suspensionApiController) reinstate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := suspensionhandler.Instance.Reinstate(middleware.GetUserID(ctx), id)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка восстановления сотрудника")
}

// @Summary Удаление отстранения
// @Tags Отстранения
// @Description Удалить запись об отстранении
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/suspension/{id} [delete]
func (c *suspensionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = suspensionhandler.Instance.Delete(id)
	return c.SendResult(ctx, nil, "", err, "Ошибка удаления отстранения")
}
