package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	positionprovider "hr-evaluation-backend/lib/dicts/position"
	apimodels "hr-evaluation-backend/models/api"
	dictapimodels "hr-evaluation-backend/models/api/dict"
)

type positionDictApiController struct {
	controllers.BaseAPIController
}

func InitPositionDictApiRouters(app *fiber.App) {
	controller := positionDictApiController{}
	app.Route("position", func(router fiber.Router) {
		router.Post("find", controller.find)
		router.Get(":id", controller.get)
	})
}

// @Summary Поиск по названию и подразделению
// @Tags Справочник. Должность
// @Description Поиск по названию и подразделению
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.PositionFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/position/find [post]
func (c *positionDictApiController) find(ctx *fiber.Ctx) error {
	var payload dictapimodels.PositionFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := positionprovider.Instance.Find(payload)
	return c.SendResult(ctx, list, "", err, "Ошибка поиска должностей")
}

// @Summary Получение по ИД
// @Tags Справочник. Должность
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/position/{id} [get]
func (c *positionDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := positionprovider.Instance.Get(id)
	return c.SendResult(ctx, resp, "", err, "Ошибка получения должности")
}
