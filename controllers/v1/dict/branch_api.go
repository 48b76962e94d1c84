package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	branchprovider "hr-evaluation-backend/lib/dicts/branch"
	apimodels "hr-evaluation-backend/models/api"
	dictapimodels "hr-evaluation-backend/models/api/dict"
)

type branchDictApiController struct {
	controllers.BaseAPIController
}

func InitBranchDictApiRouters(app *fiber.App) {
	controller := branchDictApiController{}
	app.Route("branch", func(router fiber.Router) {
		router.Post("find", controller.find)
		router.Get(":id", controller.get)
	})
}

// @Summary Поиск по названию
// @Tags Справочник. Филиал
// @Description Поиск по названию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.DictFind	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.BranchView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/branch/find [post]
func (c *branchDictApiController) find(ctx *fiber.Ctx) error {
	var payload dictapimodels.DictFind
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := branchprovider.Instance.FindByName(payload)
	return c.SendResult(ctx, list, "", err, "Ошибка поиска филиалов")
}

// @Summary Получение по ИД
// @Tags Справочник. Филиал
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.BranchView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/branch/{id} [get]
func (c *branchDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := branchprovider.Instance.Get(id)
	return c.SendResult(ctx, resp, "", err, "Ошибка получения филиала")
}
