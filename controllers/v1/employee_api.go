package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	employeehandler "hr-evaluation-backend/lib/employee"
	filestorage "hr-evaluation-backend/lib/file-storage"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeApiRouters(app *fiber.App) {
	controller := employeeApiController{}
	app.Route("employee", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Get("deleted", controller.listDeleted)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("restore", controller.restore)
			idRoute.Post("avatar", controller.uploadAvatar)
			idRoute.Get("avatar", controller.getAvatar)
			idRoute.Post("signature", controller.uploadSignature)
			idRoute.Get("signature", controller.getSignature)
		})
	})
}

// @Summary Список сотрудников
// @Tags Сотрудники
// @Description Список сотрудников с фильтром и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/list [post]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := employeehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Сотрудник
// @Tags Сотрудники
// @Description Получить сотрудника по ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, hMsg, err := employeehandler.Instance.Get(id)
	return c.SendResult(ctx, resp, hMsg, err, "Ошибка получения сотрудника")
}

// @Summary Создание сотрудника
// @Tags Сотрудники
// @Description Создание сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.CreateEmployee	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.CreateEmployee
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := employeehandler.Instance.Create(middleware.GetUserRole(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "Ошибка создания сотрудника")
}

// @Summary Обновление сотрудника
// @Tags Сотрудники
// @Description Обновление сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		employeeapimodels.EmployeeData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.Update(middleware.GetUserRole(ctx), id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка обновления сотрудника")
}

// @Summary Удаление сотрудника
// @Tags Сотрудники
// @Description Удаление сотрудника с подтверждением паролем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		employeeapimodels.EmployeeDelete	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employeeapimodels.EmployeeDelete
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.Delete(middleware.GetUserID(ctx), id, payload.Password)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка удаления сотрудника")
}

// @Summary Восстановление сотрудника
// @Tags Сотрудники
// @Description Восстановление удаленного сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id}/restore [put]
func (c *employeeApiController) restore(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.Restore(id)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка восстановления сотрудника")
}

// @Summary Удаленные сотрудники
// @Tags Сотрудники
// @Description Список удаленных сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/deleted [get]
func (c *employeeApiController) listDeleted(ctx *fiber.Ctx) error {
	list, err := employeehandler.Instance.ListDeleted()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения удаленных сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка сотрудников
// @Tags Сотрудники
// @Description Выгрузка списка сотрудников в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		employeeapimodels.EmployeeFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/export [post]
func (c *employeeApiController) export(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := employeehandler.Instance.ExportXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки сотрудников в Excel")
	}
	fileName := fmt.Sprintf("employees-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Загрузка фото
// @Tags Сотрудники
// @Description Загрузка фото сотрудника (png, jpeg, gif, webp)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param   photo				formData	file	true	"upload file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id}/avatar [post]
func (c *employeeApiController) uploadAvatar(ctx *fiber.Ctx) error {
	return c.upload(ctx, "photo", filestorage.AvatarFile)
}

// @Summary Загрузка изображения подписи
// @Tags Сотрудники
// @Description Загрузка изображения подписи сотрудника для pdf отчета
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param   signature			formData	file	true	"upload file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id}/signature [post]
func (c *employeeApiController) uploadSignature(ctx *fiber.Ctx) error {
	return c.upload(ctx, "signature", filestorage.SignatureFile)
}

// @Summary Фото
// @Tags Сотрудники
// @Description Получить фото сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {file} file
// @Success 204
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id}/avatar [get]
func (c *employeeApiController) getAvatar(ctx *fiber.Ctx) error {
	return c.download(ctx, filestorage.AvatarFile)
}

// @Summary Изображение подписи
// @Tags Сотрудники
// @Description Получить изображение подписи сотрудника
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {file} file
// @Success 204
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee/{id}/signature [get]
func (c *employeeApiController) getSignature(ctx *fiber.Ctx) error {
	return c.download(ctx, filestorage.SignatureFile)
}

func (c *employeeApiController) upload(ctx *fiber.Ctx, field string, kind filestorage.FileKind) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, err := c.FormFileBody(ctx, field)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := employeehandler.Instance.UploadFile(ctx.UserContext(), id, kind, body)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка загрузки файла")
}

func (c *employeeApiController) download(ctx *fiber.Ctx, kind filestorage.FileKind) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, contentType, err := employeehandler.Instance.GetFile(ctx.UserContext(), id, kind)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла")
	}
	if len(body) == 0 {
		return ctx.SendStatus(fiber.StatusNoContent)
	}
	return c.SendFile(ctx, body, contentType, "")
}
