package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-evaluation-backend/controllers"
	submissionhandler "hr-evaluation-backend/lib/submission"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submission", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RbacMiddleware())
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Put("seen", controller.markSeen)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("sign_employee", controller.signEmployee)
			idRoute.Put("sign_evaluator", controller.signEvaluator)
			idRoute.Get("history", controller.history)
			idRoute.Get("pdf", controller.pdf)
		})
	})
}

func viewer(ctx *fiber.Ctx) submissionhandler.Viewer {
	return submissionhandler.Viewer{
		UserID: middleware.GetUserID(ctx),
		Role:   middleware.GetUserRole(ctx),
	}
}

// @Summary Отправка оценки
// @Tags Оценки
// @Description Оценщик отправляет оценку сотрудника, статус - ожидает подписи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		evaluationapimodels.SubmissionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission [post]
func (c *submissionApiController) create(ctx *fiber.Ctx) error {
	var payload evaluationapimodels.SubmissionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, hMsg, err := submissionhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	return c.SendResult(ctx, id, hMsg, err, "Ошибка отправки оценки")
}

// @Summary Список оценок
// @Tags Оценки
// @Description Список оценок со статусом по подписям и подсветкой строк
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		evaluationapimodels.SubmissionFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]evaluationapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/list [post]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	var payload evaluationapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := submissionhandler.Instance.List(viewer(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка оценок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Оценка
// @Tags Оценки
// @Description Получить оценку по ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=evaluationapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id} [get]
func (c *submissionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, hMsg, err := submissionhandler.Instance.Get(viewer(ctx), id)
	return c.SendResult(ctx, item, hMsg, err, "Ошибка получения оценки")
}

// @Summary Изменение оценки
// @Tags Оценки
// @Description Изменение оценки до полного согласования, подписи сбрасываются
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		evaluationapimodels.SubmissionUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id} [put]
func (c *submissionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.SubmissionUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := submissionhandler.Instance.Update(viewer(ctx), id, payload)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка изменения оценки")
}

// @Summary Удаление оценки
// @Tags Оценки
// @Description Удаление оценки с подтверждением паролем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		evaluationapimodels.SubmissionDelete	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id} [delete]
func (c *submissionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload evaluationapimodels.SubmissionDelete
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := submissionhandler.Instance.Delete(viewer(ctx), id, payload.Password)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка удаления оценки")
}

// @Summary Подпись сотрудника
// @Tags Оценки
// @Description Оцениваемый сотрудник подписывает оценку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		evaluationapimodels.SignRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/sign_employee [put]
func (c *submissionApiController) signEmployee(ctx *fiber.Ctx) error {
	id, payload, err := c.signPayload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := submissionhandler.Instance.SignAsEmployee(ctx.UserContext(), middleware.GetUserID(ctx), id, payload.Signature)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка подписи оценки")
}

// @Summary Подпись оценщика
// @Tags Оценки
// @Description Автор оценки подписывает оценку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Param	body				body		evaluationapimodels.SignRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/sign_evaluator [put]
func (c *submissionApiController) signEvaluator(ctx *fiber.Ctx) error {
	id, payload, err := c.signPayload(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := submissionhandler.Instance.SignAsEvaluator(ctx.UserContext(), middleware.GetUserID(ctx), id, payload.Signature)
	return c.SendResult(ctx, nil, hMsg, err, "Ошибка подписи оценки")
}

func (c *submissionApiController) signPayload(ctx *fiber.Ctx) (id string, payload evaluationapimodels.SignRequest, err error) {
	id, err = c.GetID(ctx)
	if err != nil {
		return "", payload, err
	}
	if err = c.BodyParser(ctx, &payload); err != nil {
		return "", payload, err
	}
	if err = payload.Validate(); err != nil {
		return "", payload, err
	}
	return id, payload, nil
}

// @Summary Отметка о просмотре
// @Tags Оценки
// @Description Отметить оценки просмотренными текущим пользователем
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		apimodels.IDs	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/seen [put]
func (c *submissionApiController) markSeen(ctx *fiber.Ctx) error {
	var payload apimodels.IDs
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if len(payload.IDs) == 0 {
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	}
	err := submissionhandler.Instance.MarkSeen(middleware.GetUserID(ctx), payload.IDs)
	return c.SendResult(ctx, nil, "", err, "Ошибка сохранения отметки о просмотре")
}

// @Summary История оценки
// @Tags Оценки
// @Description История изменений и подписей оценки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]evaluationapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/history [get]
func (c *submissionApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, hMsg, err := submissionhandler.Instance.History(viewer(ctx), id)
	return c.SendResult(ctx, list, hMsg, err, "Ошибка получения истории оценки")
}

// @Summary Выгрузка оценок
// @Tags Оценки
// @Description Выгрузка оценок в Excel по фильтру
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		evaluationapimodels.SubmissionFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/export [post]
func (c *submissionApiController) export(ctx *fiber.Ctx) error {
	var payload evaluationapimodels.SubmissionFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := submissionhandler.Instance.ExportXls(viewer(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки оценок в Excel")
	}
	fileName := fmt.Sprintf("evaluations-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Отчет по оценке
// @Tags Оценки
// @Description Отчет по оценке в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true	"rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/submission/{id}/pdf [get]
func (c *submissionApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body, hMsg, err := submissionhandler.Instance.ExportPdf(ctx.UserContext(), viewer(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета по оценке")
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return c.SendFile(ctx, body, "application/pdf", fmt.Sprintf("evaluation-%s.pdf", id))
}
