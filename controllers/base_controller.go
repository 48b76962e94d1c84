package controllers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/middleware"
	apimodels "hr-evaluation-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("user_id", middleware.GetUserID(ctx))
}

// SendError пишет причину в лог, клиенту уходит только msg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, msg string) error {
	logger.WithError(err).Error(msg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(msg))
}

// SendResult общий разбор ответа обработчика (hMsg, err)
func (c *BaseAPIController) SendResult(ctx *fiber.Ctx, data interface{}, hMsg string, err error, errMsg string) error {
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, errMsg)
	}
	if hMsg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// FormFileBody содержимое файла из multipart поля
func (c *BaseAPIController) FormFileBody(ctx *fiber.Ctx, field string) ([]byte, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return nil, errors.New("файл не передан")
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("ошибка при получении файла")
		return nil, errors.New("не удалось прочитать файл")
	}
	defer buffer.Close()
	body, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("ошибка при загрузке файла")
		return nil, errors.New("не удалось прочитать файл")
	}
	return body, nil
}

func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, body []byte, contentType, fileName string) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	if fileName != "" {
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	}
	return ctx.Send(body)
}
