package apimodels

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Записей на странице
	Page  int `json:"page"`  // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

type IDs struct {
	IDs []string `json:"ids"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var tagMessages = map[string]string{
	"required": "не заполнено поле «%s»",
	"email":    "некорректный email в поле «%s»",
	"min":      "слишком короткое значение поля «%s»",
	"max":      "слишком длинное значение поля «%s»",
	"gte":      "значение поля «%s» меньше допустимого",
	"lte":      "значение поля «%s» больше допустимого",
	"oneof":    "недопустимое значение поля «%s»",
}

// ValidateStruct проверяет теги validate и возвращает первую ошибку в читаемом виде
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}
	fieldErr := validationErrors[0]
	field := toSnake(fieldErr.Field())
	if tpl, ok := tagMessages[fieldErr.Tag()]; ok {
		return errors.Errorf(tpl, field)
	}
	return errors.Errorf("некорректное значение поля «%s»", field)
}

func toSnake(name string) string {
	var sb strings.Builder
	for idx, r := range name {
		if r >= 'A' && r <= 'Z' {
			if idx > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
