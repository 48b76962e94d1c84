package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// ErrNotify отправляет на addr сведения об ответах 5xx
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("ошибка разбора тела ответа")
		}
		msg := data.Message
		if msg == "" {
			msg = string(c.Response().Body())
		}
		method := c.Method()
		path := c.OriginalURL()
		if r := c.Route(); r != nil {
			path = r.Path
		}

		go func() {
			payload := fmt.Sprintf(`{"code":%d,"method":%q,"path":%q,"error":%q}`, statusCode, method, path, msg)
			resp, reqErr := http.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			_ = resp.Body.Close()
		}()
		return err
	}
}
