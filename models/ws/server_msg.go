package wsmodels

import "hr-evaluation-backend/models"

// ServerMessage событие инвалидации: клиент перечитывает данные по коду события
type ServerMessage struct {
	ToUserID string          `json:"-"`
	Time     string          `json:"time"`
	Code     models.PushCode `json:"code"`
	EntityID string          `json:"entity_id,omitempty"` // ID измененной записи, если известен
}
