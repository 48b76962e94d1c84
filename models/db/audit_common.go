package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// EntityChanges запись журнала изменений оценки
type EntityChanges struct {
	Description string         `json:"description"`
	Data        []FieldChanges `json:"data"`
}

type FieldChanges struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value"`
	NewValue any    `json:"new_value"`
}

// AddChange одинаковые значения не пишутся
func (j *EntityChanges) AddChange(field string, oldValue, newValue any) {
	if oldValue == newValue {
		return
	}
	j.Data = append(j.Data, FieldChanges{
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	})
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	var body []byte
	switch v := value.(type) {
	case []byte:
		body = v
	case string:
		body = []byte(v)
	case nil:
		return nil
	default:
		return errors.Errorf("неподдерживаемый тип журнала изменений: %T", value)
	}
	return json.Unmarshal(body, j)
}
