package dbmodels

import "github.com/pkg/errors"

type Department struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
	Code string `gorm:"type:varchar(50)"`
}

func (d *Department) Validate() error {
	if d.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}
