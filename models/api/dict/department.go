package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "hr-evaluation-backend/models/db"
)

type DepartmentData struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type DepartmentView struct {
	DepartmentData
	ID string `json:"id"`
}

func (c DepartmentData) Validate() error {
	if c.Name == "" {
		return errors.New("не указано название подразделения")
	}
	return nil
}

func DepartmentConvert(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		DepartmentData: DepartmentData{
			Name: rec.Name,
			Code: rec.Code,
		},
		ID: rec.ID,
	}
}

// DictFind поиск по справочнику
type DictFind struct {
	Name string `json:"name"`
}
