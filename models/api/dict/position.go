package dictapimodels

import dbmodels "hr-evaluation-backend/models/db"

type PositionView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}

func PositionConvert(rec dbmodels.Position) PositionView {
	return PositionView{
		ID:           rec.ID,
		Name:         rec.Name,
		DepartmentID: rec.DepartmentID,
	}
}

type PositionFind struct {
	Name         string `json:"name"`
	DepartmentID string `json:"department_id"`
}
