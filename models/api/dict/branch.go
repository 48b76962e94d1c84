package dictapimodels

import dbmodels "hr-evaluation-backend/models/db"

type BranchView struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

func BranchConvert(rec dbmodels.Branch) BranchView {
	return BranchView{
		ID:      rec.ID,
		Code:    rec.Code,
		Name:    rec.Name,
		Address: rec.Address,
	}
}
