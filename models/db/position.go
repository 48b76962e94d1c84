package dbmodels

type Position struct {
	BaseModel
	Name         string `gorm:"type:varchar(255);uniqueIndex"`
	DepartmentID string `gorm:"type:varchar(36);index"`
}
