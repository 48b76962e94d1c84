package dbmodels

type Branch struct {
	BaseModel
	Code    string `gorm:"type:varchar(50);uniqueIndex"`
	Name    string `gorm:"type:varchar(255)"`
	Address string `gorm:"type:varchar(500)"`
}
