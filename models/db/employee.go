package dbmodels

import (
	"time"

	"gorm.io/gorm"
	"hr-evaluation-backend/models"
)

type Employee struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	Password     string `gorm:"type:varchar(128)"`
	PositionID   string `gorm:"type:varchar(36);index"`
	Position     *Position
	DepartmentID string `gorm:"type:varchar(36);index"`
	Department   *Department
	BranchID     string `gorm:"type:varchar(36);index"`
	Branch       *Branch
	Role         models.UserRole `gorm:"type:varchar(50)"`
	HireDate     *time.Time      `gorm:"type:date"`
	IsActive     bool
	Avatar       string `gorm:"type:varchar(255)"`
	Bio          string
	Signature    string `gorm:"type:varchar(255)"`
	LastLogin    *time.Time
	DeletedBy    string         `gorm:"type:varchar(36)"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (r Employee) IsDeleted() bool {
	return r.DeletedAt.Valid
}

func (r Employee) GetPositionName() string {
	if r.Position == nil {
		return ""
	}
	return r.Position.Name
}

func (r Employee) GetDepartmentName() string {
	if r.Department == nil {
		return ""
	}
	return r.Department.Name
}

func (r Employee) GetBranchName() string {
	if r.Branch == nil {
		return ""
	}
	return r.Branch.Name
}
