package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

type Registration struct {
	BaseModel
	Name         string `gorm:"type:varchar(255)"`
	Email        string `gorm:"type:varchar(255);index"`
	Password     string `gorm:"type:varchar(128)"`
	PositionID   string `gorm:"type:varchar(36)"`
	Position     *Position
	DepartmentID string `gorm:"type:varchar(36)"`
	Department   *Department
	BranchID     string `gorm:"type:varchar(36)"`
	Branch       *Branch
	Role         models.UserRole           `gorm:"type:varchar(50)"`
	Status       models.RegistrationStatus `gorm:"type:varchar(50);index"`
	DecidedBy    string                    `gorm:"type:varchar(36)"`
	DecidedAt    *time.Time
	RejectReason string
	EmployeeID   string `gorm:"type:varchar(36)"`
}
