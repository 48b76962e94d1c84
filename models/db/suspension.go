package dbmodels

import (
	"time"

	"hr-evaluation-backend/models"
)

type Suspension struct {
	BaseModel
	EmployeeID   string    `gorm:"type:varchar(36);index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID"`
	Reason       string
	DurationDays int
	SuspendedBy  string    `gorm:"type:varchar(255)"`
	SuspendedAt  time.Time `gorm:"index"`
	Status       models.SuspensionStatus `gorm:"type:varchar(50);index"`
	ReviewedAt   *time.Time
	ReinstatedBy string `gorm:"type:varchar(255)"`
	ReinstatedAt *time.Time
}

// ExpiresAt окончание срока отстранения, nil для бессрочного
func (r Suspension) ExpiresAt() *time.Time {
	if r.DurationDays <= 0 {
		return nil
	}
	expires := r.SuspendedAt.AddDate(0, 0, r.DurationDays)
	return &expires
}

func (r Suspension) IsExpired(now time.Time) bool {
	expires := r.ExpiresAt()
	return expires != nil && !now.Before(*expires)
}
