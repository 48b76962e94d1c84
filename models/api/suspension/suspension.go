package suspensionapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type SuspendRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required"`     // Сотрудник
	Reason       string `json:"reason" validate:"required,max=2000"` // Причина
	DurationDays int    `json:"duration_days" validate:"gte=0,lte=3650"` // Срок в днях, 0 - бессрочно
}

func (r SuspendRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type SuspensionView struct {
	ID           string                  `json:"id"`
	EmployeeID   string                  `json:"employee_id"`
	EmployeeName string                  `json:"employee_name"`
	Email        string                  `json:"email"`
	Reason       string                  `json:"reason"`
	DurationDays int                     `json:"duration_days"`
	SuspendedBy  string                  `json:"suspended_by"`
	SuspendedAt  time.Time               `json:"suspended_at"`
	ExpiresAt    *time.Time              `json:"expires_at"`
	Status       models.SuspensionStatus `json:"status"`
	StatusName   string                  `json:"status_name"`
	ReviewedAt   *time.Time              `json:"reviewed_at"`
	ReinstatedBy string                  `json:"reinstated_by"`
	ReinstatedAt *time.Time              `json:"reinstated_at"`
}

func SuspensionConvert(rec dbmodels.Suspension) SuspensionView {
	view := SuspensionView{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		Reason:       rec.Reason,
		DurationDays: rec.DurationDays,
		SuspendedBy:  rec.SuspendedBy,
		SuspendedAt:  rec.SuspendedAt,
		ExpiresAt:    rec.ExpiresAt(),
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		ReviewedAt:   rec.ReviewedAt,
		ReinstatedBy: rec.ReinstatedBy,
		ReinstatedAt: rec.ReinstatedAt,
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.Name
		view.Email = rec.Employee.Email
	}
	return view
}

type SuspensionFilter struct {
	apimodels.Pagination
	EmployeeID string                  `json:"employee_id"` // Сотрудник
	Status     models.SuspensionStatus `json:"status"`      // Статус
}

func (r SuspensionFilter) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("указан неизвестный статус отстранения")
	}
	return nil
}
