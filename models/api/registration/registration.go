package registrationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type RegistrationRequest struct {
	Name         string          `json:"name" validate:"required,max=255"` // ФИО
	Email        string          `json:"email" validate:"required,email"`  // Email
	Password     string          `json:"password" validate:"required,min=6"`
	PositionID   string          `json:"position_id"`   // Должность
	DepartmentID string          `json:"department_id"` // Подразделение
	BranchID     string          `json:"branch_id"`     // Филиал
	Role         models.UserRole `json:"role"`          // Запрашиваемая роль, по умолчанию сотрудник
}

func (r RegistrationRequest) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if r.Role != "" && !r.Role.IsValid() {
		return errors.New("указана неизвестная роль")
	}
	if r.Role == models.AdminRole {
		return errors.New("регистрация администратора недоступна")
	}
	return nil
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"max=2000"` // Причина отказа
}

func (r RejectRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type RegistrationView struct {
	ID             string                    `json:"id"`
	Name           string                    `json:"name"`
	Email          string                    `json:"email"`
	PositionID     string                    `json:"position_id"`
	PositionName   string                    `json:"position_name"`
	DepartmentID   string                    `json:"department_id"`
	DepartmentName string                    `json:"department_name"`
	BranchID       string                    `json:"branch_id"`
	BranchName     string                    `json:"branch_name"`
	Role           models.UserRole           `json:"role"`
	Status         models.RegistrationStatus `json:"status"`
	StatusName     string                    `json:"status_name"`
	DecidedBy      string                    `json:"decided_by"`
	DecidedAt      *time.Time                `json:"decided_at"`
	RejectReason   string                    `json:"reject_reason"`
	EmployeeID     string                    `json:"employee_id"`
	CreatedAt      time.Time                 `json:"created_at"`
}

func RegistrationConvert(rec dbmodels.Registration) RegistrationView {
	view := RegistrationView{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		PositionID:   rec.PositionID,
		DepartmentID: rec.DepartmentID,
		BranchID:     rec.BranchID,
		Role:         rec.Role,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		DecidedBy:    rec.DecidedBy,
		DecidedAt:    rec.DecidedAt,
		RejectReason: rec.RejectReason,
		EmployeeID:   rec.EmployeeID,
		CreatedAt:    rec.CreatedAt,
	}
	if rec.Position != nil {
		view.PositionName = rec.Position.Name
	}
	if rec.Department != nil {
		view.DepartmentName = rec.Department.Name
	}
	if rec.Branch != nil {
		view.BranchName = rec.Branch.Name
	}
	return view
}
