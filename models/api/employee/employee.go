package employeeapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "hr-evaluation-backend/models/api"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type EmployeeData struct {
	Name         string          `json:"name" validate:"required,max=255"`  // ФИО
	Email        string          `json:"email" validate:"required,email"`   // Email, он же логин
	PositionID   string          `json:"position_id"`                       // Должность
	DepartmentID string          `json:"department_id"`                     // Подразделение
	BranchID     string          `json:"branch_id"`                         // Филиал
	Role         models.UserRole `json:"role" validate:"required"`          // Роль
	HireDate     *time.Time      `json:"hire_date"`                         // Дата приема
	IsActive     bool            `json:"is_active"`                         // Активен
	Bio          string          `json:"bio" validate:"max=2000"`           // О себе
}

func (r EmployeeData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if !r.Role.IsValid() {
		return errors.New("указана неизвестная роль")
	}
	return nil
}

type CreateEmployee struct {
	EmployeeData
	Password string `json:"password"` // Начальный пароль
}

func (r CreateEmployee) Validate() error {
	if err := r.EmployeeData.Validate(); err != nil {
		return err
	}
	if len(r.Password) < 6 {
		return errors.New("пароль должен быть не короче 6 символов")
	}
	return nil
}

type EmployeeView struct {
	EmployeeData
	ID              string     `json:"id"`
	PositionName    string     `json:"position_name"`    // Должность
	DepartmentName  string     `json:"department_name"`  // Подразделение
	BranchName      string     `json:"branch_name"`      // Филиал
	RoleName        string     `json:"role_name"`        // Роль
	IsSuspended     bool       `json:"is_suspended"`     // Отстранен
	EffectiveActive bool       `json:"effective_active"` // Активен и не отстранен
	IsDeleted       bool       `json:"is_deleted"`       // Удален
	HasAvatar       bool       `json:"has_avatar"`       // Загружено фото
	HasSignature    bool       `json:"has_signature"`    // Загружена подпись
	CreatedAt       time.Time  `json:"created_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// EmployeeConvert suspended - сотрудник в списке отстраненных со статусом suspended
func EmployeeConvert(rec dbmodels.Employee, suspended bool) EmployeeView {
	view := EmployeeView{
		EmployeeData: EmployeeData{
			Name:         rec.Name,
			Email:        rec.Email,
			PositionID:   rec.PositionID,
			DepartmentID: rec.DepartmentID,
			BranchID:     rec.BranchID,
			Role:         rec.Role,
			HireDate:     rec.HireDate,
			IsActive:     rec.IsActive,
			Bio:          rec.Bio,
		},
		ID:              rec.ID,
		PositionName:    rec.GetPositionName(),
		DepartmentName:  rec.GetDepartmentName(),
		BranchName:      rec.GetBranchName(),
		RoleName:        rec.Role.ToHuman(),
		IsSuspended:     suspended,
		EffectiveActive: rec.IsActive && !suspended,
		IsDeleted:       rec.IsDeleted(),
		HasAvatar:       rec.Avatar != "",
		HasSignature:    rec.Signature != "",
		CreatedAt:       rec.CreatedAt,
	}
	if rec.DeletedAt.Valid {
		deletedAt := rec.DeletedAt.Time
		view.DeletedAt = &deletedAt
	}
	return view
}

type EmployeeFilter struct {
	apimodels.Pagination
	Search         string          `json:"search"`          // Поиск по ФИО и email
	DepartmentID   string          `json:"department_id"`   // Подразделение
	BranchID       string          `json:"branch_id"`       // Филиал
	PositionID     string          `json:"position_id"`     // Должность
	Role           models.UserRole `json:"role"`            // Роль
	ActiveOnly     bool            `json:"active_only"`     // Только активные и не отстраненные
	IncludeDeleted bool            `json:"include_deleted"` // Включая удаленных
	Sort           EmployeeSort    `json:"sort"`            // Сортировка
}

type EmployeeSort struct {
	NameDesc     *bool `json:"name_desc"`      // ФИО, порядок сортировки false = ASC/ true = DESC / nil = нет
	HireDateDesc *bool `json:"hire_date_desc"` // Дата приема, порядок сортировки false = ASC/ true = DESC / nil = нет
}

type EmployeeDelete struct {
	Password string `json:"password"` // Пароль текущего пользователя для подтверждения
}

func (r EmployeeDelete) Validate() error {
	if r.Password == "" {
		return errors.New("для удаления сотрудника введите пароль")
	}
	return nil
}
