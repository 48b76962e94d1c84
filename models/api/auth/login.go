package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type LoginResponse struct {
	Token string      `json:"token"` // JWT токен
	User  CurrentUser `json:"user"`  // Текущий пользователь
}

type CurrentUser struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           models.UserRole `json:"role"`
	RoleName       string          `json:"role_name"`
	PositionName   string          `json:"position_name"`
	DepartmentName string          `json:"department_name"`
	BranchName     string          `json:"branch_name"`
	HasAvatar      bool            `json:"has_avatar"`
}

func CurrentUserConvert(rec dbmodels.Employee) CurrentUser {
	return CurrentUser{
		ID:             rec.ID,
		Name:           rec.Name,
		Email:          rec.Email,
		Role:           rec.Role,
		RoleName:       rec.Role.ToHuman(),
		PositionName:   rec.GetPositionName(),
		DepartmentName: rec.GetDepartmentName(),
		BranchName:     rec.GetBranchName(),
		HasAvatar:      rec.Avatar != "",
	}
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"` // Текущий пароль
	NewPassword     string `json:"new_password"`     // Новый пароль
}

func (r PasswordChange) Validate() error {
	if r.CurrentPassword == "" {
		return errors.New("не указан текущий пароль")
	}
	if len(r.NewPassword) < 6 {
		return errors.New("новый пароль должен быть не короче 6 символов")
	}
	return nil
}

// PasswordConfirm подтверждение паролем необратимых действий
type PasswordConfirm struct {
	Password string `json:"password"` // Пароль текущего пользователя
}

func (r PasswordConfirm) Validate() error {
	if r.Password == "" {
		return errors.New("для подтверждения действия введите пароль")
	}
	return nil
}
