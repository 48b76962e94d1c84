package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN"
	HRRole        UserRole = "HR"
	EvaluatorRole UserRole = "EVALUATOR"
	EmployeeRole  UserRole = "EMPLOYEE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Администратор",
	HRRole:        "HR-специалист",
	EvaluatorRole: "Оценщик",
	EmployeeRole:  "Сотрудник",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

// CanManageStaff администратор и HR управляют сотрудниками и оценками
func (r UserRole) CanManageStaff() bool {
	return r == AdminRole || r == HRRole
}

const SystemUser = "Система"
