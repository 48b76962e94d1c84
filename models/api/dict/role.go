package dictapimodels

import "hr-evaluation-backend/models"

func GetRoles() []RoleView {
	return []RoleView{
		GetRole(models.AdminRole),
		GetRole(models.HRRole),
		GetRole(models.EvaluatorRole),
		GetRole(models.EmployeeRole),
	}
}

func GetRole(role models.UserRole) RoleView {
	return RoleView{
		Code: string(role),
		Name: role.ToHuman(),
	}
}

type RoleView struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
