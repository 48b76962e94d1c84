package rbac

import (
	"hr-evaluation-backend/models"
)

var (
	AdminRoleSet          = []models.UserRole{models.AdminRole}
	AdminHrRoleSet        = []models.UserRole{models.AdminRole, models.HRRole}
	AdminHrEvaluatorSet   = []models.UserRole{models.AdminRole, models.HRRole, models.EvaluatorRole}
	EvaluatorRoleSet      = []models.UserRole{models.EvaluatorRole}
	AllRoles              = []models.UserRole{models.AdminRole, models.HRRole, models.EvaluatorRole, models.EmployeeRole}
	employeePathPrefix    = "/api/v1/employee"
	registrationAdminPath = "/api/v1/admin/registration"
)

func (i *impl) initRules() {
	i.profile()
	i.employees()
	i.evaluations()
	i.suspensions()
	i.registrations()
	i.dashboards()
	i.dicts()
}

func (i *impl) profile() {
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/me [get]", nil)
	i.mustRegister(models.ProfileModule, models.ViewPermission, AllRoles, "/api/v1/auth/permissions [get]", nil)
	i.mustRegister(models.ProfileModule, models.EditPermission, AllRoles, "/api/v1/auth/change_password [put]", nil)
}

func (i *impl) employees() {
	// VIEW
	i.mustRegister(models.EmployeesModule, models.ViewPermission, AdminHrEvaluatorSet, "/api/v1/employee/list [post]", nil)
	selfAllow := AllowSelfOrRoleFunc(AdminHrEvaluatorSet, employeePathPrefix)
	i.mustRegister(models.EmployeesModule, models.ViewPermission, AdminHrEvaluatorSet, "/api/v1/employee/{id} [get]", selfAllow)
	i.mustRegister(models.EmployeesModule, models.ViewPermission, AllRoles, "/api/v1/employee/{id}/avatar [get]", nil)
	i.mustRegister(models.EmployeesModule, models.ViewPermission, AllRoles, "/api/v1/employee/{id}/signature [get]", nil)
	// MANAGE
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee [post]", nil)
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee/{id} [put]", nil)
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee/{id}/restore [put]", nil)
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee/deleted [get]", nil)
	// файлы профиля меняет сам сотрудник или HR
	selfManage := AllowSelfOrRoleFunc(AdminHrRoleSet, employeePathPrefix)
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee/{id}/avatar [post]", selfManage)
	i.mustRegister(models.EmployeesModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/employee/{id}/signature [post]", selfManage)
	// DELETE
	i.mustRegister(models.EmployeesModule, models.DeletePermission, AdminHrRoleSet, "/api/v1/employee/{id} [delete]", nil)
	// EXPORT
	i.mustRegister(models.EmployeesModule, models.ExportPermission, AdminHrRoleSet, "/api/v1/employee/export [post]", nil)
}

func (i *impl) evaluations() {
	// VIEW, доступ к записи проверяется обработчиком
	i.mustRegister(models.EvaluationsModule, models.ViewPermission, AllRoles, "/api/v1/submission/list [post]", nil)
	i.mustRegister(models.EvaluationsModule, models.ViewPermission, AllRoles, "/api/v1/submission/seen [put]", nil)
	i.mustRegister(models.EvaluationsModule, models.ViewPermission, AllRoles, "/api/v1/submission/{id} [get]", nil)
	i.mustRegister(models.EvaluationsModule, models.ViewPermission, AllRoles, "/api/v1/submission/{id}/history [get]", nil)
	i.mustRegister(models.EvaluationsModule, models.ViewPermission, AllRoles, "/api/v1/submission/{id}/pdf [get]", nil)
	// CREATE/EDIT
	i.mustRegister(models.EvaluationsModule, models.CreatePermission, AdminHrEvaluatorSet, "/api/v1/submission [post]", nil)
	i.mustRegister(models.EvaluationsModule, models.EditPermission, AdminHrEvaluatorSet, "/api/v1/submission/{id} [put]", nil)
	i.mustRegister(models.EvaluationsModule, models.DeletePermission, AdminHrEvaluatorSet, "/api/v1/submission/{id} [delete]", nil)
	// SIGN
	i.mustRegister(models.EvaluationsModule, models.SignPermission, AllRoles, "/api/v1/submission/{id}/sign_employee [put]", nil)
	i.mustRegister(models.EvaluationsModule, models.SignPermission, AdminHrEvaluatorSet, "/api/v1/submission/{id}/sign_evaluator [put]", nil)
	// EXPORT
	i.mustRegister(models.EvaluationsModule, models.ExportPermission, AdminHrEvaluatorSet, "/api/v1/submission/export [post]", nil)
}

func (i *impl) suspensions() {
	i.mustRegister(models.SuspensionsModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/suspension/list [post]", nil)
	i.mustRegister(models.SuspensionsModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/suspension/{id} [get]", nil)
	i.mustRegister(models.SuspensionsModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/suspension [post]", nil)
	i.mustRegister(models.SuspensionsModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/suspension/{id}/review [put]", nil)
	i.mustRegister(models.SuspensionsModule, models.ManagePermission, AdminHrRoleSet, "/api/v1/suspension/{id}/reinstate [put]", nil)
	i.mustRegister(models.SuspensionsModule, models.DeletePermission, AdminHrRoleSet, "/api/v1/suspension/{id} [delete]", nil)
}

func (i *impl) registrations() {
	i.mustRegister(models.RegistrationsModule, models.ViewPermission, AdminRoleSet, registrationAdminPath+"/pending [get]", nil)
	i.mustRegister(models.RegistrationsModule, models.ViewPermission, AdminRoleSet, registrationAdminPath+"/processed [get]", nil)
	i.mustRegister(models.RegistrationsModule, models.ManagePermission, AdminRoleSet, registrationAdminPath+"/{id}/approve [put]", nil)
	i.mustRegister(models.RegistrationsModule, models.ManagePermission, AdminRoleSet, registrationAdminPath+"/{id}/reject [put]", nil)
}

func (i *impl) dashboards() {
	i.mustRegister(models.DashboardModule, models.ViewPermission, AdminRoleSet, "/api/v1/dashboard/admin [get]", nil)
	i.mustRegister(models.DashboardModule, models.ViewPermission, AdminHrRoleSet, "/api/v1/dashboard/hr [get]", nil)
	i.mustRegister(models.DashboardModule, models.ViewPermission, EvaluatorRoleSet, "/api/v1/dashboard/evaluator [get]", nil)
}

func (i *impl) dicts() {
	for _, dict := range []string{"department", "branch", "position"} {
		i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/"+dict+"/find [post]", nil)
		i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/"+dict+"/{id} [get]", nil)
	}
	i.mustRegister(models.DictModule, models.ViewPermission, AllRoles, "/api/v1/dict/role/list [get]", nil)
	i.mustRegister(models.DictModule, models.ManagePermission, AdminRoleSet, "/api/v1/dict/department [post]", nil)
	i.mustRegister(models.DictModule, models.ManagePermission, AdminRoleSet, "/api/v1/dict/department/{id} [put]", nil)
	i.mustRegister(models.DictModule, models.ManagePermission, AdminRoleSet, "/api/v1/dict/department/{id} [delete]", nil)
}
