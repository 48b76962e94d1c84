package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	EmployeesModule     Module = "EMPLOYEES"
	EvaluationsModule   Module = "EVALUATIONS"
	SuspensionsModule   Module = "SUSPENSIONS"
	RegistrationsModule Module = "REGISTRATIONS"
	DashboardModule     Module = "DASHBOARD"
	DictModule          Module = "DICT"
	ProfileModule       Module = "PROFILE"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	SignPermission   Permission = "SIGN"
	DeletePermission Permission = "DELETE"
	ExportPermission Permission = "EXPORT"
)
