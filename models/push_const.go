package models

// PushCode код события инвалидации данных на клиенте
type PushCode string

const (
	PushEmployeesChanged     PushCode = "employees_changed"
	PushSubmissionsChanged   PushCode = "submissions_changed"
	PushSuspensionsChanged   PushCode = "suspensions_changed"
	PushRegistrationsChanged PushCode = "registrations_changed"
	PushDictChanged          PushCode = "dict_changed"
)
