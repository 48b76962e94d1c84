package dashboardapimodels

import (
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type StatusCounts map[models.ApprovalStatus]int

type DepartmentStat struct {
	DepartmentID   string  `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	Employees      int     `json:"employees"`      // Численность
	Evaluations    int     `json:"evaluations"`    // Количество оценок
	AverageRating  float64 `json:"average_rating"` // Средняя итоговая оценка
}

type PerformerView struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	AverageRating  float64 `json:"average_rating"`
	Evaluations    int     `json:"evaluations"`
}

type AdminDashboard struct {
	EmployeesTotal       int              `json:"employees_total"`       // Всего сотрудников (без удаленных)
	EmployeesActive      int              `json:"employees_active"`      // Активные и не отстраненные
	EmployeesSuspended   int              `json:"employees_suspended"`   // Отстраненные
	EmployeesDeleted     int              `json:"employees_deleted"`     // Удаленные
	PendingRegistrations int              `json:"pending_registrations"` // Заявки на регистрацию
	SubmissionsTotal     int              `json:"submissions_total"`     // Всего оценок
	SubmissionsByStatus  StatusCounts     `json:"submissions_by_status"` // Оценки по статусам
	AverageRating        float64          `json:"average_rating"`        // Средняя итоговая оценка
	Departments          []DepartmentStat `json:"departments"`           // Разрез по подразделениям
}

type HRDashboard struct {
	SubmissionsTotal    int                                  `json:"submissions_total"`
	SubmissionsByStatus StatusCounts                         `json:"submissions_by_status"`
	AverageRating       float64                              `json:"average_rating"`
	Departments         []DepartmentStat                     `json:"departments"`
	TopPerformers       []PerformerView                      `json:"top_performers"`
	NeedsAttention      []PerformerView                      `json:"needs_attention"` // Наименьшие оценки
	RecentSubmissions   []evaluationapimodels.SubmissionView `json:"recent_submissions"`
	UnseenCount         int                                  `json:"unseen_count"` // Новые непросмотренные
}

type EvaluatorDashboard struct {
	SubmissionsTotal    int                                  `json:"submissions_total"`
	SubmissionsByStatus StatusCounts                         `json:"submissions_by_status"`
	AverageRating       float64                              `json:"average_rating"`
	EmployeesEvaluated  int                                  `json:"employees_evaluated"`
	RecentSubmissions   []evaluationapimodels.SubmissionView `json:"recent_submissions"`
	UnseenCount         int                                  `json:"unseen_count"`
}
