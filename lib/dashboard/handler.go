package dashboardhandler

import (
	"sort"

	"github.com/pkg/errors"
	"hr-evaluation-backend/db"
	departmentstore "hr-evaluation-backend/lib/dicts/department/store"
	employeestore "hr-evaluation-backend/lib/employee/store"
	"hr-evaluation-backend/lib/evaluation/scoring"
	registrationstore "hr-evaluation-backend/lib/registration/store"
	submissionhandler "hr-evaluation-backend/lib/submission"
	suspensionhandler "hr-evaluation-backend/lib/suspension"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	"hr-evaluation-backend/models"
	dashboardapimodels "hr-evaluation-backend/models/api/dashboard"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type Provider interface {
	Admin(viewerID string) (result dashboardapimodels.AdminDashboard, err error)
	HR(viewerID string) (result dashboardapimodels.HRDashboard, err error)
	Evaluator(evaluatorID string) (result dashboardapimodels.EvaluatorDashboard, err error)
}

type suspensionSet interface {
	SuspendedSet() (map[string]bool, error)
}

type submissionLister interface {
	ListAll(viewer submissionhandler.Viewer, filter evaluationapimodels.SubmissionFilter) (list []evaluationapimodels.SubmissionView, err error)
}

const (
	performersLimit = 5
	recentLimit     = 10
)

var Instance Provider

func NewHandler() {
	instance := impl{
		employeeStore:     employeestore.NewInstance(db.DB),
		departmentStore:   departmentstore.NewInstance(db.DB),
		registrationStore: registrationstore.NewInstance(db.DB),
		suspensions:       suspensionhandler.Instance,
		submissions:       submissionhandler.Instance,
	}
	initchecker.CheckInit(
		"employeeStore", instance.employeeStore,
		"departmentStore", instance.departmentStore,
		"registrationStore", instance.registrationStore,
		"suspensions", instance.suspensions,
		"submissions", instance.submissions,
	)
	Instance = instance
}

type impl struct {
	employeeStore     employeestore.Provider
	departmentStore   departmentstore.Provider
	registrationStore registrationstore.Provider
	suspensions       suspensionSet
	submissions       submissionLister
}

func (i impl) Admin(viewerID string) (result dashboardapimodels.AdminDashboard, err error) {
	total, err := i.employeeStore.Count(false)
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета сотрудников")
	}
	active, err := i.employeeStore.Count(true)
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета активных сотрудников")
	}
	deleted, err := i.employeeStore.CountDeleted()
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета удаленных сотрудников")
	}
	suspended, err := i.activeSuspendedCount()
	if err != nil {
		return result, err
	}
	pending, err := i.registrationStore.CountByStatus(models.RegistrationPending)
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета заявок на регистрацию")
	}
	list, err := i.submissions.ListAll(submissionhandler.Viewer{UserID: viewerID, Role: models.AdminRole}, evaluationapimodels.SubmissionFilter{})
	if err != nil {
		return result, err
	}
	departments, err := i.departmentStats(list)
	if err != nil {
		return result, err
	}
	return dashboardapimodels.AdminDashboard{
		EmployeesTotal:       int(total),
		EmployeesActive:      int(active),
		EmployeesSuspended:   suspended,
		EmployeesDeleted:     int(deleted),
		PendingRegistrations: int(pending),
		SubmissionsTotal:     len(list),
		SubmissionsByStatus:  countByStatus(list),
		AverageRating:        averageRating(list),
		Departments:          departments,
	}, nil
}

func (i impl) HR(viewerID string) (result dashboardapimodels.HRDashboard, err error) {
	list, err := i.submissions.ListAll(submissionhandler.Viewer{UserID: viewerID, Role: models.HRRole}, evaluationapimodels.SubmissionFilter{})
	if err != nil {
		return result, err
	}
	departments, err := i.departmentStats(list)
	if err != nil {
		return result, err
	}
	performers := performerStats(list)
	top := make([]dashboardapimodels.PerformerView, len(performers))
	copy(top, performers)
	sort.SliceStable(top, func(a, b int) bool { return top[a].AverageRating > top[b].AverageRating })
	bottom := make([]dashboardapimodels.PerformerView, len(performers))
	copy(bottom, performers)
	sort.SliceStable(bottom, func(a, b int) bool { return bottom[a].AverageRating < bottom[b].AverageRating })
	return dashboardapimodels.HRDashboard{
		SubmissionsTotal:    len(list),
		SubmissionsByStatus: countByStatus(list),
		AverageRating:       averageRating(list),
		Departments:         departments,
		TopPerformers:       limit(top, performersLimit),
		NeedsAttention:      limit(bottom, performersLimit),
		RecentSubmissions:   limit(list, recentLimit),
		UnseenCount:         unseenCount(list),
	}, nil
}

func (i impl) Evaluator(evaluatorID string) (result dashboardapimodels.EvaluatorDashboard, err error) {
	list, err := i.submissions.ListAll(submissionhandler.Viewer{UserID: evaluatorID, Role: models.EvaluatorRole}, evaluationapimodels.SubmissionFilter{})
	if err != nil {
		return result, err
	}
	evaluated := map[string]bool{}
	for _, item := range list {
		evaluated[item.EmployeeID] = true
	}
	return dashboardapimodels.EvaluatorDashboard{
		SubmissionsTotal:    len(list),
		SubmissionsByStatus: countByStatus(list),
		AverageRating:       averageRating(list),
		EmployeesEvaluated:  len(evaluated),
		RecentSubmissions:   limit(list, recentLimit),
		UnseenCount:         unseenCount(list),
	}, nil
}

// departmentStats численность по подразделениям и оценки сотрудников подразделения
func (i impl) departmentStats(list []evaluationapimodels.SubmissionView) ([]dashboardapimodels.DepartmentStat, error) {
	departments, err := i.departmentStore.List("")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения подразделений")
	}
	counts, err := i.employeeStore.CountByDepartment()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка подсчета сотрудников по подразделениям")
	}
	headCount := make(map[string]int, len(counts))
	for _, item := range counts {
		headCount[item.DepartmentID] = int(item.RowCount)
	}
	byName := map[string][]float64{}
	for _, item := range list {
		byName[item.DepartmentName] = append(byName[item.DepartmentName], item.OverallRating)
	}
	result := make([]dashboardapimodels.DepartmentStat, 0, len(departments))
	for _, department := range departments {
		ratings := byName[department.Name]
		result = append(result, dashboardapimodels.DepartmentStat{
			DepartmentID:   department.ID,
			DepartmentName: department.Name,
			Employees:      headCount[department.ID],
			Evaluations:    len(ratings),
			AverageRating:  average(ratings),
		})
	}
	return result, nil
}

func performerStats(list []evaluationapimodels.SubmissionView) []dashboardapimodels.PerformerView {
	ratings := map[string][]float64{}
	performers := []dashboardapimodels.PerformerView{}
	for _, item := range list {
		if _, ok := ratings[item.EmployeeID]; !ok {
			performers = append(performers, dashboardapimodels.PerformerView{
				EmployeeID:     item.EmployeeID,
				EmployeeName:   item.EmployeeName,
				DepartmentName: item.DepartmentName,
			})
		}
		ratings[item.EmployeeID] = append(ratings[item.EmployeeID], item.OverallRating)
	}
	for idx := range performers {
		employeeRatings := ratings[performers[idx].EmployeeID]
		performers[idx].Evaluations = len(employeeRatings)
		performers[idx].AverageRating = average(employeeRatings)
	}
	return performers
}

func countByStatus(list []evaluationapimodels.SubmissionView) dashboardapimodels.StatusCounts {
	result := dashboardapimodels.StatusCounts{
		models.ApprovalPending:          0,
		models.ApprovalEmployeeApproved: 0,
		models.ApprovalFullyApproved:    0,
	}
	for _, item := range list {
		result[item.Status]++
	}
	return result
}

func averageRating(list []evaluationapimodels.SubmissionView) float64 {
	ratings := make([]float64, 0, len(list))
	for _, item := range list {
		ratings = append(ratings, item.OverallRating)
	}
	return average(ratings)
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return scoring.Round(sum / float64(len(values)))
}

// unseenCount оценки, которые пользователь еще не открывал
func unseenCount(list []evaluationapimodels.SubmissionView) int {
	count := 0
	for _, item := range list {
		if item.Highlight == models.HighlightNew || item.Highlight == models.HighlightRecent {
			count++
		}
	}
	return count
}

func limit[T any](list []T, size int) []T {
	if len(list) > size {
		return list[:size]
	}
	return list
}

// activeSuspendedCount отстраненные без учета удаленных сотрудников
func (i impl) activeSuspendedCount() (int, error) {
	suspended, err := i.suspensions.SuspendedSet()
	if err != nil {
		return 0, err
	}
	deletedList, err := i.employeeStore.ListDeleted()
	if err != nil {
		return 0, errors.Wrap(err, "ошибка получения удаленных сотрудников")
	}
	deleted := make(map[string]bool, len(deletedList))
	for _, rec := range deletedList {
		deleted[rec.ID] = true
	}
	count := 0
	for id, ok := range suspended {
		if ok && !deleted[id] {
			count++
		}
	}
	return count, nil
}
