package dashboardhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	employeestore "hr-evaluation-backend/lib/employee/store"
	submissionhandler "hr-evaluation-backend/lib/submission"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type fakeDepartments struct {
	recs []dbmodels.Department
}

func (f fakeDepartments) Create(rec dbmodels.Department) (string, error) { return rec.ID, nil }
func (f fakeDepartments) GetByID(id string) (*dbmodels.Department, error) {
	return nil, nil
}
func (f fakeDepartments) List(name string) ([]dbmodels.Department, error) { return f.recs, nil }
func (f fakeDepartments) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f fakeDepartments) Delete(id string) error { return nil }
func (f fakeDepartments) Count() (int64, error)  { return int64(len(f.recs)), nil }

type fakeRegistrations struct {
	pending int64
}

func (f fakeRegistrations) Create(rec dbmodels.Registration) (string, error) { return "", nil }
func (f fakeRegistrations) GetByID(id string) (*dbmodels.Registration, error) {
	return nil, nil
}
func (f fakeRegistrations) ListByStatus(statuses ...models.RegistrationStatus) ([]dbmodels.Registration, error) {
	return nil, nil
}
func (f fakeRegistrations) FindPendingByEmail(email string) (*dbmodels.Registration, error) {
	return nil, nil
}
func (f fakeRegistrations) Update(id string, updMap map[string]interface{}) error { return nil }
func (f fakeRegistrations) CountByStatus(status models.RegistrationStatus) (int64, error) {
	if status == models.RegistrationPending {
		return f.pending, nil
	}
	return 0, nil
}

type fakeSuspensions struct {
	set map[string]bool
}

func (f fakeSuspensions) SuspendedSet() (map[string]bool, error) { return f.set, nil }

type fakeSubmissions struct {
	list    []evaluationapimodels.SubmissionView
	viewers []submissionhandler.Viewer
}

func (f *fakeSubmissions) ListAll(viewer submissionhandler.Viewer, filter evaluationapimodels.SubmissionFilter) ([]evaluationapimodels.SubmissionView, error) {
	f.viewers = append(f.viewers, viewer)
	list := []evaluationapimodels.SubmissionView{}
	for _, item := range f.list {
		if viewer.Role == models.EvaluatorRole && item.EvaluatorID != viewer.UserID {
			continue
		}
		list = append(list, item)
	}
	return list, nil
}

func newTestHandler() (impl, *fakeSubmissions) {
	employees := employeestore.NewMemInstance(
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "e1"}, Name: "Иван", Email: "e1@company.ru", DepartmentID: "sales", IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "e2"}, Name: "Петр", Email: "e2@company.ru", DepartmentID: "sales", IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "e3"}, Name: "Ольга", Email: "e3@company.ru", DepartmentID: "it", IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "e4"}, Name: "Анна", Email: "e4@company.ru", DepartmentID: "it", IsActive: false},
	)
	employees.Suspended["e2"] = true
	submissions := &fakeSubmissions{list: []evaluationapimodels.SubmissionView{
		{ID: "s1", EmployeeID: "e1", EmployeeName: "Иван", DepartmentName: "Продажи", EvaluatorID: "ev", OverallRating: 4.5, Status: models.ApprovalFullyApproved, Highlight: models.HighlightApproved},
		{ID: "s2", EmployeeID: "e1", EmployeeName: "Иван", DepartmentName: "Продажи", EvaluatorID: "ev", OverallRating: 3.5, Status: models.ApprovalPending, Highlight: models.HighlightNew},
		{ID: "s3", EmployeeID: "e3", EmployeeName: "Ольга", DepartmentName: "ИТ", EvaluatorID: "other", OverallRating: 2.0, Status: models.ApprovalEmployeeApproved, Highlight: models.HighlightOld},
	}}
	return impl{
		employeeStore: employees,
		departmentStore: fakeDepartments{recs: []dbmodels.Department{
			{BaseModel: dbmodels.BaseModel{ID: "it"}, Name: "ИТ"},
			{BaseModel: dbmodels.BaseModel{ID: "sales"}, Name: "Продажи"},
		}},
		registrationStore: fakeRegistrations{pending: 2},
		suspensions:       fakeSuspensions{set: map[string]bool{"e2": true}},
		submissions:       submissions,
	}, submissions
}

func TestAdmin(t *testing.T) {
	h, _ := newTestHandler()
	result, err := h.Admin("admin")
	require.Nil(t, err)
	require.Equal(t, 4, result.EmployeesTotal)
	require.Equal(t, 2, result.EmployeesActive)
	require.Equal(t, 1, result.EmployeesSuspended)
	require.Equal(t, 2, result.PendingRegistrations)
	require.Equal(t, 3, result.SubmissionsTotal)
	require.Equal(t, 1, result.SubmissionsByStatus[models.ApprovalPending])
	require.Equal(t, 1, result.SubmissionsByStatus[models.ApprovalFullyApproved])
	require.Equal(t, 3.3, result.AverageRating)
	require.Len(t, result.Departments, 2)
	require.Equal(t, "ИТ", result.Departments[0].DepartmentName)
	require.Equal(t, 2, result.Departments[0].Employees)
	require.Equal(t, 1, result.Departments[0].Evaluations)
	require.Equal(t, 4.0, result.Departments[1].AverageRating)

	t.Run(`deleted employee not counted as suspended`, func(t *testing.T) {
		h, _ := newTestHandler()
		store := h.employeeStore.(*employeestore.MemStore)
		require.Nil(t, store.Delete("e2", "admin"))

		result, err := h.Admin("admin")
		require.Nil(t, err)
		require.Equal(t, 0, result.EmployeesSuspended)
		require.Equal(t, 1, result.EmployeesDeleted)
	})
}

func TestHR(t *testing.T) {
	h, submissions := newTestHandler()
	result, err := h.HR("hr")
	require.Nil(t, err)
	require.Equal(t, models.HRRole, submissions.viewers[0].Role)
	require.Len(t, result.TopPerformers, 2)
	require.Equal(t, "e1", result.TopPerformers[0].EmployeeID)
	require.Equal(t, 4.0, result.TopPerformers[0].AverageRating)
	require.Equal(t, 2, result.TopPerformers[0].Evaluations)
	require.Equal(t, "e3", result.NeedsAttention[0].EmployeeID)
	require.Len(t, result.RecentSubmissions, 3)
	require.Equal(t, 1, result.UnseenCount)
}

func TestEvaluator(t *testing.T) {
	h, submissions := newTestHandler()
	result, err := h.Evaluator("ev")
	require.Nil(t, err)
	require.Equal(t, submissionhandler.Viewer{UserID: "ev", Role: models.EvaluatorRole}, submissions.viewers[0])
	require.Equal(t, 2, result.SubmissionsTotal)
	require.Equal(t, 1, result.EmployeesEvaluated)
	require.Equal(t, 4.0, result.AverageRating)
	require.Equal(t, 1, result.UnseenCount)
}
