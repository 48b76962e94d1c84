package submissionhandler

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	employeestore "hr-evaluation-backend/lib/employee/store"
	"hr-evaluation-backend/lib/evaluation/approval"
	filestorage "hr-evaluation-backend/lib/file-storage"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type fakeStore struct {
	mu   sync.Mutex
	recs map[string]dbmodels.Submission
}

func (f *fakeStore) Create(rec dbmodels.Submission) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) List(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) ([]dbmodels.Submission, int64, error) {
	list, err := f.ListAll(filter, policy)
	return list, int64(len(list)), err
}

func (f *fakeStore) ListAll(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) ([]dbmodels.Submission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.Submission{}
	for _, rec := range f.recs {
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.EvaluatorID != "" && rec.EvaluatorID != filter.EvaluatorID {
			continue
		}
		if filter.Status != "" && approval.DeriveWithPolicy(rec.Signatures(), policy) != filter.Status {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].SubmittedAt.After(list[b].SubmittedAt) })
	return list, nil
}

func (f *fakeStore) Save(rec dbmodels.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs[rec.ID] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.recs, id)
	return nil
}

type fakeSeen struct {
	seen map[string]map[string]bool
}

func (f *fakeSeen) MarkSeen(userID string, ids []string) error {
	if f.seen[userID] == nil {
		f.seen[userID] = map[string]bool{}
	}
	for _, id := range ids {
		f.seen[userID][id] = true
	}
	return nil
}

func (f *fakeSeen) SeenSet(userID string) (map[string]bool, error) {
	return f.seen[userID], nil
}

type fakeHistory struct {
	mu   sync.Mutex
	recs []dbmodels.SubmissionHistory
}

func (f *fakeHistory) Save(rec dbmodels.SubmissionHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeHistory) List(submissionID string) ([]dbmodels.SubmissionHistory, error) {
	list := []dbmodels.SubmissionHistory{}
	for _, rec := range f.recs {
		if rec.SubmissionID == submissionID {
			list = append(list, rec)
		}
	}
	return list, nil
}

type fakeAuth struct{}

func (fakeAuth) ConfirmPassword(userID, password string) (string, error) {
	if password != "secret1" {
		return "неверный пароль", nil
	}
	return "", nil
}

type fakeMail struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

type fakeFiles struct{}

func (fakeFiles) UploadEmployeeFile(ctx context.Context, employeeID string, kind filestorage.FileKind, body []byte) (string, string, error) {
	return "", "", filestorage.ErrNotConfigured
}

func (fakeFiles) GetFile(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", filestorage.ErrNotConfigured
}

func (fakeFiles) DeleteFile(ctx context.Context, key string) error {
	return nil
}

type fakeXls struct {
	exported []evaluationapimodels.SubmissionView
}

func (f *fakeXls) ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error) {
	return new(bytes.Buffer), nil
}

func (f *fakeXls) ExportSubmissionList(list []evaluationapimodels.SubmissionView) (*bytes.Buffer, error) {
	f.exported = list
	return new(bytes.Buffer), nil
}

type testEnv struct {
	h       impl
	store   *fakeStore
	seen    *fakeSeen
	history *fakeHistory
	mail    *fakeMail
	xls     *fakeXls
}

var (
	admin     = Viewer{UserID: "admin", Role: models.AdminRole}
	hr        = Viewer{UserID: "hr", Role: models.HRRole}
	evaluator = Viewer{UserID: "eval", Role: models.EvaluatorRole}
	employee  = Viewer{UserID: "emp", Role: models.EmployeeRole}
	stranger  = Viewer{UserID: "other", Role: models.EmployeeRole}
)

func newTestEnv(now time.Time, evaluatorPolicy models.ApprovalPolicy) testEnv {
	env := testEnv{
		store:   &fakeStore{recs: map[string]dbmodels.Submission{}},
		seen:    &fakeSeen{seen: map[string]map[string]bool{}},
		history: &fakeHistory{},
		mail:    &fakeMail{},
		xls:     &fakeXls{},
	}
	employees := employeestore.NewMemInstance(
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "admin"}, Name: "Админ", Email: "admin@company.ru", Role: models.AdminRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "hr"}, Name: "Ольга", Email: "hr@company.ru", Role: models.HRRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "eval"}, Name: "Анна Смирнова", Email: "anna@company.ru", Role: models.EvaluatorRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "emp"}, Name: "Иван Петров", Email: "ivan@company.ru", Role: models.EmployeeRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "other"}, Name: "Петр", Email: "petr@company.ru", Role: models.EmployeeRole, IsActive: true},
	)
	env.h = impl{
		store:           env.store,
		seenStore:       env.seen,
		historyStore:    env.history,
		employeeStore:   employees,
		auth:            fakeAuth{},
		files:           fakeFiles{},
		xls:             env.xls,
		mail:            env.mail,
		hub:             connectionhub.NewInstance(),
		evaluatorPolicy: evaluatorPolicy,
		now:             func() time.Time { return now },
	}
	return env
}

func ptr(v float64) *float64 {
	return &v
}

func allScores(value float64) models.EvaluationScores {
	s := models.EvaluationScores{}
	s.JobKnowledgeScore1, s.JobKnowledgeScore2, s.JobKnowledgeScore3 = ptr(value), ptr(value), ptr(value)
	s.QualityOfWorkScore1, s.QualityOfWorkScore2, s.QualityOfWorkScore3, s.QualityOfWorkScore4, s.QualityOfWorkScore5 = ptr(value), ptr(value), ptr(value), ptr(value), ptr(value)
	s.AdaptabilityScore1, s.AdaptabilityScore2, s.AdaptabilityScore3 = ptr(value), ptr(value), ptr(value)
	s.TeamworkScore1, s.TeamworkScore2, s.TeamworkScore3 = ptr(value), ptr(value), ptr(value)
	s.ReliabilityScore1, s.ReliabilityScore2, s.ReliabilityScore3, s.ReliabilityScore4 = ptr(value), ptr(value), ptr(value), ptr(value)
	s.EthicalScore1, s.EthicalScore2, s.EthicalScore3, s.EthicalScore4 = ptr(value), ptr(value), ptr(value), ptr(value)
	s.CustomerServiceScore1, s.CustomerServiceScore2, s.CustomerServiceScore3, s.CustomerServiceScore4, s.CustomerServiceScore5 = ptr(value), ptr(value), ptr(value), ptr(value), ptr(value)
	return s
}

func createSubmission(t *testing.T, env testEnv) string {
	id, hMsg, err := env.h.Create("eval", evaluationapimodels.SubmissionData{
		EmployeeID:     "emp",
		ReviewPeriod:   "2024 Q1",
		EvaluationData: allScores(5),
	})
	require.Nil(t, err)
	require.Empty(t, hMsg)
	return id
}

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestCreate(t *testing.T) {
	t.Run(`stores rating and notifies employee`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		rec := env.store.recs[id]
		require.Equal(t, 5.0, rec.OverallRating)
		require.Equal(t, "Иван Петров", rec.EmployeeName)
		require.Equal(t, "Анна Смирнова", rec.EvaluatorName)
		require.Equal(t, models.ApprovalPending, rec.Status)
		require.Equal(t, []string{"ivan@company.ru: Оценка ожидает подписи"}, env.mail.sent)
		require.Len(t, env.history.recs, 1)
	})

	t.Run(`self evaluation and unknown employee`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		_, hMsg, err := env.h.Create("eval", evaluationapimodels.SubmissionData{EmployeeID: "eval", EvaluationData: allScores(3)})
		require.Nil(t, err)
		require.Equal(t, "нельзя оценивать самого себя", hMsg)
		_, hMsg, err = env.h.Create("eval", evaluationapimodels.SubmissionData{EmployeeID: "none", EvaluationData: allScores(3)})
		require.Nil(t, err)
		require.Equal(t, "сотрудник не найден", hMsg)
	})
}

func TestApprovalFlow(t *testing.T) {
	t.Run(`employee only differs per call site`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyEmployeeFinal)
		id := createSubmission(t, env)
		hMsg, err := env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)
		require.Empty(t, hMsg)

		item, hMsg, err := env.h.Get(hr, id)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.ApprovalEmployeeApproved, item.Status)

		item, hMsg, err = env.h.Get(evaluator, id)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.ApprovalFullyApproved, item.Status)
		require.Equal(t, models.HighlightApproved, item.Highlight)

		require.Equal(t, []string{"ivan@company.ru: Оценка ожидает подписи", "anna@company.ru: Оценка подписана"}, env.mail.sent)
	})

	t.Run(`evaluator with default policy`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		_, err := env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)
		item, _, err := env.h.Get(evaluator, id)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalEmployeeApproved, item.Status)
	})

	t.Run(`evaluator only stays pending, both signatures fully approve`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		hMsg, err := env.h.SignAsEvaluator(context.TODO(), "eval", id, "Анна Смирнова")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		item, _, err := env.h.Get(admin, id)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalPending, item.Status)

		hMsg, err = env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		item, _, err = env.h.Get(admin, id)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalFullyApproved, item.Status)
		require.Equal(t, models.ApprovalFullyApproved, env.store.recs[id].Status)

		hMsg, err = env.h.Update(admin, id, evaluationapimodels.SubmissionUpdate{EvaluationData: allScores(1)})
		require.Nil(t, err)
		require.Equal(t, "согласованную оценку изменить нельзя", hMsg)
	})

	t.Run(`signature presence overrides stored status`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		rec := env.store.recs[id]
		rec.Status = models.ApprovalFullyApproved
		env.store.recs[id] = rec
		item, _, err := env.h.Get(hr, id)
		require.Nil(t, err)
		require.Equal(t, models.ApprovalPending, item.Status)
	})

	t.Run(`only parties can sign once`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		hMsg, err := env.h.SignAsEmployee(context.TODO(), "other", id, "Петр")
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
		hMsg, err = env.h.SignAsEvaluator(context.TODO(), "emp", id, "Иван")
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)

		hMsg, err = env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		hMsg, err = env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)
		require.Equal(t, "оценка уже подписана сотрудником", hMsg)
	})

	t.Run(`concurrent signing is serialized`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
			require.Nil(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := env.h.SignAsEvaluator(context.TODO(), "eval", id, "Анна Смирнова")
			require.Nil(t, err)
		}()
		wg.Wait()
		rec := env.store.recs[id]
		require.NotEmpty(t, rec.EmployeeSignature)
		require.NotEmpty(t, rec.EvaluatorSignature)
		require.Equal(t, models.ApprovalFullyApproved, rec.Status)
	})
}

func TestListAndHighlight(t *testing.T) {
	env := newTestEnv(now, models.PolicyDualSignature)
	id := createSubmission(t, env)

	list, rowCount, err := env.h.List(hr, evaluationapimodels.SubmissionFilter{})
	require.Nil(t, err)
	require.Equal(t, int64(1), rowCount)
	require.Equal(t, models.HighlightNew, list[0].Highlight)
	require.Equal(t, 5.0, list[0].OverallRating)
	require.Len(t, list[0].Categories, len(models.RubricCategories))

	require.Nil(t, env.h.MarkSeen("hr", []string{id}))
	list, _, err = env.h.List(hr, evaluationapimodels.SubmissionFilter{})
	require.Nil(t, err)
	require.Equal(t, models.HighlightOld, list[0].Highlight)

	list, _, err = env.h.List(stranger, evaluationapimodels.SubmissionFilter{})
	require.Nil(t, err)
	require.Empty(t, list)

	list, _, err = env.h.List(employee, evaluationapimodels.SubmissionFilter{Status: models.ApprovalPending})
	require.Nil(t, err)
	require.Len(t, list, 1)

	_, hMsg, err := env.h.Get(stranger, id)
	require.Nil(t, err)
	require.Equal(t, "нет доступа к оценке", hMsg)
}

func TestUpdateDelete(t *testing.T) {
	t.Run(`update rescoring resets signatures`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		_, err := env.h.SignAsEmployee(context.TODO(), "emp", id, "Иван Петров")
		require.Nil(t, err)

		hMsg, err := env.h.Update(employee, id, evaluationapimodels.SubmissionUpdate{EvaluationData: allScores(1)})
		require.Nil(t, err)
		require.Equal(t, "изменять оценку может только ее автор", hMsg)

		hMsg, err = env.h.Update(evaluator, id, evaluationapimodels.SubmissionUpdate{ReviewPeriod: "2024 Q2", EvaluationData: allScores(2)})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec := env.store.recs[id]
		require.Equal(t, 2.0, rec.OverallRating)
		require.Empty(t, rec.EmployeeSignature)
		require.Nil(t, rec.EmployeeApprovedAt)

		history, hMsg, err := env.h.History(hr, id)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Len(t, history, 3)
	})

	t.Run(`password gated delete`, func(t *testing.T) {
		env := newTestEnv(now, models.PolicyDualSignature)
		id := createSubmission(t, env)
		hMsg, err := env.h.Delete(hr, id, "wrong")
		require.Nil(t, err)
		require.Equal(t, "неверный пароль", hMsg)
		require.Len(t, env.store.recs, 1)

		hMsg, err = env.h.Delete(employee, id, "secret1")
		require.Nil(t, err)
		require.Equal(t, "удалить оценку может только ее автор", hMsg)

		hMsg, err = env.h.Delete(evaluator, id, "secret1")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Empty(t, env.store.recs)
	})
}

func TestExports(t *testing.T) {
	env := newTestEnv(now, models.PolicyDualSignature)
	id := createSubmission(t, env)

	_, err := env.h.ExportXls(hr, evaluationapimodels.SubmissionFilter{})
	require.Nil(t, err)
	require.Len(t, env.xls.exported, 1)

	body, hMsg, err := env.h.ExportPdf(context.TODO(), hr, id)
	require.Nil(t, err)
	require.Empty(t, hMsg)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}
