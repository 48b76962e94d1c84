package registrationhandler

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	employeestore "hr-evaluation-backend/lib/employee/store"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	registrationapimodels "hr-evaluation-backend/models/api/registration"
	dbmodels "hr-evaluation-backend/models/db"
)

type fakeStore struct {
	mu   sync.Mutex
	recs map[string]dbmodels.Registration
}

func (f *fakeStore) Create(rec dbmodels.Registration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) ListByStatus(statuses ...models.RegistrationStatus) ([]dbmodels.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.Registration{}
	for _, rec := range f.recs {
		for _, status := range statuses {
			if rec.Status == status {
				list = append(list, rec)
			}
		}
	}
	sort.Slice(list, func(a, b int) bool { return list[a].Email < list[b].Email })
	return list, nil
}

func (f *fakeStore) FindPendingByEmail(email string) (*dbmodels.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.recs {
		if rec.Email == email && rec.Status == models.RegistrationPending {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.recs[id]
	if !ok {
		return nil
	}
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.RegistrationStatus)
		case "decided_by":
			rec.DecidedBy = value.(string)
		case "decided_at":
			decidedAt := value.(time.Time)
			rec.DecidedAt = &decidedAt
		case "employee_id":
			rec.EmployeeID = value.(string)
		case "reject_reason":
			rec.RejectReason = value.(string)
		}
	}
	f.recs[id] = rec
	return nil
}

func (f *fakeStore) CountByStatus(status models.RegistrationStatus) (int64, error) {
	list, _ := f.ListByStatus(status)
	return int64(len(list)), nil
}

type fakeMail struct {
	sent []string
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

type testEnv struct {
	h         impl
	store     *fakeStore
	employees *employeestore.MemStore
	mail      *fakeMail
}

func newTestEnv() testEnv {
	env := testEnv{
		store: &fakeStore{recs: map[string]dbmodels.Registration{}},
		employees: employeestore.NewMemInstance(
			dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "admin"}, Name: "Админ", Email: "admin@company.ru", Role: models.AdminRole, IsActive: true},
		),
		mail: &fakeMail{},
	}
	env.h = impl{
		store:         env.store,
		employeeStore: env.employees,
		mail:          env.mail,
		hub:           connectionhub.NewInstance(),
		now:           func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	return env
}

func request(email string) registrationapimodels.RegistrationRequest {
	return registrationapimodels.RegistrationRequest{
		Name:     " Мария Иванова ",
		Email:    email,
		Password: "secret1",
	}
}

func TestSubmit(t *testing.T) {
	t.Run(`stores hashed password and default role`, func(t *testing.T) {
		env := newTestEnv()
		id, hMsg, err := env.h.Submit(request(" Maria@Company.ru "))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec := env.store.recs[id]
		require.Equal(t, "maria@company.ru", rec.Email)
		require.Equal(t, "Мария Иванова", rec.Name)
		require.Equal(t, models.EmployeeRole, rec.Role)
		require.Equal(t, models.RegistrationPending, rec.Status)
		require.NotEqual(t, "secret1", rec.Password)
		require.True(t, authutils.CheckPassword(rec.Password, "secret1"))
	})

	t.Run(`email must be unique`, func(t *testing.T) {
		env := newTestEnv()
		_, hMsg, err := env.h.Submit(request("admin@company.ru"))
		require.Nil(t, err)
		require.Equal(t, "сотрудник с таким email уже существует", hMsg)

		_, hMsg, err = env.h.Submit(request("maria@company.ru"))
		require.Nil(t, err)
		require.Empty(t, hMsg)
		_, hMsg, err = env.h.Submit(request("MARIA@company.ru"))
		require.Nil(t, err)
		require.Equal(t, "заявка с таким email уже ожидает рассмотрения", hMsg)
	})
}

func TestDecide(t *testing.T) {
	t.Run(`approve creates active employee`, func(t *testing.T) {
		env := newTestEnv()
		id, _, err := env.h.Submit(request("maria@company.ru"))
		require.Nil(t, err)

		hMsg, err := env.h.Approve("admin", id)
		require.Nil(t, err)
		require.Empty(t, hMsg)

		rec := env.store.recs[id]
		require.Equal(t, models.RegistrationApproved, rec.Status)
		require.Equal(t, "admin", rec.DecidedBy)
		require.NotNil(t, rec.DecidedAt)

		employee, err := env.employees.GetByID(rec.EmployeeID, false)
		require.Nil(t, err)
		require.NotNil(t, employee)
		require.True(t, employee.IsActive)
		require.Equal(t, models.EmployeeRole, employee.Role)
		require.True(t, authutils.CheckPassword(employee.Password, "secret1"))
		require.Equal(t, []string{"maria@company.ru: Регистрация одобрена"}, env.mail.sent)

		hMsg, err = env.h.Approve("admin", id)
		require.Nil(t, err)
		require.Equal(t, "заявка уже рассмотрена", hMsg)
	})

	t.Run(`reject keeps reason`, func(t *testing.T) {
		env := newTestEnv()
		id, _, err := env.h.Submit(request("maria@company.ru"))
		require.Nil(t, err)

		hMsg, err := env.h.Reject("admin", id, " нет в штатном расписании ")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "нет в штатном расписании", env.store.recs[id].RejectReason)
		require.Equal(t, []string{"maria@company.ru: Регистрация отклонена"}, env.mail.sent)

		pending, err := env.h.ListPending()
		require.Nil(t, err)
		require.Empty(t, pending)
		processed, err := env.h.ListProcessed("")
		require.Nil(t, err)
		require.Len(t, processed, 1)
		require.Equal(t, models.RegistrationRejected, processed[0].Status)
	})

	t.Run(`unknown registration`, func(t *testing.T) {
		env := newTestEnv()
		hMsg, err := env.h.Reject("admin", "missing", "")
		require.Nil(t, err)
		require.Equal(t, "заявка на регистрацию не найдена", hMsg)
	})
}
