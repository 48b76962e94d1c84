package suspensionhandler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	employeestore "hr-evaluation-backend/lib/employee/store"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	suspensionapimodels "hr-evaluation-backend/models/api/suspension"
	dbmodels "hr-evaluation-backend/models/db"
)

type fakeStore struct {
	recs map[string]dbmodels.Suspension
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: map[string]dbmodels.Suspension{}}
}

func (f *fakeStore) Create(rec dbmodels.Suspension) (string, error) {
	rec.ID = uuid.NewString()
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeStore) GetByID(id string) (*dbmodels.Suspension, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeStore) GetOpenByEmployee(employeeID string) (*dbmodels.Suspension, error) {
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && rec.Status.IsOpen() {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) List(filter suspensionapimodels.SuspensionFilter) ([]dbmodels.Suspension, int64, error) {
	list := []dbmodels.Suspension{}
	for _, rec := range f.recs {
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, rec)
	}
	return list, int64(len(list)), nil
}

func (f *fakeStore) ListByStatus(status models.SuspensionStatus) ([]dbmodels.Suspension, error) {
	list, _, err := f.List(suspensionapimodels.SuspensionFilter{Status: status})
	return list, err
}

func (f *fakeStore) SuspendedEmployeeIDs() ([]string, error) {
	ids := []string{}
	for _, rec := range f.recs {
		if rec.Status == models.SuspensionActive {
			ids = append(ids, rec.EmployeeID)
		}
	}
	return ids, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("запись об отстранении не найдена")
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.SuspensionStatus)
	}
	if reviewedAt, ok := updMap["reviewed_at"]; ok {
		rec.ReviewedAt = reviewedAt.(*time.Time)
	}
	if reinstatedBy, ok := updMap["reinstated_by"]; ok {
		rec.ReinstatedBy = reinstatedBy.(string)
	}
	if reinstatedAt, ok := updMap["reinstated_at"]; ok {
		rec.ReinstatedAt = reinstatedAt.(*time.Time)
	}
	f.recs[id] = rec
	return nil
}

func (f *fakeStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func (f *fakeStore) CountByStatus(status models.SuspensionStatus) (int64, error) {
	list, err := f.ListByStatus(status)
	return int64(len(list)), err
}

func newTestHandler(now time.Time) (impl, *fakeStore) {
	store := newFakeStore()
	employees := employeestore.NewMemInstance(
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "hr"}, Name: "Ольга HR", Email: "hr@company.ru", Role: models.HRRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "emp"}, Name: "Иван Петров", Email: "ivan@company.ru", Role: models.EmployeeRole, IsActive: true},
	)
	return impl{
		store:         store,
		employeeStore: employees,
		hub:           connectionhub.NewInstance(),
		now:           func() time.Time { return now },
	}, store
}

func TestSuspend(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run(`suspend and reinstate in place`, func(t *testing.T) {
		h, store := newTestHandler(now)
		id, hMsg, err := h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "emp", Reason: "нарушение", DurationDays: 7})
		require.Nil(t, err)
		require.Empty(t, hMsg)

		suspended, err := h.IsSuspended("emp")
		require.Nil(t, err)
		require.True(t, suspended)
		require.Equal(t, "Ольга HR", store.recs[id].SuspendedBy)

		hMsg, err = h.Reinstate("hr", id)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, models.SuspensionReinstated, store.recs[id].Status)
		require.Len(t, store.recs, 1)

		suspended, err = h.IsSuspended("emp")
		require.Nil(t, err)
		require.False(t, suspended)
	})

	t.Run(`only one open record per employee`, func(t *testing.T) {
		h, _ := newTestHandler(now)
		_, hMsg, err := h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "emp", Reason: "причина"})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		_, hMsg, err = h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "emp", Reason: "причина"})
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`unknown employee and self suspension`, func(t *testing.T) {
		h, _ := newTestHandler(now)
		_, hMsg, err := h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "none", Reason: "причина"})
		require.Nil(t, err)
		require.Equal(t, "сотрудник не найден", hMsg)
		_, hMsg, err = h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "hr", Reason: "причина"})
		require.Nil(t, err)
		require.Equal(t, "нельзя отстранить самого себя", hMsg)
	})

	t.Run(`pending review is not suspended`, func(t *testing.T) {
		h, _ := newTestHandler(now)
		id, _, err := h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "emp", Reason: "причина"})
		require.Nil(t, err)
		hMsg, err := h.MarkForReview(id)
		require.Nil(t, err)
		require.Empty(t, hMsg)
		suspended, err := h.IsSuspended("emp")
		require.Nil(t, err)
		require.False(t, suspended)

		hMsg, err = h.MarkForReview(id)
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)
	})

	t.Run(`permanent delete`, func(t *testing.T) {
		h, store := newTestHandler(now)
		id, _, err := h.Suspend("hr", suspensionapimodels.SuspendRequest{EmployeeID: "emp", Reason: "причина"})
		require.Nil(t, err)
		require.Nil(t, h.Delete(id))
		require.Empty(t, store.recs)
		_, hMsg, err := h.Get(id)
		require.Nil(t, err)
		require.Equal(t, "запись об отстранении не найдена", hMsg)
	})
}

func TestProcessExpired(t *testing.T) {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
	h, store := newTestHandler(now)
	store.recs["expired"] = dbmodels.Suspension{BaseModel: dbmodels.BaseModel{ID: "expired"}, EmployeeID: "emp",
		DurationDays: 3, SuspendedAt: now.AddDate(0, 0, -5), Status: models.SuspensionActive}
	store.recs["running"] = dbmodels.Suspension{BaseModel: dbmodels.BaseModel{ID: "running"}, EmployeeID: "other",
		DurationDays: 30, SuspendedAt: now.AddDate(0, 0, -5), Status: models.SuspensionActive}
	store.recs["unlimited"] = dbmodels.Suspension{BaseModel: dbmodels.BaseModel{ID: "unlimited"}, EmployeeID: "third",
		SuspendedAt: now.AddDate(-1, 0, 0), Status: models.SuspensionActive}

	moved, err := h.ProcessExpired()
	require.Nil(t, err)
	require.Equal(t, 1, moved)
	require.Equal(t, models.SuspensionPendingReview, store.recs["expired"].Status)
	require.Equal(t, models.SuspensionActive, store.recs["running"].Status)
	require.Equal(t, models.SuspensionActive, store.recs["unlimited"].Status)

	set, err := h.SuspendedSet()
	require.Nil(t, err)
	require.Equal(t, map[string]bool{"other": true, "third": true}, set)
}
