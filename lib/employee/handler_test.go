package employeehandler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	employeestore "hr-evaluation-backend/lib/employee/store"
	filestorage "hr-evaluation-backend/lib/file-storage"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type fakeSuspensions map[string]bool

func (f fakeSuspensions) SuspendedSet() (map[string]bool, error) {
	return f, nil
}

type fakeAuth struct{}

func (fakeAuth) ConfirmPassword(userID, password string) (string, error) {
	if password != "secret1" {
		return "неверный пароль", nil
	}
	return "", nil
}

type fakeFiles struct {
	files map[string][]byte
}

func (f *fakeFiles) UploadEmployeeFile(ctx context.Context, employeeID string, kind filestorage.FileKind, body []byte) (string, string, error) {
	if hMsg, _ := filestorage.CheckImage(body); hMsg != "" {
		return "", hMsg, nil
	}
	key := filestorage.ObjectKey(employeeID, kind)
	f.files[key] = body
	return key, "", nil
}

func (f *fakeFiles) GetFile(ctx context.Context, key string) ([]byte, string, error) {
	return f.files[key], "image/png", nil
}

func (f *fakeFiles) DeleteFile(ctx context.Context, key string) error {
	delete(f.files, key)
	return nil
}

type fakeXls struct {
	exported []employeeapimodels.EmployeeView
}

func (f *fakeXls) ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error) {
	f.exported = list
	return new(bytes.Buffer), nil
}

func (f *fakeXls) ExportSubmissionList(list []evaluationapimodels.SubmissionView) (*bytes.Buffer, error) {
	return new(bytes.Buffer), nil
}

func newTestHandler() (impl, *employeestore.MemStore, *fakeXls) {
	store := employeestore.NewMemInstance(
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "admin"}, Name: "Админ", Email: "admin@company.ru", Role: models.AdminRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "hr"}, Name: "Ольга", Email: "hr@company.ru", Role: models.HRRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "emp"}, Name: "Иван", Email: "ivan@company.ru", Role: models.EmployeeRole, IsActive: true},
		dbmodels.Employee{BaseModel: dbmodels.BaseModel{ID: "off"}, Name: "Петр", Email: "petr@company.ru", Role: models.EmployeeRole},
	)
	store.Suspended["emp"] = true
	xls := &fakeXls{}
	return impl{
		store:       store,
		suspensions: fakeSuspensions{"emp": true},
		auth:        fakeAuth{},
		files:       &fakeFiles{files: map[string][]byte{}},
		xls:         xls,
		hub:         connectionhub.NewInstance(),
	}, store, xls
}

func TestEffectiveActive(t *testing.T) {
	h, _, _ := newTestHandler()
	list, rowCount, err := h.List(employeeapimodels.EmployeeFilter{})
	require.Nil(t, err)
	require.Equal(t, int64(4), rowCount)
	byID := map[string]employeeapimodels.EmployeeView{}
	for _, item := range list {
		byID[item.ID] = item
	}
	require.True(t, byID["hr"].EffectiveActive)
	require.True(t, byID["emp"].IsActive)
	require.True(t, byID["emp"].IsSuspended)
	require.False(t, byID["emp"].EffectiveActive)
	require.False(t, byID["off"].EffectiveActive)

	list, _, err = h.List(employeeapimodels.EmployeeFilter{ActiveOnly: true})
	require.Nil(t, err)
	require.Len(t, list, 2)
}

func TestCreateUpdate(t *testing.T) {
	t.Run(`duplicate email`, func(t *testing.T) {
		h, _, _ := newTestHandler()
		_, hMsg, err := h.Create(models.HRRole, employeeapimodels.CreateEmployee{
			EmployeeData: employeeapimodels.EmployeeData{Name: "Новый", Email: "IVAN@company.ru", Role: models.EmployeeRole},
			Password:     "secret1",
		})
		require.Nil(t, err)
		require.Equal(t, "сотрудник с таким email уже существует", hMsg)
	})

	t.Run(`hr cannot assign admin`, func(t *testing.T) {
		h, _, _ := newTestHandler()
		_, hMsg, err := h.Create(models.HRRole, employeeapimodels.CreateEmployee{
			EmployeeData: employeeapimodels.EmployeeData{Name: "Новый", Email: "new@company.ru", Role: models.AdminRole},
			Password:     "secret1",
		})
		require.Nil(t, err)
		require.NotEmpty(t, hMsg)

		hMsg, err = h.Update(models.HRRole, "admin", employeeapimodels.EmployeeData{Name: "Админ", Email: "admin@company.ru", Role: models.AdminRole})
		require.Nil(t, err)
		require.Equal(t, "изменять администратора может только администратор", hMsg)
	})

	t.Run(`create and update`, func(t *testing.T) {
		h, store, _ := newTestHandler()
		id, hMsg, err := h.Create(models.AdminRole, employeeapimodels.CreateEmployee{
			EmployeeData: employeeapimodels.EmployeeData{Name: " Новый ", Email: "new@company.ru", Role: models.EvaluatorRole, IsActive: true},
			Password:     "secret1",
		})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec, err := store.GetByID(id, false)
		require.Nil(t, err)
		require.Equal(t, "Новый", rec.Name)
		require.NotEqual(t, "secret1", rec.Password)

		hMsg, err = h.Update(models.HRRole, id, employeeapimodels.EmployeeData{Name: "Новый", Email: "new@company.ru", Role: models.EvaluatorRole, Bio: "о себе"})
		require.Nil(t, err)
		require.Empty(t, hMsg)
		rec, err = store.GetByID(id, false)
		require.Nil(t, err)
		require.Equal(t, "о себе", rec.Bio)
		require.False(t, rec.IsActive)
	})
}

func TestGet(t *testing.T) {
	h, _, _ := newTestHandler()

	t.Run(`existing employee`, func(t *testing.T) {
		item, hMsg, err := h.Get("emp")
		require.Nil(t, err)
		require.Empty(t, hMsg)
		require.Equal(t, "emp", item.ID)
		require.True(t, item.IsSuspended)
	})

	t.Run(`unknown id is a user error`, func(t *testing.T) {
		_, hMsg, err := h.Get("missing")
		require.Nil(t, err)
		require.Equal(t, "сотрудник не найден", hMsg)
	})
}

func TestDeleteRestore(t *testing.T) {
	h, store, _ := newTestHandler()

	hMsg, err := h.Delete("admin", "off", "wrong")
	require.Nil(t, err)
	require.Equal(t, "неверный пароль", hMsg)

	hMsg, err = h.Delete("admin", "admin", "secret1")
	require.Nil(t, err)
	require.NotEmpty(t, hMsg)

	hMsg, err = h.Delete("admin", "off", "secret1")
	require.Nil(t, err)
	require.Empty(t, hMsg)
	rec, err := store.GetByID("off", true)
	require.Nil(t, err)
	require.True(t, rec.IsDeleted())
	require.Equal(t, "admin", rec.DeletedBy)

	deleted, err := h.ListDeleted()
	require.Nil(t, err)
	require.Len(t, deleted, 1)
	require.True(t, deleted[0].IsDeleted)

	hMsg, err = h.Restore("off")
	require.Nil(t, err)
	require.Empty(t, hMsg)
	rec, err = store.GetByID("off", false)
	require.Nil(t, err)
	require.NotNil(t, rec)

	hMsg, err = h.Restore("off")
	require.Nil(t, err)
	require.Equal(t, "сотрудник не удален", hMsg)
}

func TestFiles(t *testing.T) {
	h, store, _ := newTestHandler()
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

	hMsg, err := h.UploadFile(context.TODO(), "emp", filestorage.AvatarFile, []byte("text"))
	require.Nil(t, err)
	require.NotEmpty(t, hMsg)

	hMsg, err = h.UploadFile(context.TODO(), "emp", filestorage.SignatureFile, png)
	require.Nil(t, err)
	require.Empty(t, hMsg)
	rec, err := store.GetByID("emp", false)
	require.Nil(t, err)
	require.Equal(t, "employees/emp/signature", rec.Signature)

	body, _, err := h.GetFile(context.TODO(), "emp", filestorage.SignatureFile)
	require.Nil(t, err)
	require.Equal(t, png, body)

	body, _, err = h.GetFile(context.TODO(), "emp", filestorage.AvatarFile)
	require.Nil(t, err)
	require.Nil(t, body)
}

func TestExportXls(t *testing.T) {
	h, _, xls := newTestHandler()
	_, err := h.ExportXls(employeeapimodels.EmployeeFilter{})
	require.Nil(t, err)
	require.Len(t, xls.exported, 4)
}
