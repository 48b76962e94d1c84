package employeehandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/db"
	authhandler "hr-evaluation-backend/lib/auth"
	employeestore "hr-evaluation-backend/lib/employee/store"
	xlsexport "hr-evaluation-backend/lib/export/xls"
	filestorage "hr-evaluation-backend/lib/file-storage"
	suspensionhandler "hr-evaluation-backend/lib/suspension"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error)
	Get(id string) (item employeeapimodels.EmployeeView, hMsg string, err error)
	Create(actorRole models.UserRole, request employeeapimodels.CreateEmployee) (id string, hMsg string, err error)
	Update(actorRole models.UserRole, id string, request employeeapimodels.EmployeeData) (hMsg string, err error)
	Delete(actorID, id, password string) (hMsg string, err error)
	Restore(id string) (hMsg string, err error)
	ListDeleted() (list []employeeapimodels.EmployeeView, err error)
	UploadFile(ctx context.Context, id string, kind filestorage.FileKind, body []byte) (hMsg string, err error)
	GetFile(ctx context.Context, id string, kind filestorage.FileKind) (body []byte, contentType string, err error)
	ExportXls(filter employeeapimodels.EmployeeFilter) (*bytes.Buffer, error)
}

type suspensionSet interface {
	SuspendedSet() (map[string]bool, error)
}

type passwordConfirmer interface {
	ConfirmPassword(userID, password string) (hMsg string, err error)
}

const exportPageSize = 100

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       employeestore.NewInstance(db.DB),
		suspensions: suspensionhandler.Instance,
		auth:        authhandler.Instance,
		files:       filestorage.Instance,
		xls:         xlsexport.Instance,
		hub:         connectionhub.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"suspensions", instance.suspensions,
		"auth", instance.auth,
		"files", instance.files,
		"xls", instance.xls,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store       employeestore.Provider
	suspensions suspensionSet
	auth        passwordConfirmer
	files       filestorage.Provider
	xls         xlsexport.Provider
	hub         connectionhub.Provider
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []employeeapimodels.EmployeeView, rowCount int64, err error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка сотрудников")
	}
	suspended, err := i.suspensions.SuspendedSet()
	if err != nil {
		return nil, 0, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec, suspended[rec.ID]))
	}
	return list, rowCount, nil
}

func (i impl) Get(id string) (item employeeapimodels.EmployeeView, hMsg string, err error) {
	rec, err := i.store.GetByID(id, true)
	if err != nil {
		return employeeapimodels.EmployeeView{}, "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, "сотрудник не найден", nil
	}
	suspended, err := i.suspensions.SuspendedSet()
	if err != nil {
		return employeeapimodels.EmployeeView{}, "", err
	}
	return employeeapimodels.EmployeeConvert(*rec, suspended[rec.ID]), "", nil
}

func (i impl) Create(actorRole models.UserRole, request employeeapimodels.CreateEmployee) (id string, hMsg string, err error) {
	if hMsg = checkRoleAssign(actorRole, request.Role); hMsg != "" {
		return "", hMsg, nil
	}
	hMsg, err = i.checkEmail("", request.Email)
	if err != nil || hMsg != "" {
		return "", hMsg, err
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", "", err
	}
	rec := dbmodels.Employee{
		Name:         strings.TrimSpace(request.Name),
		Email:        request.Email,
		Password:     hash,
		PositionID:   request.PositionID,
		DepartmentID: request.DepartmentID,
		BranchID:     request.BranchID,
		Role:         request.Role,
		HireDate:     request.HireDate,
		IsActive:     request.IsActive,
		Bio:          request.Bio,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания сотрудника")
	}
	log.
		WithField("employee_id", id).
		WithField("role", rec.Role).
		Info("создан сотрудник")
	i.hub.Broadcast(models.PushEmployeesChanged, "")
	return id, "", nil
}

func (i impl) Update(actorRole models.UserRole, id string, request employeeapimodels.EmployeeData) (hMsg string, err error) {
	rec, err := i.store.GetByID(id, false)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	if rec.Role == models.AdminRole && actorRole != models.AdminRole {
		return "изменять администратора может только администратор", nil
	}
	if rec.Role != request.Role {
		if hMsg = checkRoleAssign(actorRole, request.Role); hMsg != "" {
			return hMsg, nil
		}
	}
	hMsg, err = i.checkEmail(id, request.Email)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	updMap := map[string]interface{}{
		"name":          strings.TrimSpace(request.Name),
		"email":         request.Email,
		"position_id":   request.PositionID,
		"department_id": request.DepartmentID,
		"branch_id":     request.BranchID,
		"role":          request.Role,
		"hire_date":     request.HireDate,
		"is_active":     request.IsActive,
		"bio":           request.Bio,
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return "", errors.Wrap(err, "ошибка обновления сотрудника")
	}
	log.WithField("employee_id", id).Info("сотрудник обновлен")
	i.hub.Broadcast(models.PushEmployeesChanged, "")
	return "", nil
}

func (i impl) Delete(actorID, id, password string) (hMsg string, err error) {
	if actorID == id {
		return "нельзя удалить собственную учетную запись", nil
	}
	hMsg, err = i.auth.ConfirmPassword(actorID, password)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	rec, err := i.store.GetByID(id, false)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	err = i.store.Delete(id, actorID)
	if err != nil {
		return "", errors.Wrap(err, "ошибка удаления сотрудника")
	}
	log.
		WithField("employee_id", id).
		WithField("actor_id", actorID).
		Info("сотрудник удален")
	i.hub.Broadcast(models.PushEmployeesChanged, "")
	return "", nil
}

func (i impl) Restore(id string) (hMsg string, err error) {
	rec, err := i.store.GetByID(id, true)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	if !rec.IsDeleted() {
		return "сотрудник не удален", nil
	}
	err = i.store.Restore(id)
	if err != nil {
		return "", err
	}
	log.WithField("employee_id", id).Info("сотрудник восстановлен из удаленных")
	i.hub.Broadcast(models.PushEmployeesChanged, "")
	return "", nil
}

func (i impl) ListDeleted() (list []employeeapimodels.EmployeeView, err error) {
	recList, err := i.store.ListDeleted()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения удаленных сотрудников")
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec, false))
	}
	return list, nil
}

func (i impl) UploadFile(ctx context.Context, id string, kind filestorage.FileKind, body []byte) (hMsg string, err error) {
	rec, err := i.store.GetByID(id, false)
	if err != nil {
		return "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return "сотрудник не найден", nil
	}
	key, hMsg, err := i.files.UploadEmployeeFile(ctx, id, kind, body)
	if err != nil || hMsg != "" {
		return hMsg, err
	}
	field := "avatar"
	if kind == filestorage.SignatureFile {
		field = "signature"
	}
	err = i.store.Update(id, map[string]interface{}{field: key})
	if err != nil {
		return "", errors.Wrap(err, "ошибка сохранения ссылки на файл")
	}
	i.hub.Broadcast(models.PushEmployeesChanged, "")
	return "", nil
}

func (i impl) GetFile(ctx context.Context, id string, kind filestorage.FileKind) (body []byte, contentType string, err error) {
	rec, err := i.store.GetByID(id, true)
	if err != nil {
		return nil, "", errors.Wrap(err, "ошибка получения сотрудника")
	}
	if rec == nil {
		return nil, "", errors.New("сотрудник не найден")
	}
	key := rec.Avatar
	if kind == filestorage.SignatureFile {
		key = rec.Signature
	}
	if key == "" {
		return nil, "", nil
	}
	return i.files.GetFile(ctx, key)
}

func (i impl) ExportXls(filter employeeapimodels.EmployeeFilter) (*bytes.Buffer, error) {
	recList := []dbmodels.Employee{}
	filter.Limit = exportPageSize
	for page := 1; ; page++ {
		filter.Page = page
		pageList, rowCount, err := i.store.List(filter)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка получения списка сотрудников")
		}
		recList = append(recList, pageList...)
		if len(pageList) < exportPageSize || int64(len(recList)) >= rowCount {
			break
		}
	}
	suspended, err := i.suspensions.SuspendedSet()
	if err != nil {
		return nil, err
	}
	list := make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, employeeapimodels.EmployeeConvert(rec, suspended[rec.ID]))
	}
	return i.xls.ExportEmployeeList(list)
}

func (i impl) checkEmail(selfID, email string) (hMsg string, err error) {
	exist, err := i.store.FindByEmail(email)
	if err != nil {
		return "", errors.Wrap(err, "ошибка проверки email")
	}
	if exist != nil && exist.ID != selfID {
		return "сотрудник с таким email уже существует", nil
	}
	return "", nil
}

// checkRoleAssign роль администратора назначает только администратор
func checkRoleAssign(actorRole, role models.UserRole) (hMsg string) {
	if role == models.AdminRole && actorRole != models.AdminRole {
		return "назначить роль администратора может только администратор"
	}
	return ""
}
