package departmentprovider

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/db"
	"hr-evaluation-backend/lib/dicts/department/store"
	initchecker "hr-evaluation-backend/lib/utils/init-checker"
	connectionhub "hr-evaluation-backend/lib/ws/hub/connection-hub"
	"hr-evaluation-backend/models"
	dictapimodels "hr-evaluation-backend/models/api/dict"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(request dictapimodels.DepartmentData) (id string, err error)
	Update(id string, request dictapimodels.DepartmentData) error
	Get(id string) (item dictapimodels.DepartmentView, err error)
	FindByName(request dictapimodels.DictFind) (list []dictapimodels.DepartmentView, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: store.NewInstance(db.DB),
		hub:   connectionhub.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"hub", instance.hub,
	)
	Instance = instance
}

type impl struct {
	store store.Provider
	hub   connectionhub.Provider
}

func (i impl) Create(request dictapimodels.DepartmentData) (id string, err error) {
	rec := dbmodels.Department{
		Name: request.Name,
		Code: request.Code,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	log.
		WithField("department_name", rec.Name).
		WithField("rec_id", id).
		Info("создано подразделение")
	i.hub.Broadcast(models.PushDictChanged, "")
	return id, nil
}

func (i impl) Update(id string, request dictapimodels.DepartmentData) error {
	updMap := map[string]interface{}{
		"name": request.Name,
		"code": request.Code,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("обновлено подразделение")
	i.hub.Broadcast(models.PushDictChanged, "")
	return nil
}

func (i impl) Get(id string) (item dictapimodels.DepartmentView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.DepartmentView{}, err
	}
	if rec == nil {
		return dictapimodels.DepartmentView{}, errors.New("подразделение не найдено")
	}
	return dictapimodels.DepartmentConvert(*rec), nil
}

func (i impl) FindByName(request dictapimodels.DictFind) (list []dictapimodels.DepartmentView, err error) {
	recList, err := i.store.List(request.Name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.DepartmentView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.DepartmentConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	log.WithField("rec_id", id).Info("удалено подразделение")
	i.hub.Broadcast(models.PushDictChanged, "")
	return nil
}
