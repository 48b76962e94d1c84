package positionprovider

import (
	"github.com/pkg/errors"
	"hr-evaluation-backend/db"
	"hr-evaluation-backend/lib/dicts/position/store"
	dictapimodels "hr-evaluation-backend/models/api/dict"
)

type Provider interface {
	Get(id string) (item dictapimodels.PositionView, err error)
	Find(request dictapimodels.PositionFind) (list []dictapimodels.PositionView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: store.NewInstance(db.DB),
	}
}

type impl struct {
	store store.Provider
}

func (i impl) Get(id string) (item dictapimodels.PositionView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.PositionView{}, err
	}
	if rec == nil {
		return dictapimodels.PositionView{}, errors.New("должность не найдена")
	}
	return dictapimodels.PositionConvert(*rec), nil
}

func (i impl) Find(request dictapimodels.PositionFind) (list []dictapimodels.PositionView, err error) {
	recList, err := i.store.List(request.Name, request.DepartmentID)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.PositionView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.PositionConvert(rec))
	}
	return result, nil
}
