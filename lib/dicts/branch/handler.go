package branchprovider

import (
	"github.com/pkg/errors"
	"hr-evaluation-backend/db"
	"hr-evaluation-backend/lib/dicts/branch/store"
	dictapimodels "hr-evaluation-backend/models/api/dict"
)

type Provider interface {
	Get(id string) (item dictapimodels.BranchView, err error)
	FindByName(request dictapimodels.DictFind) (list []dictapimodels.BranchView, err error)
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

func (i impl) Get(id string) (item dictapimodels.BranchView, err error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return dictapimodels.BranchView{}, err
	}
	if rec == nil {
		return dictapimodels.BranchView{}, errors.New("филиал не найден")
	}
	return dictapimodels.BranchConvert(*rec), nil
}

func (i impl) FindByName(request dictapimodels.DictFind) (list []dictapimodels.BranchView, err error) {
	recList, err := i.store.List(request.Name)
	if err != nil {
		return nil, err
	}
	result := make([]dictapimodels.BranchView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, dictapimodels.BranchConvert(rec))
	}
	return result, nil
}
