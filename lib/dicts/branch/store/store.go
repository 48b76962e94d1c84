package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Branch) (id string, err error)
	GetByID(id string) (rec *dbmodels.Branch, err error)
	GetByCode(code string) (rec *dbmodels.Branch, err error)
	List(name string) (list []dbmodels.Branch, err error)
	Count() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Branch) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Branch, error) {
	return i.first(i.db.Where("id = ?", id))
}

func (i impl) GetByCode(code string) (*dbmodels.Branch, error) {
	return i.first(i.db.Where("code = ?", code))
}

func (i impl) List(name string) (list []dbmodels.Branch, err error) {
	list = []dbmodels.Branch{}
	tx := i.db.Model(dbmodels.Branch{})
	if name != "" {
		search := "%" + strings.ToLower(name) + "%"
		tx = tx.Where("LOWER(name) like ? OR LOWER(code) like ?", search, search)
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (rowCount int64, err error) {
	err = i.db.Model(dbmodels.Branch{}).Count(&rowCount).Error
	return rowCount, err
}

func (i impl) first(tx *gorm.DB) (*dbmodels.Branch, error) {
	rec := dbmodels.Branch{}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
