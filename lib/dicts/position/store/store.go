package store

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Position) (id string, err error)
	GetByID(id string) (rec *dbmodels.Position, err error)
	List(name, departmentID string) (list []dbmodels.Position, err error)
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

func (i impl) Create(rec dbmodels.Position) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Position, error) {
	rec := dbmodels.Position{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(name, departmentID string) (list []dbmodels.Position, err error) {
	list = []dbmodels.Position{}
	tx := i.db.Model(dbmodels.Position{})
	if name != "" {
		tx = tx.Where("LOWER(name) like ?", "%"+strings.ToLower(name)+"%")
	}
	if departmentID != "" {
		tx = tx.Where("department_id = ?", departmentID)
	}
	err = tx.Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (rowCount int64, err error) {
	err = i.db.Model(dbmodels.Position{}).Count(&rowCount).Error
	return rowCount, err
}
