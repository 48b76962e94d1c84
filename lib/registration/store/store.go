package registrationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Registration) (id string, err error)
	GetByID(id string) (rec *dbmodels.Registration, err error)
	ListByStatus(statuses ...models.RegistrationStatus) (list []dbmodels.Registration, err error)
	FindPendingByEmail(email string) (rec *dbmodels.Registration, err error)
	Update(id string, updMap map[string]interface{}) error
	CountByStatus(status models.RegistrationStatus) (rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Registration) (id string, err error) {
	err = i.db.
		Omit("Position", "Department", "Branch").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Registration, err error) {
	err = i.db.
		Model(dbmodels.Registration{}).
		Where("id = ?", id).
		Preload("Position").
		Preload("Department").
		Preload("Branch").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) ListByStatus(statuses ...models.RegistrationStatus) (list []dbmodels.Registration, err error) {
	list = []dbmodels.Registration{}
	tx := i.db.Model(dbmodels.Registration{})
	if len(statuses) != 0 {
		tx.Where("status in (?)", statuses)
	}
	err = tx.
		Order("created_at desc").
		Preload("Position").
		Preload("Department").
		Preload("Branch").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) FindPendingByEmail(email string) (rec *dbmodels.Registration, err error) {
	err = i.db.
		Model(dbmodels.Registration{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Where("status = ?", models.RegistrationPending).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Registration{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("заявка на регистрацию не найдена")
	}
	return nil
}

func (i impl) CountByStatus(status models.RegistrationStatus) (rowCount int64, err error) {
	err = i.db.
		Model(dbmodels.Registration{}).
		Where("status = ?", status).
		Count(&rowCount).
		Error
	return rowCount, err
}
