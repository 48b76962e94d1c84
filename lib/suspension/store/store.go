package suspensionstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	suspensionapimodels "hr-evaluation-backend/models/api/suspension"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Suspension) (id string, err error)
	GetByID(id string) (rec *dbmodels.Suspension, err error)
	GetOpenByEmployee(employeeID string) (rec *dbmodels.Suspension, err error)
	List(filter suspensionapimodels.SuspensionFilter) (list []dbmodels.Suspension, rowCount int64, err error)
	ListByStatus(status models.SuspensionStatus) (list []dbmodels.Suspension, err error)
	SuspendedEmployeeIDs() (ids []string, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	CountByStatus(status models.SuspensionStatus) (rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Suspension) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Suspension, err error) {
	err = i.db.
		Model(dbmodels.Suspension{}).
		Where("id = ?", id).
		Preload("Employee").
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

func (i impl) GetOpenByEmployee(employeeID string) (rec *dbmodels.Suspension, err error) {
	err = i.db.
		Model(dbmodels.Suspension{}).
		Where("employee_id = ?", employeeID).
		Where("status in (?)", []models.SuspensionStatus{models.SuspensionActive, models.SuspensionPendingReview}).
		Order("suspended_at desc").
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

func (i impl) List(filter suspensionapimodels.SuspensionFilter) (list []dbmodels.Suspension, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Suspension{})
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx.Where("status = ?", filter.Status)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("suspended_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Employee").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByStatus(status models.SuspensionStatus) (list []dbmodels.Suspension, err error) {
	list = []dbmodels.Suspension{}
	err = i.db.
		Where("status = ?", status).
		Order("suspended_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) SuspendedEmployeeIDs() (ids []string, err error) {
	ids = []string{}
	err = i.db.
		Model(dbmodels.Suspension{}).
		Where("status = ?", models.SuspensionActive).
		Distinct().
		Pluck("employee_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	tx := i.db.
		Model(&dbmodels.Suspension{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись об отстранении не найдена")
	}
	return nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Suspension{}).
		Error
}

func (i impl) CountByStatus(status models.SuspensionStatus) (rowCount int64, err error) {
	err = i.db.
		Model(dbmodels.Suspension{}).
		Where("status = ?", status).
		Count(&rowCount).
		Error
	return rowCount, err
}
