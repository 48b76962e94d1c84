package employeestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string, withDeleted bool) (rec *dbmodels.Employee, err error)
	FindByEmail(email string) (rec *dbmodels.Employee, err error)
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, rowCount int64, err error)
	ListByIDs(ids []string) (list []dbmodels.Employee, err error)
	ListDeleted() (list []dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id, deletedBy string) error
	Restore(id string) error
	Count(activeOnly bool) (rowCount int64, err error)
	CountDeleted() (rowCount int64, err error)
	CountByDepartment() (result []DepartmentCount, err error)
}

type DepartmentCount struct {
	DepartmentID string
	RowCount     int64
}

// активные записи отстранения исключают сотрудника из списка активных
const notSuspendedCond = "id NOT IN (SELECT employee_id FROM suspensions WHERE status = ?)"

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string, withDeleted bool) (rec *dbmodels.Employee, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	if withDeleted {
		tx = tx.Unscoped()
	}
	err = tx.
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

// FindByEmail ищет в том числе среди удаленных, email уникален для всех записей
func (i impl) FindByEmail(email string) (rec *dbmodels.Employee, err error) {
	err = i.db.
		Unscoped().
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
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

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	if filter.IncludeDeleted {
		tx = tx.Unscoped()
	}
	i.addFilter(tx, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	i.addSort(tx, filter.Sort)
	page, limit := filter.GetPage()
	err = tx.
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Position").
		Preload("Department").
		Preload("Branch").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListByIDs(ids []string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	if len(ids) == 0 {
		return list, nil
	}
	err = i.db.
		Where("id in (?)", ids).
		Preload("Department").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListDeleted() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Unscoped().
		Where("deleted_at is not null").
		Preload("Position").
		Preload("Department").
		Preload("Branch").
		Order("deleted_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	if email, ok := updMap["email"]; ok {
		updMap["email"] = strings.ToLower(strings.TrimSpace(email.(string)))
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("сотрудник не найден")
	}
	return nil
}

func (i impl) Delete(id, deletedBy string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Employee{}).
			Where("id = ?", id).
			Update("deleted_by", deletedBy).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&dbmodels.Employee{}).
			Error
	})
}

func (i impl) Restore(id string) error {
	tx := i.db.
		Unscoped().
		Model(&dbmodels.Employee{}).
		Where("id = ? AND deleted_at is not null", id).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"deleted_by": "",
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("удаленный сотрудник не найден")
	}
	return nil
}

func (i impl) Count(activeOnly bool) (rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Employee{})
	if activeOnly {
		tx = tx.
			Where("is_active = ?", true).
			Where(notSuspendedCond, models.SuspensionActive)
	}
	err = tx.Count(&rowCount).Error
	return rowCount, err
}

func (i impl) CountDeleted() (rowCount int64, err error) {
	err = i.db.
		Unscoped().
		Model(dbmodels.Employee{}).
		Where("deleted_at is not null").
		Count(&rowCount).
		Error
	return rowCount, err
}

func (i impl) CountByDepartment() (result []DepartmentCount, err error) {
	result = []DepartmentCount{}
	err = i.db.
		Model(dbmodels.Employee{}).
		Select("department_id, count(*) as row_count").
		Group("department_id").
		Scan(&result).
		Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (i impl) addFilter(tx *gorm.DB, filter employeeapimodels.EmployeeFilter) {
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(name) like ? OR LOWER(email) like ?)", search, search)
	}
	if filter.DepartmentID != "" {
		tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.BranchID != "" {
		tx.Where("branch_id = ?", filter.BranchID)
	}
	if filter.PositionID != "" {
		tx.Where("position_id = ?", filter.PositionID)
	}
	if filter.Role != "" {
		tx.Where("role = ?", filter.Role)
	}
	if filter.ActiveOnly {
		tx.
			Where("is_active = ?", true).
			Where(notSuspendedCond, models.SuspensionActive)
	}
}

func (i impl) addSort(tx *gorm.DB, sort employeeapimodels.EmployeeSort) {
	if sort.HireDateDesc != nil {
		if *sort.HireDateDesc {
			tx.Order("hire_date desc")
		} else {
			tx.Order("hire_date")
		}
	}
	if sort.NameDesc != nil && *sort.NameDesc {
		tx.Order("name desc")
		return
	}
	tx.Order("name")
}
