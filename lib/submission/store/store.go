package submissionstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Submission) (id string, err error)
	GetByID(id string) (rec *dbmodels.Submission, err error)
	List(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) (list []dbmodels.Submission, rowCount int64, err error)
	ListAll(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) (list []dbmodels.Submission, err error)
	Save(rec dbmodels.Submission) error
	Delete(id string) error
}

const (
	employeeSignedCond  = "(COALESCE(TRIM(employee_signature), '') <> '' OR employee_approved_at IS NOT NULL)"
	evaluatorSignedCond = "(COALESCE(TRIM(evaluator_signature), '') <> '' OR evaluator_approved_at IS NOT NULL)"
	noRowsCond          = "1 = 0"
)

// StatusCondition условие выборки по статусу, вычисленному по подписям
func StatusCondition(status models.ApprovalStatus, policy models.ApprovalPolicy) string {
	switch status {
	case models.ApprovalPending:
		return "NOT " + employeeSignedCond
	case models.ApprovalEmployeeApproved:
		if policy == models.PolicyEmployeeFinal {
			return noRowsCond
		}
		return employeeSignedCond + " AND NOT " + evaluatorSignedCond
	case models.ApprovalFullyApproved:
		if policy == models.PolicyEmployeeFinal {
			return employeeSignedCond
		}
		return employeeSignedCond + " AND " + evaluatorSignedCond
	}
	// rejected вычислением не выдается
	return noRowsCond
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Submission) (id string, err error) {
	err = i.db.
		Omit("Employee", "Evaluator").
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Submission, err error) {
	err = i.db.
		Model(dbmodels.Submission{}).
		Where("id = ?", id).
		Preload("Employee", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Employee.Department").
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

func (i impl) List(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) (list []dbmodels.Submission, rowCount int64, err error) {
	tx := i.db.Model(dbmodels.Submission{})
	i.addFilter(tx, filter, policy)
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("submitted_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Preload("Employee", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Employee.Department").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) ListAll(filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) (list []dbmodels.Submission, err error) {
	list = []dbmodels.Submission{}
	tx := i.db.Model(dbmodels.Submission{})
	i.addFilter(tx, filter, policy)
	err = tx.
		Order("submitted_at desc").
		Preload("Employee", func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() }).
		Preload("Employee.Department").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Save(rec dbmodels.Submission) error {
	return i.db.
		Omit("Employee", "Evaluator").
		Save(&rec).
		Error
}

func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("submission_id = ?", id).
			Delete(&dbmodels.SeenSubmission{}).
			Error
		if err != nil {
			return err
		}
		return tx.
			Where("id = ?", id).
			Delete(&dbmodels.Submission{}).
			Error
	})
}

func (i impl) addFilter(tx *gorm.DB, filter evaluationapimodels.SubmissionFilter, policy models.ApprovalPolicy) {
	if filter.EmployeeID != "" {
		tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.EvaluatorID != "" {
		tx.Where("evaluator_id = ?", filter.EvaluatorID)
	}
	if filter.DepartmentID != "" {
		tx.Where("employee_id in (SELECT id FROM employees WHERE department_id = ?)", filter.DepartmentID)
	}
	if filter.ReviewPeriod != "" {
		tx.Where("review_period = ?", filter.ReviewPeriod)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(employee_name) like ? OR LOWER(evaluator_name) like ?)", search, search)
	}
	if filter.Status != "" {
		tx.Where(StatusCondition(filter.Status, policy))
	}
	if filter.DateFrom != nil {
		tx.Where("submitted_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		tx.Where("submitted_at <= ?", *filter.DateTo)
	}
}
