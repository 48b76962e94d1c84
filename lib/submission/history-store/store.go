package historystore

import (
	"gorm.io/gorm"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	Save(rec dbmodels.SubmissionHistory) error
	List(submissionID string) (list []dbmodels.SubmissionHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.SubmissionHistory) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) List(submissionID string) (list []dbmodels.SubmissionHistory, err error) {
	list = []dbmodels.SubmissionHistory{}
	err = i.db.
		Where("submission_id = ?", submissionID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
