package seenstore

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "hr-evaluation-backend/models/db"
)

type Provider interface {
	MarkSeen(userID string, submissionIDs []string) error
	SeenSet(userID string) (map[string]bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) MarkSeen(userID string, submissionIDs []string) error {
	if len(submissionIDs) == 0 {
		return nil
	}
	now := time.Now()
	recs := make([]dbmodels.SeenSubmission, 0, len(submissionIDs))
	for _, id := range submissionIDs {
		recs = append(recs, dbmodels.SeenSubmission{
			UserID:       userID,
			SubmissionID: id,
			CreatedAt:    now,
		})
	}
	return i.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&recs).
		Error
}

func (i impl) SeenSet(userID string) (map[string]bool, error) {
	ids := []string{}
	err := i.db.
		Model(dbmodels.SeenSubmission{}).
		Where("user_id = ?", userID).
		Pluck("submission_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(ids))
	for _, id := range ids {
		result[id] = true
	}
	return result, nil
}
