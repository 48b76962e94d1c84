package dbmodels

import (
	"time"

	"gorm.io/datatypes"
	"hr-evaluation-backend/lib/evaluation/approval"
	"hr-evaluation-backend/models"
)

type Submission struct {
	BaseModel
	EmployeeID          string    `gorm:"type:varchar(36);index"`
	Employee            *Employee `gorm:"foreignKey:EmployeeID"`
	EmployeeName        string    `gorm:"type:varchar(255)"`
	EvaluatorID         string    `gorm:"type:varchar(36);index"`
	Evaluator           *Employee `gorm:"foreignKey:EvaluatorID"`
	EvaluatorName       string    `gorm:"type:varchar(255)"`
	ReviewPeriod        string    `gorm:"type:varchar(100)"`
	EvaluationData      datatypes.JSONType[models.EvaluationScores] `gorm:"type:jsonb"`
	OverallRating       float64
	SubmittedAt         time.Time `gorm:"index"`
	EmployeeSignature   string    `gorm:"type:varchar(255)"`
	EmployeeApprovedAt  *time.Time
	EvaluatorSignature  string `gorm:"type:varchar(255)"`
	EvaluatorApprovedAt *time.Time
	// Status сохраняется для справки, актуальный статус вычисляется по подписям
	Status models.ApprovalStatus `gorm:"type:varchar(50)"`
}

func (r Submission) Signatures() approval.Signatures {
	return approval.Signatures{
		EmployeeSignature:   r.EmployeeSignature,
		EmployeeApprovedAt:  r.EmployeeApprovedAt,
		EvaluatorSignature:  r.EvaluatorSignature,
		EvaluatorApprovedAt: r.EvaluatorApprovedAt,
	}
}

func (r Submission) Scores() models.EvaluationScores {
	return r.EvaluationData.Data()
}

func (r Submission) GetDepartmentName() string {
	if r.Employee == nil {
		return ""
	}
	return r.Employee.GetDepartmentName()
}

type SubmissionHistory struct {
	BaseModel
	SubmissionID string        `gorm:"type:varchar(36);index"`
	UserID       string        `gorm:"type:varchar(36)"`
	Action       string        `gorm:"type:varchar(50)"`
	Changes      EntityChanges `gorm:"type:jsonb"`
}

// SeenSubmission оценка, просмотренная пользователем
type SeenSubmission struct {
	UserID       string `gorm:"primaryKey;type:varchar(36)"`
	SubmissionID string `gorm:"primaryKey;type:varchar(36)"`
	CreatedAt    time.Time
}
