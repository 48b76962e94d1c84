package evaluationapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-evaluation-backend/lib/evaluation/scoring"
	"hr-evaluation-backend/models"
	apimodels "hr-evaluation-backend/models/api"
	dbmodels "hr-evaluation-backend/models/db"
)

type SubmissionData struct {
	EmployeeID     string                  `json:"employee_id" validate:"required"` // Оцениваемый сотрудник
	ReviewPeriod   string                  `json:"review_period" validate:"max=100"` // Период оценки
	EvaluationData models.EvaluationScores `json:"evaluation_data"`                 // Оценки по критериям
}

func (r SubmissionData) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	if r.EvaluationData.FilledCount() == 0 {
		return errors.New("не заполнено ни одной оценки")
	}
	return r.EvaluationData.Validate()
}

type SubmissionUpdate struct {
	ReviewPeriod   string                  `json:"review_period" validate:"max=100"` // Период оценки
	EvaluationData models.EvaluationScores `json:"evaluation_data"`                 // Оценки по критериям
}

func (r SubmissionUpdate) Validate() error {
	if err := apimodels.ValidateStruct(r); err != nil {
		return err
	}
	return r.EvaluationData.Validate()
}

type SignRequest struct {
	Signature string `json:"signature" validate:"required,max=255"` // Подпись (ФИО или ключ файла подписи)
}

func (r SignRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type CategoryScoreView struct {
	Category models.RubricCategory `json:"category"`
	Name     string                `json:"name"`
	Weight   float64               `json:"weight"`
	Average  float64               `json:"average"` // Среднее по категории, до десятых
	Comments string                `json:"comments"`
}

type SubmissionView struct {
	ID                  string                  `json:"id"`
	EmployeeID          string                  `json:"employee_id"`
	EmployeeName        string                  `json:"employee_name"`
	DepartmentName      string                  `json:"department_name"`
	EvaluatorID         string                  `json:"evaluator_id"`
	EvaluatorName       string                  `json:"evaluator_name"`
	ReviewPeriod        string                  `json:"review_period"`
	EvaluationData      models.EvaluationScores `json:"evaluation_data"`
	Categories          []CategoryScoreView     `json:"categories"`
	OverallRating       float64                 `json:"overall_rating"`
	SubmittedAt         time.Time               `json:"submitted_at"`
	EmployeeSignature   string                  `json:"employee_signature"`
	EmployeeApprovedAt  *time.Time              `json:"employee_approved_at"`
	EvaluatorSignature  string                  `json:"evaluator_signature"`
	EvaluatorApprovedAt *time.Time              `json:"evaluator_approved_at"`
	Status              models.ApprovalStatus   `json:"status"`      // Статус, вычисленный по подписям
	StatusName          string                  `json:"status_name"` // Статус для отображения
	Highlight           models.Highlight        `json:"highlight"`   // Подсветка строки
}

// SubmissionConvert status и highlight вычисляются вызывающей стороной
func SubmissionConvert(rec dbmodels.Submission, status models.ApprovalStatus, highlight models.Highlight) SubmissionView {
	scores := rec.Scores()
	categories := make([]CategoryScoreView, 0, len(models.RubricCategories))
	for _, category := range models.RubricCategories {
		categories = append(categories, CategoryScoreView{
			Category: category,
			Name:     category.ToHuman(),
			Weight:   scoring.Weight(category),
			Average:  scoring.Round(scoring.CategoryAverage(scores, category)),
			Comments: scores.CategoryComments(category),
		})
	}
	return SubmissionView{
		ID:                  rec.ID,
		EmployeeID:          rec.EmployeeID,
		EmployeeName:        rec.EmployeeName,
		DepartmentName:      rec.GetDepartmentName(),
		EvaluatorID:         rec.EvaluatorID,
		EvaluatorName:       rec.EvaluatorName,
		ReviewPeriod:        rec.ReviewPeriod,
		EvaluationData:      scores,
		Categories:          categories,
		OverallRating:       scoring.CalculateOverallRating(scores),
		SubmittedAt:         rec.SubmittedAt,
		EmployeeSignature:   rec.EmployeeSignature,
		EmployeeApprovedAt:  rec.EmployeeApprovedAt,
		EvaluatorSignature:  rec.EvaluatorSignature,
		EvaluatorApprovedAt: rec.EvaluatorApprovedAt,
		Status:              status,
		StatusName:          status.ToHuman(),
		Highlight:           highlight,
	}
}

type SubmissionFilter struct {
	apimodels.Pagination
	EmployeeID   string                `json:"employee_id"`   // Оцениваемый сотрудник
	EvaluatorID  string                `json:"evaluator_id"`  // Оценщик
	DepartmentID string                `json:"department_id"` // Подразделение сотрудника
	ReviewPeriod string                `json:"review_period"` // Период оценки
	Search       string                `json:"search"`        // Поиск по ФИО сотрудника/оценщика
	Status       models.ApprovalStatus `json:"status"`        // Статус по подписям
	DateFrom     *time.Time            `json:"date_from"`     // Дата отправки с
	DateTo       *time.Time            `json:"date_to"`       // Дата отправки по
}

func (r SubmissionFilter) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.New("указан неизвестный статус")
	}
	return nil
}

type SubmissionDelete struct {
	Password string `json:"password"` // Пароль текущего пользователя для подтверждения
}

func (r SubmissionDelete) Validate() error {
	if r.Password == "" {
		return errors.New("для удаления оценки введите пароль")
	}
	return nil
}

type HistoryView struct {
	ID      string                 `json:"id"`
	UserID  string                 `json:"user_id"`
	Action  string                 `json:"action"`
	Changes dbmodels.EntityChanges `json:"changes"`
	Date    time.Time              `json:"date"`
}

func HistoryConvert(rec dbmodels.SubmissionHistory) HistoryView {
	return HistoryView{
		ID:      rec.ID,
		UserID:  rec.UserID,
		Action:  rec.Action,
		Changes: rec.Changes,
		Date:    rec.CreatedAt,
	}
}
