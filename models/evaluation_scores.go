package models

import (
	"math"

	"github.com/pkg/errors"
)

type RubricCategory string

const (
	JobKnowledge    RubricCategory = "job_knowledge"
	QualityOfWork   RubricCategory = "quality_of_work"
	Adaptability    RubricCategory = "adaptability"
	Teamwork        RubricCategory = "teamwork"
	Reliability     RubricCategory = "reliability"
	Ethical         RubricCategory = "ethical"
	CustomerService RubricCategory = "customer_service"
)

// RubricCategories порядок категорий в отчетах и выгрузках
var RubricCategories = []RubricCategory{
	JobKnowledge,
	QualityOfWork,
	Adaptability,
	Teamwork,
	Reliability,
	Ethical,
	CustomerService,
}

var rubricCategoryHumanName = map[RubricCategory]string{
	JobKnowledge:    "Профессиональные знания",
	QualityOfWork:   "Качество работы",
	Adaptability:    "Адаптивность",
	Teamwork:        "Командная работа",
	Reliability:     "Надежность",
	Ethical:         "Этика",
	CustomerService: "Работа с клиентами",
}

func (c RubricCategory) ToHuman() string {
	if human, exist := rubricCategoryHumanName[c]; exist {
		return human
	}
	return string(c)
}

const (
	MinScore = 0
	MaxScore = 5
)

// EvaluationScores оценки по критериям, незаполненный критерий = nil
type EvaluationScores struct {
	JobKnowledgeScore1 *float64 `json:"job_knowledge_score1,omitempty"`
	JobKnowledgeScore2 *float64 `json:"job_knowledge_score2,omitempty"`
	JobKnowledgeScore3 *float64 `json:"job_knowledge_score3,omitempty"`

	QualityOfWorkScore1 *float64 `json:"quality_of_work_score1,omitempty"`
	QualityOfWorkScore2 *float64 `json:"quality_of_work_score2,omitempty"`
	QualityOfWorkScore3 *float64 `json:"quality_of_work_score3,omitempty"`
	QualityOfWorkScore4 *float64 `json:"quality_of_work_score4,omitempty"`
	QualityOfWorkScore5 *float64 `json:"quality_of_work_score5,omitempty"`

	AdaptabilityScore1 *float64 `json:"adaptability_score1,omitempty"`
	AdaptabilityScore2 *float64 `json:"adaptability_score2,omitempty"`
	AdaptabilityScore3 *float64 `json:"adaptability_score3,omitempty"`

	TeamworkScore1 *float64 `json:"teamwork_score1,omitempty"`
	TeamworkScore2 *float64 `json:"teamwork_score2,omitempty"`
	TeamworkScore3 *float64 `json:"teamwork_score3,omitempty"`

	ReliabilityScore1 *float64 `json:"reliability_score1,omitempty"`
	ReliabilityScore2 *float64 `json:"reliability_score2,omitempty"`
	ReliabilityScore3 *float64 `json:"reliability_score3,omitempty"`
	ReliabilityScore4 *float64 `json:"reliability_score4,omitempty"`

	EthicalScore1 *float64 `json:"ethical_score1,omitempty"`
	EthicalScore2 *float64 `json:"ethical_score2,omitempty"`
	EthicalScore3 *float64 `json:"ethical_score3,omitempty"`
	EthicalScore4 *float64 `json:"ethical_score4,omitempty"`

	CustomerServiceScore1 *float64 `json:"customer_service_score1,omitempty"`
	CustomerServiceScore2 *float64 `json:"customer_service_score2,omitempty"`
	CustomerServiceScore3 *float64 `json:"customer_service_score3,omitempty"`
	CustomerServiceScore4 *float64 `json:"customer_service_score4,omitempty"`
	CustomerServiceScore5 *float64 `json:"customer_service_score5,omitempty"`

	JobKnowledgeComments    string `json:"job_knowledge_comments,omitempty"`
	QualityOfWorkComments   string `json:"quality_of_work_comments,omitempty"`
	AdaptabilityComments    string `json:"adaptability_comments,omitempty"`
	TeamworkComments        string `json:"teamwork_comments,omitempty"`
	ReliabilityComments     string `json:"reliability_comments,omitempty"`
	EthicalComments         string `json:"ethical_comments,omitempty"`
	CustomerServiceComments string `json:"customer_service_comments,omitempty"`
	OverallComments         string `json:"overall_comments,omitempty"`
}

// CategoryFields критерии категории, включая незаполненные
func (s EvaluationScores) CategoryFields(category RubricCategory) []*float64 {
	switch category {
	case JobKnowledge:
		return []*float64{s.JobKnowledgeScore1, s.JobKnowledgeScore2, s.JobKnowledgeScore3}
	case QualityOfWork:
		return []*float64{s.QualityOfWorkScore1, s.QualityOfWorkScore2, s.QualityOfWorkScore3, s.QualityOfWorkScore4, s.QualityOfWorkScore5}
	case Adaptability:
		return []*float64{s.AdaptabilityScore1, s.AdaptabilityScore2, s.AdaptabilityScore3}
	case Teamwork:
		return []*float64{s.TeamworkScore1, s.TeamworkScore2, s.TeamworkScore3}
	case Reliability:
		return []*float64{s.ReliabilityScore1, s.ReliabilityScore2, s.ReliabilityScore3, s.ReliabilityScore4}
	case Ethical:
		return []*float64{s.EthicalScore1, s.EthicalScore2, s.EthicalScore3, s.EthicalScore4}
	case CustomerService:
		return []*float64{s.CustomerServiceScore1, s.CustomerServiceScore2, s.CustomerServiceScore3, s.CustomerServiceScore4, s.CustomerServiceScore5}
	}
	return nil
}

func (s EvaluationScores) CategoryComments(category RubricCategory) string {
	switch category {
	case JobKnowledge:
		return s.JobKnowledgeComments
	case QualityOfWork:
		return s.QualityOfWorkComments
	case Adaptability:
		return s.AdaptabilityComments
	case Teamwork:
		return s.TeamworkComments
	case Reliability:
		return s.ReliabilityComments
	case Ethical:
		return s.EthicalComments
	case CustomerService:
		return s.CustomerServiceComments
	}
	return ""
}

// FilledCount количество заполненных критериев
func (s EvaluationScores) FilledCount() int {
	count := 0
	for _, category := range RubricCategories {
		for _, value := range s.CategoryFields(category) {
			if value != nil {
				count++
			}
		}
	}
	return count
}

// Validate проверяет, что заполненные оценки лежат в шкале 0..5
func (s EvaluationScores) Validate() error {
	for _, category := range RubricCategories {
		for idx, value := range s.CategoryFields(category) {
			if value == nil {
				continue
			}
			if math.IsNaN(*value) || math.IsInf(*value, 0) || *value < MinScore || *value > MaxScore {
				return errors.Errorf("оценка «%s» №%d должна быть в диапазоне от %d до %d", category.ToHuman(), idx+1, MinScore, MaxScore)
			}
		}
	}
	return nil
}
