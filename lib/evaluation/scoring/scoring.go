package scoring

import (
	"math"

	"hr-evaluation-backend/models"
)

// веса категорий, в сумме 1.0
var categoryWeights = map[models.RubricCategory]float64{
	models.JobKnowledge:    0.20,
	models.QualityOfWork:   0.20,
	models.Adaptability:    0.10,
	models.Teamwork:        0.10,
	models.Reliability:     0.05,
	models.Ethical:         0.05,
	models.CustomerService: 0.30,
}

// CategoryScores средние по категориям
type CategoryScores map[models.RubricCategory]float64

func Weight(category models.RubricCategory) float64 {
	return categoryWeights[category]
}

// CategoryAverage среднее заполненных критериев категории, пустая категория = 0
func CategoryAverage(scores models.EvaluationScores, category models.RubricCategory) float64 {
	sum := 0.0
	count := 0
	for _, value := range scores.CategoryFields(category) {
		if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
			continue
		}
		sum += *value
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func CategoryAverages(scores models.EvaluationScores) CategoryScores {
	result := make(CategoryScores, len(models.RubricCategories))
	for _, category := range models.RubricCategories {
		result[category] = CategoryAverage(scores, category)
	}
	return result
}

// CalculateOverallRating взвешенная итоговая оценка в диапазоне 0..5 с точностью до десятых
func CalculateOverallRating(scores models.EvaluationScores) float64 {
	total := 0.0
	// порядок сложения фиксирован, иначе округление на границе .x5 нестабильно
	for _, category := range models.RubricCategories {
		total += CategoryAverage(scores, category) * categoryWeights[category]
	}
	return Round(clamp(total, models.MinScore, models.MaxScore))
}

// погрешность сложения весов, чтобы 0.65 не превращалось в 0.6499999
const roundEpsilon = 1e-9

// Round округление до одного знака после запятой, половина вверх
func Round(value float64) float64 {
	return math.Round(value*10+roundEpsilon) / 10
}

func clamp(value, min, max float64) float64 {
	if math.IsNaN(value) || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
