package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
)

func TestCalculateOverallRating(t *testing.T) {
	t.Run(`same result on every call`, func(t *testing.T) {
		scores := models.EvaluationScores{
			AdaptabilityScore1:    ptr(1),
			TeamworkScore1:        ptr(2.5),
			CustomerServiceScore1: ptr(1),
		}
		first := CalculateOverallRating(scores)
		require.Equal(t, 0.7, first)
		for i := 0; i < 100; i++ {
			require.Equal(t, first, CalculateOverallRating(scores))
		}

		scores = models.EvaluationScores{
			AdaptabilityScore1:    ptr(1.5),
			TeamworkScore1:        ptr(4.5),
			CustomerServiceScore1: ptr(1),
		}
		first = CalculateOverallRating(scores)
		for i := 0; i < 100; i++ {
			require.Equal(t, first, CalculateOverallRating(scores))
		}
	})

	t.Run(`empty scores`, func(t *testing.T) {
		require.Equal(t, 0.0, CalculateOverallRating(models.EvaluationScores{}))
	})

	t.Run(`all fields equal`, func(t *testing.T) {
		require.Equal(t, 5.0, CalculateOverallRating(fillAll(5)))
		require.Equal(t, 0.0, CalculateOverallRating(fillAll(0)))
		require.Equal(t, 3.0, CalculateOverallRating(fillAll(3)))
	})

	t.Run(`weights applied to category means`, func(t *testing.T) {
		scores := models.EvaluationScores{
			CustomerServiceScore1: ptr(5),
			CustomerServiceScore2: ptr(3),
		}
		// среднее 4 * вес 0.3
		require.Equal(t, 1.2, CalculateOverallRating(scores))

		scores.JobKnowledgeScore1 = ptr(5)
		// 1.2 + 5 * 0.2
		require.Equal(t, 2.2, CalculateOverallRating(scores))
	})

	t.Run(`missing and NaN fields ignored`, func(t *testing.T) {
		scores := models.EvaluationScores{
			TeamworkScore1: ptr(4),
			TeamworkScore2: ptr(math.NaN()),
		}
		require.Equal(t, 4.0, CategoryAverage(scores, models.Teamwork))
		require.Equal(t, 0.4, CalculateOverallRating(scores))
	})

	t.Run(`result clamped and rounded`, func(t *testing.T) {
		over := fillAll(9)
		require.Equal(t, 5.0, CalculateOverallRating(over))
		under := fillAll(-2)
		require.Equal(t, 0.0, CalculateOverallRating(under))

		odd := models.EvaluationScores{
			QualityOfWorkScore1: ptr(3.37),
			EthicalScore1:       ptr(4.11),
		}
		result := CalculateOverallRating(odd)
		require.GreaterOrEqual(t, result, 0.0)
		require.LessOrEqual(t, result, 5.0)
		require.Equal(t, result, math.Round(result*10)/10)
	})
}

func TestCategoryAverages(t *testing.T) {
	scores := models.EvaluationScores{
		ReliabilityScore1: ptr(2),
		ReliabilityScore4: ptr(4),
	}
	averages := CategoryAverages(scores)
	require.Len(t, averages, len(models.RubricCategories))
	require.Equal(t, 3.0, averages[models.Reliability])
	require.Equal(t, 0.0, averages[models.JobKnowledge])

	sum := 0.0
	for _, category := range models.RubricCategories {
		sum += Weight(category)
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func fillAll(value float64) models.EvaluationScores {
	scores := models.EvaluationScores{}
	for _, field := range []**float64{
		&scores.JobKnowledgeScore1, &scores.JobKnowledgeScore2, &scores.JobKnowledgeScore3,
		&scores.QualityOfWorkScore1, &scores.QualityOfWorkScore2, &scores.QualityOfWorkScore3, &scores.QualityOfWorkScore4, &scores.QualityOfWorkScore5,
		&scores.AdaptabilityScore1, &scores.AdaptabilityScore2, &scores.AdaptabilityScore3,
		&scores.TeamworkScore1, &scores.TeamworkScore2, &scores.TeamworkScore3,
		&scores.ReliabilityScore1, &scores.ReliabilityScore2, &scores.ReliabilityScore3, &scores.ReliabilityScore4,
		&scores.EthicalScore1, &scores.EthicalScore2, &scores.EthicalScore3, &scores.EthicalScore4,
		&scores.CustomerServiceScore1, &scores.CustomerServiceScore2, &scores.CustomerServiceScore3, &scores.CustomerServiceScore4, &scores.CustomerServiceScore5,
	} {
		*field = ptr(value)
	}
	return scores
}

func ptr(value float64) *float64 {
	return &value
}
