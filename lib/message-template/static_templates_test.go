package messagetemplate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
)

func TestTemplates(t *testing.T) {
	t.Run(`evaluation awaiting`, func(t *testing.T) {
		title, msg, err := BuildEvaluationAwaitingMsg(models.EvaluationTemplateData{
			EmployeeName:  "Иван Петров",
			EvaluatorName: "Анна Смирнова",
			ReviewPeriod:  "2024 Q1",
			OverallRating: 4.3,
		})
		require.Nil(t, err)
		require.Equal(t, evaluationAwaitingTitle, title)
		require.Contains(t, msg, "Иван Петров")
		require.Contains(t, msg, "«2024 Q1»")
		require.Contains(t, msg, "Итоговая оценка: 4.3 из 5.")
	})

	t.Run(`registration rejected with and without reason`, func(t *testing.T) {
		_, msg, err := BuildRegistrationRejectedMsg(models.RegistrationTemplateData{Name: "Иван", RejectReason: "дубликат"})
		require.Nil(t, err)
		require.Contains(t, msg, "Причина: дубликат")

		_, msg, err = BuildRegistrationRejectedMsg(models.RegistrationTemplateData{Name: "Иван"})
		require.Nil(t, err)
		require.NotContains(t, msg, "Причина")
	})
}
