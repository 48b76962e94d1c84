package pdfexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

func TestTransliterate(t *testing.T) {
	require.Equal(t, "Ivan Petrov", Transliterate("Иван Петров"))
	require.Equal(t, "Shchukin - \"Q1\"", Transliterate("Щукин — «Q1»"))
	require.Equal(t, "2024 Q1", Transliterate("2024 Q1"))
}

func TestGenerateEvaluationReport(t *testing.T) {
	five := 5.0
	rec := dbmodels.Submission{
		EmployeeName:      "Иван Петров",
		EvaluatorName:     "Анна Смирнова",
		ReviewPeriod:      "2024 Q1",
		SubmittedAt:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		EmployeeSignature: "Иван Петров",
	}
	scores := models.EvaluationScores{JobKnowledgeScore1: &five, OverallComments: "Отличная работа"}
	view := evaluationapimodels.SubmissionConvert(rec, models.ApprovalEmployeeApproved, models.HighlightOld)
	view.EvaluationData = scores

	body, err := GenerateEvaluationReport("", view, ReportFiles{})
	require.Nil(t, err)
	require.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestGetImgType(t *testing.T) {
	imgType, err := GetImgType("sign.PNG")
	require.Nil(t, err)
	require.Equal(t, "png", imgType)
	_, err = GetImgType("sign")
	require.NotNil(t, err)
}
