package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
	dbmodels "hr-evaluation-backend/models/db"
)

func TestExportEmployeeList(t *testing.T) {
	view := employeeapimodels.EmployeeConvert(dbmodels.Employee{
		Name:     "Иван Петров",
		Email:    "ivan@company.ru",
		Role:     models.EmployeeRole,
		IsActive: true,
	}, true)
	buf, err := impl{}.ExportEmployeeList([]employeeapimodels.EmployeeView{view})
	require.Nil(t, err)

	f, err := excelize.OpenReader(buf)
	require.Nil(t, err)
	defer f.Close()
	value, err := f.GetCellValue("Сотрудники", "A1")
	require.Nil(t, err)
	require.Equal(t, "ФИО", value)
	value, err = f.GetCellValue("Сотрудники", "A2")
	require.Nil(t, err)
	require.Equal(t, "Иван Петров", value)
	value, err = f.GetCellValue("Сотрудники", "H2")
	require.Nil(t, err)
	require.Equal(t, "Отстранен", value)
}

func TestExportSubmissionList(t *testing.T) {
	t.Run(`empty list has header only`, func(t *testing.T) {
		buf, err := impl{}.ExportSubmissionList(nil)
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Оценки")
		require.Nil(t, err)
		require.Len(t, rows, 1)
		require.Len(t, rows[0], 5+len(models.RubricCategories)+2)
	})

	t.Run(`row values`, func(t *testing.T) {
		view := evaluationapimodels.SubmissionView{
			EmployeeName:  "Иван Петров",
			EvaluatorName: "Анна Смирнова",
			SubmittedAt:   time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			OverallRating: 4.2,
			StatusName:    models.ApprovalPending.ToHuman(),
		}
		buf, err := impl{}.ExportSubmissionList([]evaluationapimodels.SubmissionView{view})
		require.Nil(t, err)
		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()
		rows, err := f.GetRows("Оценки")
		require.Nil(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "01.03.2024 10:30", rows[1][4])
	})
}
