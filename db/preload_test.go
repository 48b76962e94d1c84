package db

import (
	"testing"

	"github.com/stretchr/testify/require"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	"hr-evaluation-backend/models"
)

func TestAccountRecord(t *testing.T) {
	departments := map[string]string{"it": "d1"}
	branches := map[string]string{"msk": "b1", "москва": "b1"}
	positions := map[string]string{"разработчик": "p1"}

	t.Run(`dictionaries are resolved by name and code`, func(t *testing.T) {
		rec, err := accountRecord(accountFixture{
			Name:       "Иван Петров",
			Email:      "ivan@company.ru",
			Password:   "emp123",
			Position:   " Разработчик ",
			Department: "IT",
			Branch:     "MSK",
			Role:       "evaluator",
			HireDate:   "2022-02-01",
		}, departments, branches, positions)
		require.Nil(t, err)
		require.Equal(t, "d1", rec.DepartmentID)
		require.Equal(t, "b1", rec.BranchID)
		require.Equal(t, "p1", rec.PositionID)
		require.Equal(t, models.EvaluatorRole, rec.Role)
		require.True(t, rec.IsActive)
		require.NotNil(t, rec.HireDate)
		require.Equal(t, "2022-02-01", rec.HireDate.Format("2006-01-02"))
		require.NotEqual(t, "emp123", rec.Password)
		require.True(t, authutils.CheckPassword(rec.Password, "emp123"))
	})

	t.Run(`unknown role falls back to employee`, func(t *testing.T) {
		inactive := false
		rec, err := accountRecord(accountFixture{Email: "a@b.ru", Password: "x", Role: "boss", IsActive: &inactive},
			departments, branches, positions)
		require.Nil(t, err)
		require.Equal(t, models.EmployeeRole, rec.Role)
		require.False(t, rec.IsActive)
		require.Empty(t, rec.DepartmentID)
	})

	t.Run(`bad hire date`, func(t *testing.T) {
		_, err := accountRecord(accountFixture{Email: "a@b.ru", Password: "x", HireDate: "01.02.2022"},
			departments, branches, positions)
		require.NotNil(t, err)
	})
}
