package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-evaluation-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/submission/{id}/sign_employee [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		require.True(t, r1.MatchString("/api/v1/submission/123-321/sign_employee"))
		require.False(t, r1.MatchString("/api/v1/submission/sign_employee"))

		path, method, err = parseSwaggerPattern("/api/v1/employee/{id}/files/{fileID} [post]")
		require.Nil(t, err)
		require.Equal(t, POST, method)
		r2 := pathToRegex(path)

		require.True(t, r2.MatchString("/api/v1/employee/123-321/files/qwe-ewr123-wr-12"))
		require.False(t, r2.MatchString("/api/v1/employee/we-ewr123-wr-12/files"))
	})

	t.Run(`pattern without method`, func(t *testing.T) {
		_, _, err := parseSwaggerPattern("/api/v1/employee")
		require.NotNil(t, err)
		_, _, err = parseSwaggerPattern("/api/v1/employee []")
		require.NotNil(t, err)
	})

	t.Run(`path normalization`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/employee", normalizePath("api//v1/employee/"))
	})

	t.Run(`param does not cross segments`, func(t *testing.T) {
		r := pathToRegex("/api/v1/employee/{id}")
		require.True(t, r.MatchString("/api/v1/employee/e1"))
		require.False(t, r.MatchString("/api/v1/employee/e1/avatar"))
	})
}

func TestRules(t *testing.T) {
	NewHandler()

	check := func(method, path string, userID string, role models.UserRole) bool {
		handler, found := Instance.GetRuleFunc(method, path)
		require.True(t, found, path)
		return handler(userID, role, path)
	}

	t.Run(`exact path wins over pattern`, func(t *testing.T) {
		require.True(t, check("GET", "/api/v1/employee/deleted", "u1", models.HRRole))
		require.False(t, check("GET", "/api/v1/employee/deleted", "u1", models.EvaluatorRole))
	})

	t.Run(`employee sees own profile only`, func(t *testing.T) {
		require.True(t, check("GET", "/api/v1/employee/u1", "u1", models.EmployeeRole))
		require.False(t, check("GET", "/api/v1/employee/u2", "u1", models.EmployeeRole))
		require.True(t, check("get", "/api/v1/employee/u2/", "u1", models.EvaluatorRole))
		require.True(t, check("POST", "/api/v1/employee/u1/signature", "u1", models.EmployeeRole))
		require.False(t, check("POST", "/api/v1/employee/u2/signature", "u1", models.EvaluatorRole))
	})

	t.Run(`registrations are admin only`, func(t *testing.T) {
		require.True(t, check("PUT", "/api/v1/admin/registration/r1/approve", "u1", models.AdminRole))
		require.False(t, check("PUT", "/api/v1/admin/registration/r1/approve", "u1", models.HRRole))
	})

	t.Run(`signing`, func(t *testing.T) {
		require.True(t, check("PUT", "/api/v1/submission/s1/sign_employee", "u1", models.EmployeeRole))
		require.False(t, check("PUT", "/api/v1/submission/s1/sign_evaluator", "u1", models.EmployeeRole))
	})

	t.Run(`unknown route is not registered`, func(t *testing.T) {
		_, found := Instance.GetRuleFunc("GET", "/api/v1/unknown")
		require.False(t, found)
		allowed, known := Instance.Check("u1", models.AdminRole, "GET", "/api/v1/unknown")
		require.False(t, known)
		require.False(t, allowed)
	})

	t.Run(`check`, func(t *testing.T) {
		allowed, known := Instance.Check("u1", models.HRRole, "GET", "/api/v1/dashboard/hr")
		require.True(t, known)
		require.True(t, allowed)
		allowed, known = Instance.Check("u1", models.EmployeeRole, "GET", "/api/v1/dashboard/hr")
		require.True(t, known)
		require.False(t, allowed)
	})

	t.Run(`permissions for frontend`, func(t *testing.T) {
		permissions := Instance.GetPermissions(models.EmployeeRole)
		require.Contains(t, permissions[models.EvaluationsModule], models.SignPermission)
		require.NotContains(t, permissions, models.RegistrationsModule)
		require.Contains(t, Instance.GetPermissions(models.AdminRole), models.RegistrationsModule)
	})
}
