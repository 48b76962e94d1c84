package rbac

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
)

// Provider правила доступа к маршрутам API и сводка разрешений ролей для фронта
type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	// Check known=false, если маршрут не описан правилами
	Check(userID string, role models.UserRole, method, path string) (allowed, known bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

var paramRe = regexp.MustCompile(`\{[^}/]+\}`)

type patternRule struct {
	pattern *regexp.Regexp
	handler models.RbacFunc
}

// routeTable правила одного http метода: сначала точные пути, затем шаблоны с {param}
type routeTable struct {
	exact    map[string]models.RbacFunc
	patterns []patternRule
}

func (t *routeTable) find(path string) (models.RbacFunc, bool) {
	if handler, ok := t.exact[path]; ok {
		return handler, true
	}
	for _, rule := range t.patterns {
		if rule.pattern.MatchString(path) {
			return rule.handler, true
		}
	}
	return nil, false
}

func NewHandler() {
	i := &impl{
		routes:      map[HTTPMethod]*routeTable{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	Instance = i
}

type impl struct {
	routes      map[HTTPMethod]*routeTable
	permissions map[models.UserRole]map[models.Module][]models.Permission
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	table, ok := i.routes[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	return table.find(normalizePath(path))
}

func (i *impl) Check(userID string, role models.UserRole, method, path string) (allowed, known bool) {
	handler, found := i.GetRuleFunc(method, path)
	if !found {
		return false, false
	}
	return handler(userID, role, path), true
}

func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) error {
	path, method, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		return err
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	table, ok := i.routes[method]
	if !ok {
		table = &routeTable{exact: map[string]models.RbacFunc{}}
		i.routes[method] = table
	}
	if isExactPath(path) {
		table.exact[path] = handler
	} else {
		table.patterns = append(table.patterns, patternRule{pattern: pathToRegex(path), handler: handler})
	}
	i.addPermission(module, permission, roles)
	return nil
}

// mustRegister ошибка в описании правил это ошибка сборки, сервис не стартует
func (i *impl) mustRegister(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	if err := i.RegisterRule(module, permission, roles, swaggerPattern, handler); err != nil {
		panic(err.Error())
	}
}

func (i *impl) addPermission(module models.Module, permission models.Permission, roles []models.UserRole) {
	for _, role := range roles {
		modules, ok := i.permissions[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			i.permissions[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions[role]
}

func isExactPath(path string) bool {
	return !strings.Contains(path, "{")
}

// pathToRegex {param} соответствует одному сегменту пути
func pathToRegex(path string) *regexp.Regexp {
	parts := paramRe.Split(path, -1)
	for idx, part := range parts {
		parts[idx] = regexp.QuoteMeta(part)
	}
	return regexp.MustCompile("^" + strings.Join(parts, "([^/]+)") + "$")
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// AllowSelfOrRoleFunc роли из списка или сам пользователь, чей ID стоит в пути после prefix
func AllowSelfOrRoleFunc(accessRoles []models.UserRole, prefix string) models.RbacFunc {
	byRole := AllowByRoleFunc(accessRoles)
	return func(userID string, role models.UserRole, uri string) bool {
		if byRole(userID, role, uri) {
			return true
		}
		return pathParam(normalizePath(uri), prefix) == userID
	}
}

// pathParam сегмент пути сразу после prefix
func pathParam(path, prefix string) string {
	rest, found := strings.CutPrefix(path, normalizePath(prefix)+"/")
	if !found {
		return ""
	}
	param, _, _ := strings.Cut(rest, "/")
	return param
}

// parseSwaggerPattern строка вида "/api/v1/employee/{id} [get]", как в аннотации @router
func parseSwaggerPattern(pattern string) (path string, method HTTPMethod, err error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	if open == -1 || !strings.HasSuffix(pattern, "]") {
		return "", "", errors.Errorf("в правиле не указан метод: %v", pattern)
	}
	method = HTTPMethod(strings.ToUpper(strings.TrimSpace(pattern[open+1 : len(pattern)-1])))
	if method == "" {
		return "", "", errors.Errorf("в правиле не указан метод: %v", pattern)
	}
	return normalizePath(pattern[:open]), method, nil
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
