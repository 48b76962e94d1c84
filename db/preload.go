package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-evaluation-backend/config"
	branchstore "hr-evaluation-backend/lib/dicts/branch/store"
	departmentstore "hr-evaluation-backend/lib/dicts/department/store"
	positionstore "hr-evaluation-backend/lib/dicts/position/store"
	employeestore "hr-evaluation-backend/lib/employee/store"
	authutils "hr-evaluation-backend/lib/utils/auth-utils"
	"hr-evaluation-backend/models"
	dbmodels "hr-evaluation-backend/models/db"
)

type departmentFixture struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type branchFixture struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type positionFixture struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// accountFixture справочники указываются по названию (филиал по коду), пароль в открытом виде
type accountFixture struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Branch     string `json:"branch"`
	Role       string `json:"role"`
	HireDate   string `json:"hireDate"`
	IsActive   *bool  `json:"isActive"`
	Bio        string `json:"bio"`
}

func InitPreload() {
	dir := config.Conf.Fixtures.Dir
	fillDepartments(dir)
	fillBranches(dir)
	fillPositions(dir)
	fillAccounts(dir)
	addAdmin()
}

func fillDepartments(dir string) {
	store := departmentstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения подразделений")
		return
	}
	if count > 0 {
		return
	}
	var list []departmentFixture
	if err = readFixture(dir, "departments.json", &list); err != nil {
		log.WithError(err).Error("ошибка загрузки файла с подразделениями")
		return
	}
	for _, item := range list {
		if _, err = store.Create(dbmodels.Department{Name: item.Name, Code: item.Code}); err != nil {
			log.WithError(err).WithField("department_name", item.Name).Error("ошибка добавления подразделения")
		}
	}
	log.WithField("count", len(list)).Info("подразделения заполнены")
}

func fillBranches(dir string) {
	store := branchstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения филиалов")
		return
	}
	if count > 0 {
		return
	}
	var list []branchFixture
	if err = readFixture(dir, "branches.json", &list); err != nil {
		log.WithError(err).Error("ошибка загрузки файла с филиалами")
		return
	}
	for _, item := range list {
		rec := dbmodels.Branch{Code: item.Code, Name: item.Name, Address: item.Address}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).WithField("branch_code", item.Code).Error("ошибка добавления филиала")
		}
	}
	log.WithField("count", len(list)).Info("филиалы заполнены")
}

func fillPositions(dir string) {
	store := positionstore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения должностей")
		return
	}
	if count > 0 {
		return
	}
	var list []positionFixture
	if err = readFixture(dir, "positions.json", &list); err != nil {
		log.WithError(err).Error("ошибка загрузки файла с должностями")
		return
	}
	departments, err := departmentIDs()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения должностей")
		return
	}
	for _, item := range list {
		rec := dbmodels.Position{Name: item.Name, DepartmentID: departments[normalize(item.Department)]}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).WithField("position_name", item.Name).Error("ошибка добавления должности")
		}
	}
	log.WithField("count", len(list)).Info("должности заполнены")
}

func fillAccounts(dir string) {
	store := employeestore.NewInstance(DB)
	count, err := store.Count(false)
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения сотрудников")
		return
	}
	if count > 0 {
		return
	}
	var list []accountFixture
	if err = readFixture(dir, "accounts.json", &list); err != nil {
		log.WithError(err).Error("ошибка загрузки файла с сотрудниками")
		return
	}
	departments, err := departmentIDs()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения сотрудников")
		return
	}
	branches, err := branchIDs()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения сотрудников")
		return
	}
	positions, err := positionIDs()
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения сотрудников")
		return
	}
	added := 0
	for _, item := range list {
		rec, err := accountRecord(item, departments, branches, positions)
		if err != nil {
			log.WithError(err).WithField("email", item.Email).Error("ошибка добавления сотрудника")
			continue
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).WithField("email", item.Email).Error("ошибка добавления сотрудника")
			continue
		}
		added++
	}
	log.WithField("count", added).Info("сотрудники заполнены")
}

func accountRecord(item accountFixture, departments, branches, positions map[string]string) (dbmodels.Employee, error) {
	role := models.UserRole(strings.ToUpper(item.Role))
	if !role.IsValid() {
		role = models.EmployeeRole
	}
	hash, err := authutils.HashPassword(item.Password)
	if err != nil {
		return dbmodels.Employee{}, err
	}
	isActive := true
	if item.IsActive != nil {
		isActive = *item.IsActive
	}
	rec := dbmodels.Employee{
		Name:         item.Name,
		Email:        item.Email,
		Password:     hash,
		PositionID:   positions[normalize(item.Position)],
		DepartmentID: departments[normalize(item.Department)],
		BranchID:     branches[normalize(item.Branch)],
		Role:         role,
		IsActive:     isActive,
		Bio:          item.Bio,
	}
	if item.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", item.HireDate)
		if err != nil {
			return dbmodels.Employee{}, errors.Wrap(err, "неверная дата приема")
		}
		rec.HireDate = &hireDate
	}
	return rec, nil
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	store := employeestore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	now := time.Now()
	rec := dbmodels.Employee{
		Name:     strings.TrimSpace(config.Conf.Admin.FirstName + " " + config.Conf.Admin.LastName),
		Email:    config.Conf.Admin.Email,
		Password: hash,
		Role:     models.AdminRole,
		IsActive: true,
		HireDate: &now,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}

func departmentIDs() (map[string]string, error) {
	list, err := departmentstore.NewInstance(DB).List("")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(list))
	for _, rec := range list {
		result[normalize(rec.Name)] = rec.ID
	}
	return result, nil
}

func branchIDs() (map[string]string, error) {
	list, err := branchstore.NewInstance(DB).List("")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(list))
	for _, rec := range list {
		result[normalize(rec.Code)] = rec.ID
		result[normalize(rec.Name)] = rec.ID
	}
	return result, nil
}

func positionIDs() (map[string]string, error) {
	list, err := positionstore.NewInstance(DB).List("", "")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(list))
	for _, rec := range list {
		result[normalize(rec.Name)] = rec.ID
	}
	return result, nil
}

func readFixture(dir, fileName string, dest interface{}) error {
	body, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		return errors.Wrap(err, "ошибка чтения файла")
	}
	if err = json.Unmarshal(body, dest); err != nil {
		return errors.Wrapf(err, "ошибка разбора %s", fileName)
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
