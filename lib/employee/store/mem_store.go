package employeestore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	dbmodels "hr-evaluation-backend/models/db"
)

// MemStore хранилище сотрудников в памяти, используется в тестах обработчиков
type MemStore struct {
	mu        sync.Mutex
	recs      map[string]dbmodels.Employee
	Suspended map[string]bool
}

func NewMemInstance(recs ...dbmodels.Employee) *MemStore {
	s := &MemStore{
		recs:      map[string]dbmodels.Employee{},
		Suspended: map[string]bool{},
	}
	for _, rec := range recs {
		_, _ = s.Create(rec)
	}
	return s
}

func (s *MemStore) Create(rec dbmodels.Employee) (id string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Email = strings.ToLower(strings.TrimSpace(rec.Email))
	for _, item := range s.recs {
		if item.Email == rec.Email {
			return "", errors.New("duplicate key value violates unique constraint")
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *MemStore) GetByID(id string, withDeleted bool) (*dbmodels.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || (rec.IsDeleted() && !withDeleted) {
		return nil, nil
	}
	return &rec, nil
}

func (s *MemStore) FindByEmail(email string) (*dbmodels.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, rec := range s.recs {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *MemStore) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, rowCount int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list = []dbmodels.Employee{}
	for _, rec := range s.recs {
		if rec.IsDeleted() && !filter.IncludeDeleted {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(rec.Email, strings.ToLower(filter.Search)) {
			continue
		}
		if filter.DepartmentID != "" && rec.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.Role != "" && rec.Role != filter.Role {
			continue
		}
		if filter.ActiveOnly && (!rec.IsActive || s.Suspended[rec.ID]) {
			continue
		}
		list = append(list, rec)
	}
	sort.Slice(list, func(a, b int) bool { return list[a].Name < list[b].Name })
	return list, int64(len(list)), nil
}

func (s *MemStore) ListByIDs(ids []string) (list []dbmodels.Employee, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list = []dbmodels.Employee{}
	for _, id := range ids {
		if rec, ok := s.recs[id]; ok && !rec.IsDeleted() {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *MemStore) ListDeleted() (list []dbmodels.Employee, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list = []dbmodels.Employee{}
	for _, rec := range s.recs {
		if rec.IsDeleted() {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *MemStore) Update(id string, updMap map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || rec.IsDeleted() {
		return errors.New("сотрудник не найден")
	}
	for key, value := range updMap {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "email":
			rec.Email = strings.ToLower(value.(string))
		case "password":
			rec.Password = value.(string)
		case "position_id":
			rec.PositionID = value.(string)
		case "department_id":
			rec.DepartmentID = value.(string)
		case "branch_id":
			rec.BranchID = value.(string)
		case "role":
			rec.Role = value.(models.UserRole)
		case "hire_date":
			rec.HireDate = value.(*time.Time)
		case "is_active":
			rec.IsActive = value.(bool)
		case "bio":
			rec.Bio = value.(string)
		case "avatar":
			rec.Avatar = value.(string)
		case "signature":
			rec.Signature = value.(string)
		case "last_login":
			rec.LastLogin = value.(*time.Time)
		}
	}
	s.recs[id] = rec
	return nil
}

func (s *MemStore) Delete(id, deletedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil
	}
	rec.DeletedBy = deletedBy
	rec.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	s.recs[id] = rec
	return nil
}

func (s *MemStore) Restore(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || !rec.IsDeleted() {
		return errors.New("удаленный сотрудник не найден")
	}
	rec.DeletedBy = ""
	rec.DeletedAt = gorm.DeletedAt{}
	s.recs[id] = rec
	return nil
}

func (s *MemStore) Count(activeOnly bool) (int64, error) {
	_, rowCount, err := s.List(employeeapimodels.EmployeeFilter{ActiveOnly: activeOnly})
	return rowCount, err
}

func (s *MemStore) CountDeleted() (int64, error) {
	list, err := s.ListDeleted()
	return int64(len(list)), err
}

func (s *MemStore) CountByDepartment() (result []DepartmentCount, err error) {
	list, _, err := s.List(employeeapimodels.EmployeeFilter{})
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	for _, rec := range list {
		counts[rec.DepartmentID]++
	}
	result = []DepartmentCount{}
	for departmentID, rowCount := range counts {
		result = append(result, DepartmentCount{DepartmentID: departmentID, RowCount: rowCount})
	}
	sort.Slice(result, func(a, b int) bool { return result[a].DepartmentID < result[b].DepartmentID })
	return result, nil
}
