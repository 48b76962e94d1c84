package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"hr-evaluation-backend/models"
	employeeapimodels "hr-evaluation-backend/models/api/employee"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

type Provider interface {
	ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error)
	ExportSubmissionList(list []evaluationapimodels.SubmissionView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const defaultSheet = "Sheet1"

var employeeHeaders = []string{"ФИО", "Email", "Должность", "Подразделение", "Филиал", "Роль", "Дата приема", "Статус"}

func (i impl) ExportEmployeeList(list []employeeapimodels.EmployeeView) (*bytes.Buffer, error) {
	return export("Сотрудники", employeeHeaders, len(list), func(w *sheetWriter) error {
		for _, item := range list {
			if err := w.write(employeeRow(item)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (i impl) ExportSubmissionList(list []evaluationapimodels.SubmissionView) (*bytes.Buffer, error) {
	headers := []string{"Сотрудник", "Подразделение", "Оценщик", "Период", "Дата отправки"}
	for _, category := range models.RubricCategories {
		headers = append(headers, category.ToHuman())
	}
	headers = append(headers, "Итоговая оценка", "Статус")
	return export("Оценки", headers, len(list), func(w *sheetWriter) error {
		for _, item := range list {
			if err := w.write(submissionRow(item, len(headers))); err != nil {
				return err
			}
		}
		return nil
	})
}

func export(sheetName string, headers []string, rowCount int, writeData func(w *sheetWriter) error) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа")
	}
	w := newSheetWriter(f, sheetName, len(headers))
	if err := w.header(headers); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err := w.dataStyle(rowCount); err != nil {
		return nil, errors.Wrap(err, "ошибка оформления таблицы в xlsx")
	}
	if err := writeData(w); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	return f.WriteToBuffer()
}

func employeeRow(item employeeapimodels.EmployeeView) []interface{} {
	hireDate := ""
	if item.HireDate != nil {
		hireDate = item.HireDate.Format("02.01.2006")
	}
	status := "Активен"
	switch {
	case item.IsDeleted:
		status = "Удален"
	case item.IsSuspended:
		status = "Отстранен"
	case !item.EffectiveActive:
		status = "Неактивен"
	}
	return []interface{}{item.Name, item.Email, item.PositionName, item.DepartmentName,
		item.BranchName, item.RoleName, hireDate, status}
}

func submissionRow(item evaluationapimodels.SubmissionView, colCount int) []interface{} {
	values := make([]interface{}, 0, colCount)
	values = append(values, item.EmployeeName, item.DepartmentName, item.EvaluatorName, item.ReviewPeriod,
		item.SubmittedAt.Format("02.01.2006 15:04"))
	for _, category := range item.Categories {
		values = append(values, category.Average)
	}
	return append(values, item.OverallRating, item.StatusName)
}
