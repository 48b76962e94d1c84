package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"hr-evaluation-backend/models"
	evaluationapimodels "hr-evaluation-backend/models/api/evaluation"
)

const (
	fontFile     = "Arial.ttf"
	fontBoldFile = "Arial Bold.ttf"
)

type ReportFiles struct {
	EmployeeSign  *models.File
	EvaluatorSign *models.File
}

// GenerateEvaluationReport формирует pdf отчет по оценке.
// Без ttf шрифта в fontDir используется встроенный Helvetica с транслитерацией.
func GenerateEvaluationReport(fontDir string, item evaluationapimodels.SubmissionView, files ReportFiles) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateEvaluationReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	family, text := setupFont(pdf, fontDir)
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, text("Оценка эффективности сотрудника"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 11)
	info := [][2]string{
		{"Сотрудник", item.EmployeeName},
		{"Подразделение", item.DepartmentName},
		{"Оценщик", item.EvaluatorName},
		{"Период", item.ReviewPeriod},
		{"Дата отправки", item.SubmittedAt.Format("02.01.2006 15:04")},
		{"Статус", item.StatusName},
	}
	for _, line := range info {
		pdf.CellFormat(50, 7, text(line[0]+":"), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, text(line[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(family, "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(100, 8, text("Категория"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, text("Вес"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, text("Средний балл"), "1", 1, "C", true, 0, "")
	pdf.SetFont(family, "", 11)
	for _, category := range item.Categories {
		pdf.CellFormat(100, 8, text(category.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.0f%%", category.Weight*100), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.1f", category.Average), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(130, 9, text("Итоговая оценка"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 9, fmt.Sprintf("%.1f", item.OverallRating), "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 10)
	for _, category := range item.Categories {
		if strings.TrimSpace(category.Comments) == "" {
			continue
		}
		pdf.MultiCell(0, 6, text(category.Name+": "+category.Comments), "", "L", false)
	}
	if comments := strings.TrimSpace(item.EvaluationData.OverallComments); comments != "" {
		pdf.MultiCell(0, 6, text("Общий комментарий: "+comments), "", "L", false)
	}
	pdf.Ln(6)

	writeSignature(pdf, family, text, "Подпись сотрудника", item.EmployeeSignature, item.EmployeeApprovedAt != nil, files.EmployeeSign)
	writeSignature(pdf, family, text, "Подпись оценщика", item.EvaluatorSignature, item.EvaluatorApprovedAt != nil, files.EvaluatorSign)

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setupFont(pdf *fpdf.Fpdf, fontDir string) (family string, text func(string) string) {
	if fontDir != "" {
		if _, err := os.Stat(filepath.Join(fontDir, fontFile)); err == nil {
			pdf.AddUTF8Font("Arial", "", fontFile)
			bold := fontFile
			if _, err = os.Stat(filepath.Join(fontDir, fontBoldFile)); err == nil {
				bold = fontBoldFile
			}
			pdf.AddUTF8Font("Arial", "B", bold)
			return "Arial", func(s string) string { return s }
		}
	}
	return "Helvetica", Transliterate
}

func writeSignature(pdf *fpdf.Fpdf, family string, text func(string) string, title, signature string, approved bool, img *models.File) {
	pdf.SetFont(family, "", 11)
	value := "не подписано"
	if strings.TrimSpace(signature) != "" {
		value = signature
	} else if approved {
		value = "подписано"
	}
	pdf.CellFormat(60, 8, text(title+":"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, text(value), "", 1, "L", false, 0, "")
	if img == nil || len(img.Body) == 0 {
		return
	}
	imgType, err := GetImgType(img.FileName)
	if err != nil {
		return
	}
	pdf.RegisterImageOptionsReader(img.FileName, fpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(img.Body))
	if pdf.Error() != nil {
		// битое изображение не должно ломать отчет
		pdf.ClearError()
		return
	}
	pdf.ImageOptions(img.FileName, pdf.GetX()+60, pdf.GetY(), 40, 0, true, fpdf.ImageOptions{ImageType: imgType}, 0, "")
}

func GetImgType(fileName string) (string, error) {
	pos := strings.LastIndex(fileName, ".")
	if pos < 0 {
		return "", errors.Errorf("не удалось получить расширение файла: %s", fileName)
	}
	return strings.ToLower(fileName[pos+1:]), nil
}
