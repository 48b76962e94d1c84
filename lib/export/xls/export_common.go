package xlsexport

import (
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const columnWidth = 22

// sheetWriter построчная запись таблицы: шапка закреплена и с автофильтром
type sheetWriter struct {
	f     *excelize.File
	sheet string
	cols  int
	row   int
}

func newSheetWriter(f *excelize.File, sheet string, cols int) *sheetWriter {
	return &sheetWriter{f: f, sheet: sheet, cols: cols}
}

func (w *sheetWriter) header(headers []string) error {
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Font:      &excelize.Font{Bold: true, Family: "Times New Roman", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
	})
	if err != nil {
		return err
	}
	values := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		values = append(values, h)
	}
	if err = w.write(values); err != nil {
		return err
	}
	first, last, err := w.rowRange(w.row)
	if err != nil {
		return err
	}
	if err = w.f.SetCellStyle(w.sheet, first, last, style); err != nil {
		return err
	}
	lastCol, err := excelize.ColumnNumberToName(w.cols)
	if err != nil {
		return err
	}
	if err = w.f.SetColWidth(w.sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}
	if err = w.f.AutoFilter(w.sheet, first+":"+last, nil); err != nil {
		return err
	}
	return w.f.SetPanes(w.sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// dataStyle оформление строк данных, оценки с одним знаком после запятой
func (w *sheetWriter) dataStyle(rowCount int) error {
	if rowCount == 0 {
		return nil
	}
	decimals := "0.0"
	style, err := w.f.NewStyle(&excelize.Style{
		Alignment:    &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Font:         &excelize.Font{Family: "Times New Roman", Size: 11},
		CustomNumFmt: &decimals,
	})
	if err != nil {
		return err
	}
	first, _, err := w.rowRange(w.row + 1)
	if err != nil {
		return err
	}
	_, last, err := w.rowRange(w.row + rowCount)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(w.sheet, first, last, style)
}

func (w *sheetWriter) write(values []interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	if err = w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "строка %d", w.row)
	}
	return nil
}

func (w *sheetWriter) rowRange(row int) (first, last string, err error) {
	first, err = excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", "", err
	}
	last, err = excelize.CoordinatesToCellName(w.cols, row)
	return first, last, err
}
