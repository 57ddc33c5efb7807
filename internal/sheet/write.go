package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"school-onboarder/internal/reconcile"
	"school-onboarder/internal/schema"
	"school-onboarder/internal/table"
)

// NotificationsSheet names the sheet listing the run's notifications.
const NotificationsSheet = "Notifications"

// WriteResult saves res as a workbook at path: one sheet per entity, named
// after it, followed by the notifications.
func WriteResult(path string, res *reconcile.Result) error {
	f, err := Workbook(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

// Workbook renders res into a new in-memory workbook.
func Workbook(res *reconcile.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	w := &workbookWriter{file: f, headerStyle: headerStyle}

	for i, en := range schema.Entities {
		name := en.String()

		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), name)
		} else {
			_, err = f.NewSheet(name)
		}

		if err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}

		if err := w.entity(name, res.Table(en)); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := w.notifications(res); err != nil {
		f.Close()
		return nil, err
	}

	f.SetActiveSheet(0)

	return f, nil
}

type workbookWriter struct {
	file        *excelize.File
	headerStyle int
}

func (w *workbookWriter) entity(sheetName string, t *schema.Table) error {
	fields := t.Fields()
	if err := w.header(sheetName, fields); err != nil {
		return err
	}

	for r := range t.Len() {
		for c, v := range t.Row(r) {
			if err := w.cell(sheetName, c+1, r+2, cellValue(v)); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *workbookWriter) notifications(res *reconcile.Result) error {
	if _, err := w.file.NewSheet(NotificationsSheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", NotificationsSheet, err)
	}

	if err := w.header(NotificationsSheet, []string{"Severity", "Code", "Message"}); err != nil {
		return err
	}

	for r, n := range res.Notifications.All() {
		for c, v := range []string{n.Severity.String(), n.Code, n.Message} {
			if err := w.cell(NotificationsSheet, c+1, r+2, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *workbookWriter) header(sheetName string, names []string) error {
	for i, name := range names {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}

		if err := w.file.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header %s: %w", cell, err)
		}

		if err := w.file.SetCellStyle(sheetName, cell, cell, w.headerStyle); err != nil {
			return fmt.Errorf("style header %s: %w", cell, err)
		}
	}

	return nil
}

func (w *workbookWriter) cell(sheetName string, col, row int, v any) error {
	if v == nil {
		return nil
	}

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	if err := w.file.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheetName, cell, err)
	}

	return nil
}

// cellValue maps a Value to what excelize stores: nil for missing, int64
// for whole numbers, float64 for other numbers and string for text.
func cellValue(v table.Value) any {
	switch v.Kind() {
	case table.KindNumber:
		d, _ := v.Decimal()
		if d.IsInteger() {
			return d.IntPart()
		}

		return d.InexactFloat64()
	case table.KindText:
		return v.Text()
	default:
		return nil
	}
}
