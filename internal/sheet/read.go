package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"school-onboarder/internal/table"
)

const utf8BOM = "\ufeff"

// Read decodes the file at path into a raw table. The format is chosen by
// extension.
func Read(path string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".xlsx", ".xlsm", ".xltx":
		return readWorkbook(path)
	case ".csv":
		return readDelimited(path, ',')
	case ".tsv":
		return readDelimited(path, '\t')
	default:
		return nil, &FormatError{Path: path, Ext: ext}
	}
}

func readWorkbook(path string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySheet)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptySheet)
	}

	data := make([][]table.Value, 0, len(rows)-1)

	for r, row := range rows[1:] {
		values := make([]table.Value, len(row))

		for c, raw := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}

			typ, err := f.GetCellType(sheetName, cell)
			if err != nil {
				return nil, fmt.Errorf("read cell %s: %w", cell, err)
			}

			values[c] = workbookCell(raw, typ)
		}

		data = append(data, values)
	}

	return table.FromRows(rows[0], dropBlankRows(data)), nil
}

// workbookCell keeps string-typed cells as text so that identifiers such
// as "007" survive; every other cell goes through table.ParseCell.
func workbookCell(raw string, typ excelize.CellType) table.Value {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		if strings.TrimSpace(raw) == "" {
			return table.Missing()
		}

		return table.Text(raw)
	default:
		return table.ParseCell(raw)
	}
}

func readDelimited(path string, comma rune) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	return decodeDelimited(file, comma)
}

func decodeDelimited(r io.Reader, comma rune) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySheet
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var data [][]table.Value

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		values := make([]table.Value, len(record))
		for i, raw := range record {
			values[i] = table.ParseCell(raw)
		}

		data = append(data, values)
	}

	return table.FromRows(header, dropBlankRows(data)), nil
}

func dropBlankRows(rows [][]table.Value) [][]table.Value {
	out := rows[:0]

	for _, row := range rows {
		for _, v := range row {
			if !v.IsBlank() {
				out = append(out, row)
				break
			}
		}
	}

	return out
}
