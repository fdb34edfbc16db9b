package tabular

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseXLSXFile reads one sheet of a workbook into a RawTable. Carriers ship
// the same rate tables as spreadsheets about as often as delimited text, so
// the sheet's first row is treated as the header line and the rest as data
// rows, under the same shape rules as Parse. An empty sheetName selects the
// first sheet.
func ParseXLSXFile(path, sheetName string) (*RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	records, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	return FromRecords(records)
}

// FromRecords builds a RawTable from pre-split rows, applying the same
// validation as Parse. Fully blank rows are discarded.
func FromRecords(records [][]string) (*RawTable, error) {
	var kept [][]string
	for _, rec := range records {
		blank := true
		trimmed := make([]string, len(rec))
		for i, cell := range rec {
			trimmed[i] = strings.TrimSpace(cell)
			if trimmed[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		kept = append(kept, trimmed)
	}
	if len(kept) < 2 {
		return nil, ErrFormat
	}
	if len(kept[0]) < 2 {
		return nil, ErrFormat
	}
	rows := kept[1:]
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return &RawTable{Headers: kept[0], Rows: rows, Delimiter: '\t'}, nil
}
