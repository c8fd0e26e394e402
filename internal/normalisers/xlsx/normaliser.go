// Package xlsx provides the normaliser for Office Open XML workbooks.
package xlsx

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// sheetSeparator joins the renderings of consecutive sheets.
const sheetSeparator = "\n"

// Normaliser handles XLSX workbooks.
type Normaliser struct{}

// New creates a new XLSX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise renders every sheet as CSV, in workbook order.
// Cells use their formatted display value, so numbers and dates read the
// way the spreadsheet shows them rather than as raw serials.
func (n *Normaliser) Normalise(content []byte) (string, error) {
	book, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: not an xlsx workbook: %v", domain.ErrCorruptInput, err)
	}
	defer book.Close()

	names := book.GetSheetList()
	if len(names) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", domain.ErrCorruptInput)
	}

	sheets := make([]string, 0, len(names))
	for _, name := range names {
		rows, err := book.GetRows(name)
		if err != nil {
			return "", fmt.Errorf("%w: sheet %q: %v", domain.ErrCorruptInput, name, err)
		}

		rendered, err := renderCSV(rows)
		if err != nil {
			return "", fmt.Errorf("render sheet %q: %w", name, err)
		}
		sheets = append(sheets, rendered)
	}

	return strings.Join(sheets, sheetSeparator), nil
}

// renderCSV writes rows as CSV, padding short rows to the widest row so every
// line has the same number of fields. The trailing newline is dropped.
func renderCSV(rows [][]string) (string, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range rows {
		record := make([]string, width)
		copy(record, row)
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
