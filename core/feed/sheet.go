package feed

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"stock-sync/core/reconcile"
	"stock-sync/core/syncerr"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

var (
	errMemberNotFound = errors.New("no matching sheet in archive")
	errNoSheet        = errors.New("workbook has no sheets")
	errNoHeader       = errors.New("header row is missing")
)

// readSheet returns the cells of the first worksheet, row by row.
// The format is picked from the file extension.
func readSheet(name string, data []byte) ([][]string, error) {
	switch strings.ToLower(path.Ext(name)) {
	case extXLSX:
		return readXLSX(data)
	default:
		return readXLS(data)
	}
}

func readXLS(data []byte) (rows [][]string, err error) {
	const op = "read xls"

	// The xls decoder panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, syncerr.DataFormat(op, "sheet", "", fmt.Errorf("%v", r))
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, syncerr.DataFormat(op, "sheet", "", err)
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, syncerr.DataFormat(op, "sheet", "", errNoSheet)
	}

	rows = make([][]string, int(sheet.MaxRow)+1)
	for i := range rows {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, row.LastCol())
		for j := range cells {
			cells[j] = row.Col(j)
		}
		rows[i] = cells
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	const op = "read xlsx"

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, syncerr.DataFormat(op, "sheet", "", err)
	}
	defer f.Close()

	name := f.GetSheetName(0)
	if name == "" {
		return nil, syncerr.DataFormat(op, "sheet", "", errNoSheet)
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, syncerr.DataFormat(op, "sheet", name, err)
	}
	return rows, nil
}

// columns holds the positions of the columns the loader reads.
type columns struct {
	code, quantity, price int
}

func locateColumns(header []string, cfg Config) (columns, error) {
	const op = "locate feed columns"

	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, seen := idx[h]; !seen {
			idx[h] = i
		}
	}

	find := func(name string) (int, error) {
		i, ok := idx[name]
		if !ok {
			return 0, syncerr.DataFormat(op, "header", name, fmt.Errorf("column not found in %q", header))
		}
		return i, nil
	}

	var (
		c   columns
		err error
	)
	if c.code, err = find(cfg.CodeColumn); err != nil {
		return c, err
	}
	if c.quantity, err = find(cfg.QuantityColumn); err != nil {
		return c, err
	}
	if c.price, err = find(cfg.PriceColumn); err != nil {
		return c, err
	}
	return c, nil
}

// parseRows maps sheet cells to supplier rows using the header at cfg.HeaderRow.
func parseRows(cells [][]string, cfg Config) ([]reconcile.SupplierRow, error) {
	if cfg.HeaderRow >= len(cells) {
		return nil, syncerr.DataFormat("parse feed", "header", fmt.Sprint(cfg.HeaderRow), errNoHeader)
	}

	cols, err := locateColumns(cells[cfg.HeaderRow], cfg)
	if err != nil {
		return nil, err
	}

	var rows []reconcile.SupplierRow
	for _, line := range cells[cfg.HeaderRow+1:] {
		code := strings.TrimSpace(cell(line, cols.code))
		if code == "" {
			continue
		}
		rows = append(rows, reconcile.SupplierRow{
			Code:     code,
			Quantity: strings.TrimSpace(cell(line, cols.quantity)),
			Price:    cell(line, cols.price),
		})
	}
	return rows, nil
}

func cell(line []string, i int) string {
	if i < len(line) {
		return line[i]
	}
	return ""
}
