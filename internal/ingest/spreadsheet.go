package ingest

import (
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	apperrors "github.com/huamingce/huamingce/pkg/errors"
	"github.com/huamingce/huamingce/pkg/importer"
)

// 必需表头：上游导出缺列即拒绝整个文件
var (
	RosterHeaders = []string{
		"Employee", "Employee Roster Name", "Employee Code",
		"Location", "Department", "Role", "Employment Type",
		"Date", "Start Time", "End Time",
		"Published", "Comments", "Non Attended",
	}
	LeaveHeaders = []string{
		"Emp Code", "Leave Type", "Start Date", "End Date",
		"Status", "Requested At", "Hours",
	}
)

// Table 一张已解析的工作表：首行为表头，其余为数据行
type Table struct {
	Headers []string
	Rows    []importer.Row
}

// ReadTable 读取工作簿首个工作表
// .xlsx 经 excelize 解析，遗留 .xls 经 extrame/xls 解析
func ReadTable(path string) (*Table, error) {
	var (
		cells [][]string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		cells, err = readXLS(path)
	default:
		cells, err = readXLSX(path)
	}
	if err != nil {
		return nil, err
	}
	return buildTable(path, cells)
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeFileUnreadable, "无法打开工作簿 "+path)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, apperrors.New(apperrors.CodeEmptySheet, "工作簿没有工作表: "+path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeFileUnreadable, "读取工作表失败: "+path)
	}
	return rows, nil
}

func readXLS(path string) ([][]string, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeFileUnreadable, "无法打开工作簿 "+path)
	}
	if wb.NumSheets() == 0 {
		return nil, apperrors.New(apperrors.CodeEmptySheet, "工作簿没有工作表: "+path)
	}
	return wb.ReadAllCells(100000), nil
}

// buildTable 将单元格矩阵整理为表：首行作表头，
// 短行按表头宽度补空，整行皆空的行丢弃
func buildTable(path string, cells [][]string) (*Table, error) {
	if len(cells) == 0 {
		return nil, apperrors.New(apperrors.CodeEmptySheet, "工作表为空: "+path)
	}

	headers := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		headers[i] = strings.TrimSpace(h)
	}

	t := &Table{Headers: headers}
	for _, line := range cells[1:] {
		row := make(importer.Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if i < len(line) {
				v = strings.TrimSpace(line[i])
			}
			if v != "" {
				empty = false
			}
			row[h] = v
		}
		if !empty {
			t.Rows = append(t.Rows, row)
		}
	}
	return t, nil
}

// Validate 校验表头是否包含全部必需列
func (t *Table) Validate(required []string) error {
	have := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		have[h] = true
	}

	ve := &apperrors.ValidationErrors{}
	for _, col := range required {
		if !have[col] {
			ve.Add(col, "缺少必需列")
		}
	}
	if ve.HasErrors() {
		return ve.ToAppError(apperrors.CodeMissingHeaders, "表头校验失败")
	}
	return nil
}

// ReadRoster 读取并校验花名册工作簿
func ReadRoster(path string) (*Table, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(RosterHeaders); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadLeave 读取并校验休假报表工作簿
func ReadLeave(path string) (*Table, error) {
	t, err := ReadTable(path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(LeaveHeaders); err != nil {
		return nil, err
	}
	return t, nil
}
