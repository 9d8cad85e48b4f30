package importer

// convert.go 处理导出表格中形态各异的单元格值：
// 多种日期/时间写法、Excel 序列数、布尔的常见表示

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/huamingce/huamingce/pkg/errors"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
}

// parseDate 解析纯日期单元格，返回当日零点
// 部分导出的日期列会携带时间，按原始行为只取日期部分
func parseDate(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.InvalidDateTime(field, value)
	}

	if t, ok := fromSerial(value); ok {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}

	// 日期列偶见携带时间（"2024-03-01 00:00:00"），先试完整值再试首段
	datePart := value
	if i := strings.IndexByte(value, ' '); i > 0 {
		datePart = value[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
		if t, err := time.ParseInLocation(layout, datePart, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.InvalidDateTime(field, value)
}

// parseDateTime 解析日期时间单元格（如休假申请时间）
func parseDateTime(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, apperrors.InvalidDateTime(field, value)
	}

	if t, ok := fromSerial(value); ok {
		return t.In(loc), nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return parseDate(field, value, loc)
}

// combine 将日期与钟面时间合成为一个时刻
func combine(day time.Time, field, value string) (time.Time, error) {
	h, m, s, err := parseClock(field, value)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, s, 0, day.Location()), nil
}

// parseClock 解析钟面时间：HH:MM、HH:MM:SS，或 Excel 的当日小数
func parseClock(field, value string) (int, int, int, error) {
	value = strings.TrimSpace(value)

	// Excel 时间列常导出为 [0,1) 的当日小数
	if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 && f < 1 {
		secs := int(f*86400 + 0.5)
		return secs / 3600, (secs % 3600) / 60, secs % 60, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, apperrors.InvalidDateTime(field, value)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, apperrors.InvalidDateTime(field, value)
		}
		nums[i] = n
	}
	h, m, s := nums[0], nums[1], nums[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, 0, 0, apperrors.InvalidDateTime(field, value)
	}
	return h, m, s, nil
}

// fromSerial 尝试按 Excel 日期序列数解析
// 限定合理范围，避免把普通数字（如年份）误判为序列数
func fromSerial(value string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < 20000 || serial > 80000 {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseBool 解析布尔单元格的常见表示；空值与未知值按 false 处理
func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "t", "yes", "y", "1":
		return true
	default:
		return false
	}
}

// parseHours 解析小时数单元格
func parseHours(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
