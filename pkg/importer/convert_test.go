package importer

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "ISO日期", input: "2024-03-04", expected: "2024-03-04"},
		{name: "斜杠日期", input: "2024/03/04", expected: "2024-03-04"},
		{name: "日期携带时间只取日期部分", input: "2024-03-04 00:00:00", expected: "2024-03-04"},
		{name: "Excel序列数", input: "45355", expected: "2024-03-04"},
		{name: "空值报错", input: "", wantErr: true},
		{name: "乱码报错", input: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDate("Date", tt.input, time.Local)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDate(%q) 应报错", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDate(%q) error = %v", tt.input, err)
			}
			if got := result.Format("2006-01-02"); got != tt.expected {
				t.Errorf("parseDate(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		h, m, s int
		wantErr bool
	}{
		{name: "时分", input: "09:30", h: 9, m: 30},
		{name: "时分秒", input: "22:00:15", h: 22, m: 0, s: 15},
		{name: "Excel当日小数", input: "0.5", h: 12},
		{name: "小时越界", input: "25:00", wantErr: true},
		{name: "非时间", input: "morning", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, s, err := parseClock("Start Time", tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseClock(%q) 应报错", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClock(%q) error = %v", tt.input, err)
			}
			if h != tt.h || m != tt.m || s != tt.s {
				t.Errorf("parseClock(%q) = %d:%d:%d, expected %d:%d:%d",
					tt.input, h, m, s, tt.h, tt.m, tt.s)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"true", "TRUE", "Yes", "y", "1", " t "}
	falsy := []string{"false", "no", "0", "", "maybe"}

	for _, v := range truthy {
		if !parseBool(v) {
			t.Errorf("parseBool(%q) = false, expected true", v)
		}
	}
	for _, v := range falsy {
		if parseBool(v) {
			t.Errorf("parseBool(%q) = true, expected false", v)
		}
	}
}
