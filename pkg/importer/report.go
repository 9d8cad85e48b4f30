// Package importer 花名册与休假报表的对账引擎
package importer

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huamingce/huamingce/pkg/logger"
)

// Level 诊断级别
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry 一条诊断信息
type Entry struct {
	Level   Level             `json:"level"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Stats 单次导入的计数统计（仅用于观测，不属于数据集）
type Stats struct {
	RosterRows       int `json:"roster_rows"`
	LeaveRows        int `json:"leave_rows"`
	ExcludedRows     int `json:"excluded_rows"`
	UnassignedShifts int `json:"unassigned_shifts"`
	LeaveDaysMerged  int `json:"leave_days_merged"`
	LeaveRowsSkipped int `json:"leave_rows_skipped"`
}

// Report 导入诊断收集器：只追加，随数据集一并交还调用方
type Report struct {
	RunID   string  `json:"run_id"`
	Entries []Entry `json:"entries"`
	Stats   Stats   `json:"stats"`

	log *zerolog.Logger
}

// NewReport 创建诊断收集器
func NewReport() *Report {
	runID := uuid.New().String()
	l := logger.Get().With().Str("component", "importer").Str("run_id", runID).Logger()
	return &Report{RunID: runID, log: &l}
}

// Info 记录一条提示诊断
func (r *Report) Info(msg string, fields map[string]string) {
	r.add(LevelInfo, msg, fields)
}

// Warn 记录一条警告诊断
func (r *Report) Warn(msg string, fields map[string]string) {
	r.add(LevelWarn, msg, fields)
}

// Error 记录一条错误诊断
func (r *Report) Error(msg string, fields map[string]string) {
	r.add(LevelError, msg, fields)
}

func (r *Report) add(level Level, msg string, fields map[string]string) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: msg, Fields: fields})

	if r.log == nil {
		return
	}
	var ev *zerolog.Event
	switch level {
	case LevelError:
		ev = r.log.Error()
	case LevelWarn:
		ev = r.log.Warn()
	default:
		ev = r.log.Info()
	}
	for k, v := range fields {
		ev = ev.Str(k, v)
	}
	ev.Msg(msg)
}

// ByLevel 返回指定级别的全部诊断
func (r *Report) ByLevel(level Level) []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// HasErrors 检查是否存在错误级别的诊断
func (r *Report) HasErrors() bool {
	return len(r.ByLevel(LevelError)) > 0
}
