// Package paycycle 提供薪资周期日历
package paycycle

import "time"

// CycleID 薪资周期标识：周期起始日（YYYY-MM-DD）
type CycleID string

// DefaultDays 默认周期长度（双周）
const DefaultDays = 14

// Calendar 薪资周期日历：从锚定日起按固定天数滚动
type Calendar struct {
	Anchor time.Time
	Days   int
}

// Default 默认日历：2024-01-01（周一）起的双周周期
func Default() Calendar {
	return Calendar{
		Anchor: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Days:   DefaultDays,
	}
}

// CycleOf 返回时刻所属的薪资周期
// 对任意时刻均有定义：锚定日之前的时刻向负方向取整
func (c Calendar) CycleOf(t time.Time) CycleID {
	start, _ := c.periodOf(t)
	return CycleID(start.Format("2006-01-02"))
}

// Index 返回时刻所属周期相对锚定日的序号（锚定周期为 0）
func (c Calendar) Index(t time.Time) int {
	days := c.days()
	return floorDiv(c.dayOffset(t), days)
}

// Period 返回时刻所属周期的起止日（含首日，不含末日次日）
func (c Calendar) Period(t time.Time) (time.Time, time.Time) {
	return c.periodOf(t)
}

func (c Calendar) periodOf(t time.Time) (time.Time, time.Time) {
	days := c.days()
	idx := floorDiv(c.dayOffset(t), days)
	start := dateOnly(c.Anchor).AddDate(0, 0, idx*days)
	return start, start.AddDate(0, 0, days)
}

// dayOffset 计算 t 相对锚定日的整天数差（按自然日，不受时区钟差影响）
func (c Calendar) dayOffset(t time.Time) int {
	return int(dateOnly(t).Sub(dateOnly(c.Anchor)).Hours() / 24)
}

func (c Calendar) days() int {
	if c.Days <= 0 {
		return DefaultDays
	}
	return c.Days
}

// dateOnly 抹去钟面时间，统一到 UTC 午夜，保证天数差为精确倍数
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// floorDiv 向负方向取整的整数除法
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
