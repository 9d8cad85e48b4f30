package importer

import (
	"time"

	"github.com/huamingce/huamingce/pkg/model"
)

// ImportLeave 对账休假报表：展开日期区间并按日合并到员工休假日历
//
// 前置条件：花名册已对账完毕。此时数据集中不存在的工号无法挂接，
// 整行记录诊断后跳过，不会为其创建占位员工。
// 单行问题（未知休假类型、无效日期、无效小时数）同样只影响该行
func (imp *Importer) ImportLeave(rows []Row) {
	for _, row := range rows {
		imp.rep.Stats.LeaveRows++

		code := row.Get("Emp Code")

		typeStr := row.Get("Leave Type")
		leaveType, ok := model.LeaveTypeFromName(typeStr)
		if !ok {
			imp.rep.Stats.LeaveRowsSkipped++
			imp.rep.Error("未知休假类型", map[string]string{
				"employee_code": code,
				"leave_type":    typeStr,
			})
			continue
		}

		status := model.LeaveStatusFromName(row.Get("Status"))

		rawHours, err := parseHours(row.Get("Hours"))
		if err != nil {
			imp.rep.Stats.LeaveRowsSkipped++
			imp.rep.Warn("休假小时数无效", map[string]string{
				"employee_code": code,
				"hours":         row.Get("Hours"),
			})
			continue
		}
		// 单次贡献即封顶：min(原始值, 上限)，保留两位小数
		hours := model.ClampHours(rawHours, imp.opts.DailyHoursCap)

		requestedAt, err := parseDateTime("Requested At", row.Get("Requested At"), imp.opts.Location)
		if err != nil {
			imp.rep.Stats.LeaveRowsSkipped++
			imp.rep.Warn("休假申请时间无效", map[string]string{
				"employee_code": code,
				"requested_at":  row.Get("Requested At"),
			})
			continue
		}

		start, err := parseDate("Start Date", row.Get("Start Date"), imp.opts.Location)
		if err == nil {
			var end time.Time
			if end, err = parseDate("End Date", row.Get("End Date"), imp.opts.Location); err == nil && !end.Before(start) {
				imp.mergeLeaveRange(code, start, end, leaveType, status, requestedAt, hours)
				continue
			}
		}
		imp.rep.Stats.LeaveRowsSkipped++
		imp.rep.Warn("休假日期区间无效", map[string]string{
			"employee_code": code,
			"start_date":    row.Get("Start Date"),
			"end_date":      row.Get("End Date"),
		})
	}
}

// mergeLeaveRange 将 [start, end] 闭区间逐日合并到员工休假日历
// 每个展开日携带同一份封顶小时数（上限不在各日间分摊）
func (imp *Importer) mergeLeaveRange(code string, start, end time.Time,
	leaveType model.LeaveType, status model.LeaveStatus, requestedAt time.Time, hours float64) {

	emp, ok := imp.ds.Employee(code)
	if !ok {
		imp.rep.Stats.LeaveRowsSkipped++
		imp.rep.Warn("工号不在数据集中，休假记录跳过", map[string]string{
			"employee_code": code,
		})
		return
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		emp.MergeLeave(&model.Leave{
			Date:        day.Format("2006-01-02"),
			Type:        leaveType,
			Status:      status,
			RequestedAt: requestedAt,
			Hours:       hours,
		}, imp.opts.DailyHoursCap)
		imp.rep.Stats.LeaveDaysMerged++
	}
}
