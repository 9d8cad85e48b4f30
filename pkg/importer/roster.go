package importer

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/huamingce/huamingce/pkg/errors"
	"github.com/huamingce/huamingce/pkg/model"
)

// ImportRoster 对账花名册行：建立员工集合并汇入班次
//
// 每行先构建班次再分类：姓名或花名册代码为空的行进入未指派池；
// 已指派行命中排除关键字则整行丢弃；员工按工号首见即建，
// 后续行上不同的雇佣类型/合同状态一律忽略（首见为准）
func (imp *Importer) ImportRoster(rows []Row) error {
	unassigned := 0
	for i, row := range rows {
		imp.rep.Stats.RosterRows++

		shift, err := imp.buildShift(row)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeInvalidDateTime,
				fmt.Sprintf("花名册第 %d 行无法构建班次", i+1))
		}

		name := row.Get("Employee")
		rosterCode := row.Get("Employee Roster Name")
		if name == "" || rosterCode == "" {
			imp.ds.AddUnassignedShift(shift)
			unassigned++
			continue
		}

		if keyword, ok := imp.matchExclude(name); ok {
			imp.rep.Stats.ExcludedRows++
			imp.rep.Info("丢弃非排班记录", map[string]string{
				"employee": name,
				"keyword":  keyword,
			})
			continue
		}

		code := row.Get("Employee Code")
		if code == "" {
			imp.ds.AddUnassignedShift(shift)
			unassigned++
			continue
		}

		emp, ok := imp.ds.Employee(code)
		if !ok {
			emp = model.NewEmployee(code, name, rosterCode,
				model.EmploymentTypeFromName(row.Get("Employment Type")),
				model.ContractStatusFromRosterCode(rosterCode))
			imp.ds.AddEmployee(emp)
		}
		emp.AddShift(shift)
	}

	imp.rep.Stats.UnassignedShifts = unassigned
	if unassigned > 0 {
		imp.rep.Info("存在未指派班次", map[string]string{
			"count": strconv.Itoa(unassigned),
		})
	}
	return nil
}

// buildShift 从一条花名册行构建班次
// 结束时刻早于开始时刻说明班次跨午夜，顺延一个自然日；
// 超过 24 小时的班次无法表达，是已知限制
func (imp *Importer) buildShift(row Row) (*model.Shift, error) {
	day, err := parseDate("Date", row.Get("Date"), imp.opts.Location)
	if err != nil {
		return nil, err
	}
	start, err := combine(day, "Start Time", row.Get("Start Time"))
	if err != nil {
		return nil, err
	}
	end, err := combine(day, "End Time", row.Get("End Time"))
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		end = end.AddDate(0, 0, 1)
	}

	return &model.Shift{
		Start: start,
		End:   end,
		WorkArea: model.WorkArea{
			Location:   row.Get("Location"),
			Department: row.Get("Department"),
			Role:       row.Get("Role"),
		},
		Published:  parseBool(row.Get("Published")),
		Comment:    row.Get("Comments"),
		IsAttended: !parseBool(row.Get("Non Attended")),
		PayCycle:   imp.opts.PayCycle.CycleOf(start),
	}, nil
}

// matchExclude 用排除关键字对姓名做大小写不敏感的子串匹配
func (imp *Importer) matchExclude(name string) (string, bool) {
	upper := strings.ToUpper(name)
	for _, kw := range imp.opts.ExcludeKeywords {
		if kw != "" && strings.Contains(upper, strings.ToUpper(kw)) {
			return kw, true
		}
	}
	return "", false
}
