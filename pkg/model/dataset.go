// Package model 定义花名册导入引擎的核心数据模型
package model

import (
	"encoding/json"
	"math"
	"sort"
	"time"

	"github.com/huamingce/huamingce/pkg/paycycle"
)

// WorkArea 工作区域（地点/部门/岗位），纯值类型
type WorkArea struct {
	Location   string `json:"location"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Shift 班次事实：一条花名册行对应的时间区间与元数据
// 创建后不再修改；恒有 End > Start（跨午夜班次在构建时顺延一天）
type Shift struct {
	Start      time.Time        `json:"start"`
	End        time.Time        `json:"end"`
	WorkArea   WorkArea         `json:"work_area"`
	Published  bool             `json:"published"`
	Comment    string           `json:"comment,omitempty"`
	IsAttended bool             `json:"is_attended"`
	PayCycle   paycycle.CycleID `json:"pay_cycle"`
}

// WorkingHours 计算班次时长（小时）
func (s *Shift) WorkingHours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// IsOvernight 检查是否为跨午夜班次
func (s *Shift) IsOvernight() bool {
	y1, m1, d1 := s.Start.Date()
	y2, m2, d2 := s.End.Date()
	return y1 != y2 || m1 != m2 || d1 != d2
}

// Leave 员工单个自然日的休假记录
type Leave struct {
	Date        string      `json:"date"` // YYYY-MM-DD
	Type        LeaveType   `json:"type"`
	Status      LeaveStatus `json:"status"`
	RequestedAt time.Time   `json:"requested_at"`
	Hours       float64     `json:"hours"`
}

// Employee 员工：以工号为标识，持有班次历史与休假日历
type Employee struct {
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	RosterCode     string            `json:"roster_code"`
	EmploymentType EmploymentType    `json:"employment_type"`
	ContractStatus ContractStatus    `json:"contract_status"`
	Shifts         []*Shift          `json:"shifts"`
	LeaveDates     map[string]*Leave `json:"leave_dates,omitempty"`
}

// NewEmployee 创建员工
func NewEmployee(code, name, rosterCode string, et EmploymentType, cs ContractStatus) *Employee {
	return &Employee{
		Code:           code,
		Name:           name,
		RosterCode:     rosterCode,
		EmploymentType: et,
		ContractStatus: cs,
		LeaveDates:     make(map[string]*Leave),
	}
}

// AddShift 追加一条班次到历史（插入序，Finalize 后为时间序）
func (e *Employee) AddShift(s *Shift) {
	e.Shifts = append(e.Shifts, s)
}

// SortShifts 按开始时间稳定排序班次历史
func (e *Employee) SortShifts() {
	sort.SliceStable(e.Shifts, func(i, j int) bool {
		return e.Shifts[i].Start.Before(e.Shifts[j].Start)
	})
}

// LeaveOn 查询某个自然日的休假记录
func (e *Employee) LeaveOn(date string) (*Leave, bool) {
	l, ok := e.LeaveDates[date]
	return l, ok
}

// MergeLeave 合并一条休假贡献：同一自然日至多一条记录，
// 小时数按 min(已有+新增, cap) 累加；已有记录的类型/状态/申请时间不变
func (e *Employee) MergeLeave(entry *Leave, capHours float64) {
	if existing, ok := e.LeaveDates[entry.Date]; ok {
		existing.Hours = ClampHours(existing.Hours+entry.Hours, capHours)
		return
	}
	entry.Hours = ClampHours(entry.Hours, capHours)
	e.LeaveDates[entry.Date] = entry
}

// ClampHours 将小时数限制在 [0, cap] 并保留两位小数
func ClampHours(h, capHours float64) float64 {
	if h < 0 {
		h = 0
	}
	if h > capHours {
		h = capHours
	}
	return math.Round(h*100) / 100
}

// DataSet 一次导入的聚合根：工号到员工的映射加未指派班次池
type DataSet struct {
	employees  map[string]*Employee
	order      []string // 工号序列：插入序，Finalize 后为姓名序
	unassigned []*Shift
}

// NewDataSet 创建空数据集
func NewDataSet() *DataSet {
	return &DataSet{employees: make(map[string]*Employee)}
}

// Employee 按工号查询员工
func (d *DataSet) Employee(code string) (*Employee, bool) {
	e, ok := d.employees[code]
	return e, ok
}

// AddEmployee 登记新员工；重复工号以首次登记为准
func (d *DataSet) AddEmployee(e *Employee) {
	if _, ok := d.employees[e.Code]; ok {
		return
	}
	d.employees[e.Code] = e
	d.order = append(d.order, e.Code)
}

// AddUnassignedShift 将班次计入未指派池
func (d *DataSet) AddUnassignedShift(s *Shift) {
	d.unassigned = append(d.unassigned, s)
}

// Employees 按当前顺序返回全部员工
func (d *DataSet) Employees() []*Employee {
	out := make([]*Employee, 0, len(d.order))
	for _, code := range d.order {
		out = append(out, d.employees[code])
	}
	return out
}

// UnassignedShifts 返回未指派班次池
func (d *DataSet) UnassignedShifts() []*Shift {
	return d.unassigned
}

// Len 返回员工数量
func (d *DataSet) Len() int {
	return len(d.employees)
}

// Finalize 归一数据集顺序：每位员工的班次按开始时间稳定排序，
// 员工集合按姓名稳定排序（同名保持插入序）。此后按约定只读
func (d *DataSet) Finalize() {
	for _, e := range d.employees {
		e.SortShifts()
	}
	sort.SliceStable(d.order, func(i, j int) bool {
		return d.employees[d.order[i]].Name < d.employees[d.order[j]].Name
	})
}

// MarshalJSON 按当前员工顺序序列化数据集
func (d *DataSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Employees  []*Employee `json:"employees"`
		Unassigned []*Shift    `json:"unassigned_shifts"`
	}{
		Employees:  d.Employees(),
		Unassigned: d.unassigned,
	})
}
