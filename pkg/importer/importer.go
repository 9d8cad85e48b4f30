// Package importer 花名册与休假报表的对账引擎
//
// 对账分三步顺序执行：先处理花名册行建立员工集合并汇入班次，
// 再处理休假报表行合并到员工休假日历，最后归一数据集顺序。
// 整个过程单线程同步完成，产出的数据集整体交还调用方。
package importer

import (
	"strings"
	"time"

	"github.com/huamingce/huamingce/pkg/model"
	"github.com/huamingce/huamingce/pkg/paycycle"
)

// Row 上游表格采集器产出的一行记录（表头名 -> 单元格文本）
type Row map[string]string

// Get 读取指定列的值；缺列或空白均按空串处理，不视为解析失败
func (r Row) Get(key string) string {
	return strings.TrimSpace(r[key])
}

// DefaultDailyHoursCap 单日休假小时数上限（一个标准工作日）
const DefaultDailyHoursCap = 7.6

// DefaultExcludeKeywords 默认排除关键字：命中即视为非排班记录
var DefaultExcludeKeywords = []string{"DNR", "UNABLE", "CANCELLED"}

// Options 对账选项
type Options struct {
	ExcludeKeywords []string
	DailyHoursCap   float64
	PayCycle        paycycle.Calendar
	Location        *time.Location
}

// DefaultOptions 返回默认对账选项
func DefaultOptions() Options {
	return Options{
		ExcludeKeywords: DefaultExcludeKeywords,
		DailyHoursCap:   DefaultDailyHoursCap,
		PayCycle:        paycycle.Default(),
		Location:        time.Local,
	}
}

// Importer 对账引擎：持有构建中的数据集与诊断收集器
type Importer struct {
	opts Options
	ds   *model.DataSet
	rep  *Report
}

// New 创建对账引擎
func New(opts Options) *Importer {
	if opts.ExcludeKeywords == nil {
		opts.ExcludeKeywords = DefaultExcludeKeywords
	}
	if opts.DailyHoursCap <= 0 {
		opts.DailyHoursCap = DefaultDailyHoursCap
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Importer{
		opts: opts,
		ds:   model.NewDataSet(),
		rep:  NewReport(),
	}
}

// DataSet 返回构建中的数据集
func (imp *Importer) DataSet() *model.DataSet {
	return imp.ds
}

// Report 返回诊断收集器
func (imp *Importer) Report() *Report {
	return imp.rep
}

// Finalize 归一数据集顺序：班次按开始时间、员工按姓名稳定排序
func (imp *Importer) Finalize() {
	imp.ds.Finalize()
}

// Run 执行一次完整导入
// 花名册行中的日期时间无法解析视为输入文件损坏，整次导入终止；
// 休假行的问题只记录诊断并跳过，不中断后续处理
func Run(roster, leave []Row, opts Options) (*model.DataSet, *Report, error) {
	imp := New(opts)
	if err := imp.ImportRoster(roster); err != nil {
		return nil, imp.rep, err
	}
	imp.ImportLeave(leave)
	imp.Finalize()
	return imp.ds, imp.rep, nil
}
