// Package model 定义花名册导入引擎的核心数据模型
package model

import "strings"

// EmploymentType 雇佣类型
type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time" // 全职
	EmploymentPartTime EmploymentType = "part_time" // 兼职
	EmploymentCasual   EmploymentType = "casual"    // 零工
)

// ContractStatus 合同状态（由花名册代码解码）
type ContractStatus string

const (
	ContractPermanent ContractStatus = "permanent" // 长期
	ContractTemporary ContractStatus = "temporary" // 临时
	ContractCasual    ContractStatus = "casual"    // 零工
	ContractAgency    ContractStatus = "agency"    // 派遣
)

// LeaveType 休假类型
type LeaveType string

const (
	LeaveAnnual        LeaveType = "annual"        // 年假
	LeavePersonal      LeaveType = "personal"      // 病事假
	LeaveLongService   LeaveType = "long_service"  // 长期服务假
	LeaveCompassionate LeaveType = "compassionate" // 丧亲假
	LeaveUnpaid        LeaveType = "unpaid"        // 无薪假
)

// LeaveStatus 休假审批状态
type LeaveStatus string

const (
	LeaveApproved  LeaveStatus = "approved"  // 已批准
	LeavePending   LeaveStatus = "pending"   // 待审批
	LeaveDeclined  LeaveStatus = "declined"  // 已拒绝
	LeaveCancelled LeaveStatus = "cancelled" // 已取消
)

// normalizeName 归一化外部编码：大写、去空白、折叠连接符
func normalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		switch r {
		case ' ', '\t', '-', '_', '/':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EmploymentTypeFromName 从外部名称解析雇佣类型
// 任何输入都必须落到某个变体：无法识别时回退为零工
func EmploymentTypeFromName(name string) EmploymentType {
	switch normalizeName(name) {
	case "FULLTIME", "FT", "PERMANENTFULLTIME":
		return EmploymentFullTime
	case "PARTTIME", "PT", "PERMANENTPARTTIME":
		return EmploymentPartTime
	case "CASUAL", "CAS":
		return EmploymentCasual
	default:
		return EmploymentCasual
	}
}

// ContractStatusFromRosterCode 从花名册代码解码合同状态：
// 代码末段的 -P/-T/-C/-A 标记分别表示长期/临时/零工/派遣，缺省为长期
func ContractStatusFromRosterCode(code string) ContractStatus {
	code = strings.ToUpper(strings.TrimSpace(code))
	if i := strings.LastIndex(code, "-"); i >= 0 {
		switch strings.TrimSpace(code[i+1:]) {
		case "P":
			return ContractPermanent
		case "T":
			return ContractTemporary
		case "C":
			return ContractCasual
		case "A":
			return ContractAgency
		}
	}
	return ContractPermanent
}

// LeaveTypeFromName 从外部名称解析休假类型（宽松策略）
// 无法识别时返回 false，由调用方记录诊断并跳过该行
func LeaveTypeFromName(name string) (LeaveType, bool) {
	switch normalizeName(name) {
	case "ANNUAL", "ANNUALLEAVE", "HOLIDAY":
		return LeaveAnnual, true
	case "PERSONAL", "PERSONALLEAVE", "SICK", "SICKLEAVE", "CARERS", "CARERSLEAVE":
		return LeavePersonal, true
	case "LONGSERVICE", "LONGSERVICELEAVE", "LSL":
		return LeaveLongService, true
	case "COMPASSIONATE", "COMPASSIONATELEAVE", "BEREAVEMENT":
		return LeaveCompassionate, true
	case "UNPAID", "UNPAIDLEAVE", "LEAVEWITHOUTPAY", "LWOP":
		return LeaveUnpaid, true
	default:
		return "", false
	}
}

// LeaveStatusFromName 从外部名称解析休假状态（严格策略）
// 任何输入都必须落到某个变体：无法识别时回退为待审批
func LeaveStatusFromName(name string) LeaveStatus {
	switch normalizeName(name) {
	case "APPROVED", "APPROVE":
		return LeaveApproved
	case "PENDING", "REQUESTED", "AWAITINGAPPROVAL":
		return LeavePending
	case "DECLINED", "REJECTED":
		return LeaveDeclined
	case "CANCELLED", "CANCELED":
		return LeaveCancelled
	default:
		return LeavePending
	}
}
