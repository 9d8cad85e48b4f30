package model

import (
	"testing"
	"time"
)

func TestClampHours(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		cap      float64
		expected float64
	}{
		{name: "不超上限原样保留", hours: 6.5, cap: 7.6, expected: 6.5},
		{name: "超出上限截断", hours: 9.0, cap: 7.6, expected: 7.6},
		{name: "恰好等于上限", hours: 7.6, cap: 7.6, expected: 7.6},
		{name: "负数归零", hours: -1.0, cap: 7.6, expected: 0},
		{name: "保留两位小数", hours: 3.14159, cap: 7.6, expected: 3.14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ClampHours(tt.hours, tt.cap); result != tt.expected {
				t.Errorf("ClampHours(%v, %v) = %v, expected %v", tt.hours, tt.cap, result, tt.expected)
			}
		})
	}
}

func TestEmployee_MergeLeave(t *testing.T) {
	newLeave := func(date string, hours float64) *Leave {
		return &Leave{
			Date:        date,
			Type:        LeaveAnnual,
			Status:      LeaveApproved,
			RequestedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local),
			Hours:       hours,
		}
	}

	t.Run("首次合并直接建立记录", func(t *testing.T) {
		e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
		e.MergeLeave(newLeave("2024-03-01", 5.0), 7.6)

		l, ok := e.LeaveOn("2024-03-01")
		if !ok {
			t.Fatal("应该存在休假记录")
		}
		if l.Hours != 5.0 {
			t.Errorf("Hours = %v, expected 5.0", l.Hours)
		}
	})

	t.Run("同日合并按上限累加", func(t *testing.T) {
		e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
		e.MergeLeave(newLeave("2024-03-01", 5.0), 7.6)
		e.MergeLeave(newLeave("2024-03-01", 5.0), 7.6)

		l, _ := e.LeaveOn("2024-03-01")
		if l.Hours != 7.6 {
			t.Errorf("Hours = %v, expected 7.6（5.0+5.0 封顶）", l.Hours)
		}
		if len(e.LeaveDates) != 1 {
			t.Errorf("同一天应只有一条记录，实际 %d 条", len(e.LeaveDates))
		}
	})

	t.Run("重复合并不会无限增长", func(t *testing.T) {
		e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
		for i := 0; i < 3; i++ {
			e.MergeLeave(newLeave("2024-03-01", 5.0), 7.6)
		}

		l, _ := e.LeaveOn("2024-03-01")
		if l.Hours != 7.6 {
			t.Errorf("Hours = %v, expected 7.6（每次合并都封顶）", l.Hours)
		}
	})

	t.Run("合并保留既有记录的类型与状态", func(t *testing.T) {
		e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
		first := newLeave("2024-03-01", 3.0)
		e.MergeLeave(first, 7.6)

		second := newLeave("2024-03-01", 2.0)
		second.Type = LeavePersonal
		second.Status = LeavePending
		e.MergeLeave(second, 7.6)

		l, _ := e.LeaveOn("2024-03-01")
		if l.Type != LeaveAnnual {
			t.Errorf("Type = %v, expected annual（首条为准）", l.Type)
		}
		if l.Status != LeaveApproved {
			t.Errorf("Status = %v, expected approved（首条为准）", l.Status)
		}
		if l.Hours != 5.0 {
			t.Errorf("Hours = %v, expected 5.0", l.Hours)
		}
	})

	t.Run("单次贡献超上限入场即截断", func(t *testing.T) {
		e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
		e.MergeLeave(newLeave("2024-03-01", 9.0), 7.6)

		l, _ := e.LeaveOn("2024-03-01")
		if l.Hours != 7.6 {
			t.Errorf("Hours = %v, expected 7.6", l.Hours)
		}
	})
}

func TestEmployee_SortShifts(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	e := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
	late := &Shift{Start: at(14), End: at(22), Comment: "晚班"}
	early := &Shift{Start: at(6), End: at(14), Comment: "早班"}
	sameA := &Shift{Start: at(6), End: at(10), Comment: "并班A"}
	e.AddShift(late)
	e.AddShift(early)
	e.AddShift(sameA)

	e.SortShifts()

	if e.Shifts[0] != early || e.Shifts[1] != sameA || e.Shifts[2] != late {
		t.Errorf("排序后顺序错误: %v, %v, %v",
			e.Shifts[0].Comment, e.Shifts[1].Comment, e.Shifts[2].Comment)
	}
	// 相同开始时刻保持插入序（稳定排序）
	if !(e.Shifts[0] == early && e.Shifts[1] == sameA) {
		t.Error("相同开始时刻应保持插入顺序")
	}
}

func TestDataSet_AddEmployee(t *testing.T) {
	ds := NewDataSet()
	first := NewEmployee("E001", "张三", "ZHANGS-P", EmploymentFullTime, ContractPermanent)
	dup := NewEmployee("E001", "张三改", "ZHANGS-C", EmploymentCasual, ContractCasual)

	ds.AddEmployee(first)
	ds.AddEmployee(dup)

	if ds.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", ds.Len())
	}
	got, _ := ds.Employee("E001")
	if got != first {
		t.Error("重复工号应以首次登记为准")
	}
	if got.EmploymentType != EmploymentFullTime {
		t.Errorf("EmploymentType = %v, expected full_time", got.EmploymentType)
	}
}

func TestDataSet_Finalize(t *testing.T) {
	ds := NewDataSet()
	ds.AddEmployee(NewEmployee("E003", "王五", "WANGW-P", EmploymentFullTime, ContractPermanent))
	ds.AddEmployee(NewEmployee("E001", "李四", "LIS-P", EmploymentFullTime, ContractPermanent))
	ds.AddEmployee(NewEmployee("E002", "李四", "LIS2-P", EmploymentFullTime, ContractPermanent))

	ds.Finalize()

	employees := ds.Employees()
	if len(employees) != 3 {
		t.Fatalf("员工数 = %d, expected 3", len(employees))
	}
	if employees[0].Code != "E001" || employees[1].Code != "E002" {
		t.Errorf("同名员工应保持插入序: %s, %s", employees[0].Code, employees[1].Code)
	}
	if employees[2].Code != "E003" {
		t.Errorf("姓名序错误，最后应为 E003，实际 %s", employees[2].Code)
	}
}
