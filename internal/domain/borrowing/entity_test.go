package borrowing

import (
	"testing"
	"time"
)

// 固定基准时间,避免测试依赖系统时钟
var baseTime = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// TestNewRecord 测试借阅记录创建
func TestNewRecord(t *testing.T) {
	r, err := NewRecord(1, 2, 14, "course reserve", baseTime)
	if err != nil {
		t.Fatalf("创建记录失败: %v", err)
	}

	if r.Status != StatusBorrowed {
		t.Errorf("初始状态错误: %v", r.Status)
	}
	if r.ReturnDate != nil {
		t.Error("新记录的归还时间应为nil")
	}
	if r.LateFeeCents != 0 {
		t.Errorf("新记录的逾期费应为0, got=%d", r.LateFeeCents)
	}
	if r.RenewalCount != 0 {
		t.Errorf("新记录的续借次数应为0, got=%d", r.RenewalCount)
	}

	wantDue := baseTime.AddDate(0, 0, 14)
	if !r.DueDate.Equal(wantDue) {
		t.Errorf("应还时间错误: want=%v, got=%v", wantDue, r.DueDate)
	}
}

// TestNewRecord_InvalidLoanDays 借期必须为正
func TestNewRecord_InvalidLoanDays(t *testing.T) {
	for _, days := range []int{0, -1, -14} {
		if _, err := NewRecord(1, 2, days, "", baseTime); err != ErrInvalidLoanDays {
			t.Errorf("借期=%d应返回ErrInvalidLoanDays, got=%v", days, err)
		}
	}
}

// TestMarkReturned_OnTime 按期归还:无逾期费,状态Returned
func TestMarkReturned_OnTime(t *testing.T) {
	r, _ := NewRecord(1, 2, 14, "", baseTime)

	returnAt := baseTime.AddDate(0, 0, 7)
	if err := r.MarkReturned(returnAt, 100); err != nil {
		t.Fatalf("归还失败: %v", err)
	}

	if r.Status != StatusReturned {
		t.Errorf("状态错误: want=Returned, got=%v", r.Status)
	}
	if r.LateFeeCents != 0 {
		t.Errorf("按期归还不应产生逾期费, got=%d", r.LateFeeCents)
	}
	if r.ReturnDate == nil || !r.ReturnDate.Equal(returnAt) {
		t.Errorf("归还时间错误: %v", r.ReturnDate)
	}
}

// TestMarkReturned_ExactlyOnDue 恰好在应还时刻归还:不算逾期
func TestMarkReturned_ExactlyOnDue(t *testing.T) {
	r, _ := NewRecord(1, 2, 14, "", baseTime)

	if err := r.MarkReturned(r.DueDate, 100); err != nil {
		t.Fatalf("归还失败: %v", err)
	}
	if r.Status != StatusReturned || r.LateFeeCents != 0 {
		t.Errorf("到期时刻归还不应逾期: status=%v fee=%d", r.Status, r.LateFeeCents)
	}
}

// TestMarkReturned_Late 逾期归还:天数向上取整,费用=天数×日费率
func TestMarkReturned_Late(t *testing.T) {
	cases := []struct {
		name     string
		overdue  time.Duration
		wantDays int
	}{
		{"超期1秒按1天计", time.Second, 1},
		{"超期半天按1天计", 12 * time.Hour, 1},
		{"恰好1天", 24 * time.Hour, 1},
		{"1天零1小时按2天计", 25 * time.Hour, 2},
		{"整3天", 72 * time.Hour, 3},
	}

	const rate = int64(100) // 每天1.00

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := NewRecord(1, 2, 14, "", baseTime)
			returnAt := r.DueDate.Add(tc.overdue)

			if err := r.MarkReturned(returnAt, rate); err != nil {
				t.Fatalf("归还失败: %v", err)
			}

			if r.Status != StatusReturnedLate {
				t.Errorf("状态错误: want=ReturnedLate, got=%v", r.Status)
			}
			wantFee := int64(tc.wantDays) * rate
			if r.LateFeeCents != wantFee {
				t.Errorf("逾期费错误: want=%d, got=%d", wantFee, r.LateFeeCents)
			}
		})
	}
}

// TestMarkReturned_Idempotent 终态记录再次归还被拒绝且不改变任何字段
func TestMarkReturned_Idempotent(t *testing.T) {
	r, _ := NewRecord(1, 2, 14, "", baseTime)
	returnAt := r.DueDate.Add(48 * time.Hour)
	if err := r.MarkReturned(returnAt, 100); err != nil {
		t.Fatalf("首次归还失败: %v", err)
	}

	feeBefore := r.LateFeeCents
	statusBefore := r.Status
	dateBefore := *r.ReturnDate

	if err := r.MarkReturned(returnAt.Add(time.Hour), 100); err != ErrAlreadyReturned {
		t.Errorf("重复归还应返回ErrAlreadyReturned, got=%v", err)
	}

	if r.LateFeeCents != feeBefore || r.Status != statusBefore || !r.ReturnDate.Equal(dateBefore) {
		t.Error("重复归还不应修改记录")
	}
}

// TestEffectiveStatus 派生状态:未归还且过期展示为Overdue,存储状态不变
func TestEffectiveStatus(t *testing.T) {
	r, _ := NewRecord(1, 2, 14, "", baseTime)

	// 未到期:Borrowed
	if got := r.EffectiveStatus(baseTime.AddDate(0, 0, 7)); got != StatusBorrowed {
		t.Errorf("未到期应为Borrowed, got=%v", got)
	}

	// 已过期:Overdue(派生),存储状态仍为Borrowed
	if got := r.EffectiveStatus(r.DueDate.Add(time.Hour)); got != StatusOverdue {
		t.Errorf("过期未还应为Overdue, got=%v", got)
	}
	if r.Status != StatusBorrowed {
		t.Errorf("派生状态不应写回存储状态, got=%v", r.Status)
	}

	// 已归还:展示终态,不再派生
	_ = r.MarkReturned(r.DueDate.Add(time.Hour), 100)
	if got := r.EffectiveStatus(r.DueDate.AddDate(0, 0, 30)); got != StatusReturnedLate {
		t.Errorf("终态记录应展示存储状态, got=%v", got)
	}
}

// TestCanTransitionTo 状态机流转规则
func TestCanTransitionTo(t *testing.T) {
	r, _ := NewRecord(1, 2, 14, "", baseTime)

	if !r.CanTransitionTo(StatusReturned) {
		t.Error("Borrowed→Returned应合法")
	}
	if !r.CanTransitionTo(StatusReturnedLate) {
		t.Error("Borrowed→ReturnedLate应合法")
	}
	if r.CanTransitionTo(StatusBorrowed) {
		t.Error("Borrowed→Borrowed应非法")
	}

	_ = r.MarkReturned(baseTime.AddDate(0, 0, 7), 100)
	if r.CanTransitionTo(StatusReturned) || r.CanTransitionTo(StatusBorrowed) {
		t.Error("终态不应允许任何流转")
	}
}

// TestStatusString 状态名与原API输出对齐
func TestStatusString(t *testing.T) {
	cases := map[RecordStatus]string{
		StatusBorrowed:     "Borrowed",
		StatusOverdue:      "Overdue",
		StatusReturned:     "Returned",
		StatusReturnedLate: "Returned (Late)",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("状态名错误: want=%q, got=%q", want, got)
		}
	}
}
