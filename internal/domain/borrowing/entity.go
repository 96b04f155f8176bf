package borrowing

import (
	"time"
)

// RecordStatus 借阅记录状态
// 教学要点:
// 1. 使用int类型而非string(节省存储空间,便于索引)
// 2. Overdue是派生状态:存储层只有Borrowed,超过应还日期后对外展示为Overdue
// 3. Returned/ReturnedLate是终态,进入后记录不可再变更
type RecordStatus int

const (
	StatusBorrowed     RecordStatus = 1 // 已借出(未归还)
	StatusOverdue      RecordStatus = 2 // 已逾期(派生,不落库)
	StatusReturned     RecordStatus = 3 // 已归还(按期)
	StatusReturnedLate RecordStatus = 4 // 已归还(逾期)
)

// String 实现Stringer接口(API输出与日志使用英文状态名)
func (s RecordStatus) String() string {
	switch s {
	case StatusBorrowed:
		return "Borrowed"
	case StatusOverdue:
		return "Overdue"
	case StatusReturned:
		return "Returned"
	case StatusReturnedLate:
		return "Returned (Late)"
	default:
		return "Unknown"
	}
}

// IsTerminal 是否为终态(已归还)
func (s RecordStatus) IsTerminal() bool {
	return s == StatusReturned || s == StatusReturnedLate
}

// Record 借阅记录实体(聚合根)
// DDD设计说明:
// 1. Record是借阅台账的根实体,关联图书与会员(只存ID,避免跨聚合引用)
// 2. LateFeeCents使用int64存储"分"为单位(避免浮点数精度问题)
// 3. ReturnDate使用指针,nil表示未归还
// 4. 所有时间统一UTC存储
type Record struct {
	ID           uint
	BookID       uint       // 图书ID
	MemberID     uint       // 会员ID
	BorrowDate   time.Time  // 借出时间
	DueDate      time.Time  // 应还时间
	ReturnDate   *time.Time // 实际归还时间(nil表示未归还)
	Status       RecordStatus
	LateFeeCents int64  // 逾期费(分),未逾期为0
	RenewalCount int    // 续借次数
	Notes        string // 备注
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewRecord 创建借阅记录(工厂方法)
// 业务规则:
// - loanDays必须>0(调用方可传配置的默认借期)
// - 初始状态Borrowed,逾期费0,续借次数0
func NewRecord(bookID, memberID uint, loanDays int, notes string, now time.Time) (*Record, error) {
	if loanDays <= 0 {
		return nil, ErrInvalidLoanDays
	}
	now = now.UTC()
	return &Record{
		BookID:       bookID,
		MemberID:     memberID,
		BorrowDate:   now,
		DueDate:      now.AddDate(0, 0, loanDays),
		ReturnDate:   nil,
		Status:       StatusBorrowed,
		LateFeeCents: 0,
		RenewalCount: 0,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsOpen 是否为未归还记录(存储状态,逾期未还也算Open)
func (r *Record) IsOpen() bool {
	return r.Status == StatusBorrowed
}

// IsTerminal 是否已归还(终态)
func (r *Record) IsTerminal() bool {
	return r.Status.IsTerminal()
}

// EffectiveStatus 对外展示状态
// 存储层不写Overdue:未归还且已过应还时间的记录在读取时派生为Overdue
func (r *Record) EffectiveStatus(now time.Time) RecordStatus {
	if r.Status == StatusBorrowed && now.UTC().After(r.DueDate) {
		return StatusOverdue
	}
	return r.Status
}

// CanTransitionTo 检查是否可以转换到目标状态
// 教学要点:状态机设计,防止非法状态跳转
// 例如:已归还的记录不能再次归还
func (r *Record) CanTransitionTo(target RecordStatus) bool {
	transitions := map[RecordStatus][]RecordStatus{
		StatusBorrowed:     {StatusReturned, StatusReturnedLate}, // 未归还→按期归还/逾期归还
		StatusReturned:     {},                                   // 终态
		StatusReturnedLate: {},                                   // 终态
	}

	allowedTargets, exists := transitions[r.Status]
	if !exists {
		return false
	}

	for _, allowed := range allowedTargets {
		if allowed == target {
			return true
		}
	}
	return false
}

// MarkReturned 归还(领域行为)
// 业务规则:
// 1. 终态记录不可再归还(幂等拒绝)
// 2. 逾期天数向上取整:超过应还时间哪怕1秒也按1天计
// 3. 逾期费 = 逾期天数 × 日费率(分)
func (r *Record) MarkReturned(now time.Time, dailyRateCents int64) error {
	if r.IsTerminal() {
		return ErrAlreadyReturned
	}
	if !r.IsOpen() {
		return ErrInvalidStatusTransition
	}

	now = now.UTC()
	days := daysLate(r.DueDate, now)

	target := StatusReturned
	var fee int64
	if days > 0 {
		target = StatusReturnedLate
		fee = int64(days) * dailyRateCents
	}

	if !r.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}

	r.ReturnDate = &now
	r.Status = target
	r.LateFeeCents = fee
	r.UpdatedAt = now
	return nil
}

// DaysLate 当前逾期天数(向上取整,未逾期为0)
func (r *Record) DaysLate(now time.Time) int {
	return daysLate(r.DueDate, now.UTC())
}

// daysLate 计算逾期天数
// ceil((now-due)/24h):未超期为0,超期不足一天按1天计
func daysLate(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}
	elapsed := now.Sub(due)
	const day = 24 * time.Hour
	return int((elapsed + day - 1) / day)
}
