package borrowing

import (
	"context"
	"log"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	apperrors "github.com/MicheleArgenti/cse341-library-management-system/pkg/errors"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/metrics"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
)

// Transactor 事务执行器接口
// *mysql.TxManager实现此接口;抽象成接口便于用例层Mock测试
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher 借阅事件发布接口
// *mq.Publisher实现此接口;mq.enabled=false时注入nil,事件静默跳过
type EventPublisher interface {
	PublishLendingEvent(ctx context.Context, event mq.LendingEvent) error
}

// LendingPolicy 借阅策略(来自配置)
type LendingPolicy struct {
	DefaultLoanDays   int   // 默认借期(天)
	DailyLateFeeCents int64 // 每逾期一天的费用(分)
}

// BorrowBookUseCase 借书用例
// 教学要点:这是整个项目最核心的用例
// 涉及:事务处理、并发控制、六步业务规则校验
type BorrowBookUseCase struct {
	recordRepo borrowing.Repository
	bookRepo   book.Repository
	memberRepo member.Repository
	txManager  Transactor
	publisher  EventPublisher
	policy     LendingPolicy
}

// NewBorrowBookUseCase 创建借书用例
func NewBorrowBookUseCase(
	recordRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	txManager Transactor,
	publisher EventPublisher,
	policy LendingPolicy,
) *BorrowBookUseCase {
	return &BorrowBookUseCase{
		recordRepo: recordRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
		publisher:  publisher,
		policy:     policy,
	}
}

// BorrowBookRequest 借书请求DTO
type BorrowBookRequest struct {
	BookID   uint   // 图书ID
	MemberID uint   // 会员ID
	LoanDays int    // 借期(天),0表示使用配置的默认借期
	Notes    string // 备注
}

// Execute 执行借书用例
// 教学重点:防止超借的完整流程
//
// 核心问题:最后一个副本被并发借出
// 场景:某书可借副本剩1个,两名会员同时借
// 错误实现:先查询available_copies再判断再扣减,
//   两个请求都通过判断,副本数被扣成-1
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定图书行与会员行
//  2. 依次校验业务规则(见下)
//  3. 写入借阅记录
//  4. 原子扣减可借副本、增加会员计数(SQL守卫兜底)
//  5. COMMIT释放锁
//
// 业务规则按固定顺序校验,命中即返回对应错误:
//  1. 图书存在
//  2. 有可借副本
//  3. 会员存在
//  4. 会员状态Active
//  5. 未达借阅上限
//  6. 同一会员未重复借同一本书
func (uc *BorrowBookUseCase) Execute(ctx context.Context, req BorrowBookRequest) (*RecordView, error) {
	// 1. 借期参数处理:缺省用配置值,显式传入必须为正
	loanDays := req.LoanDays
	if loanDays == 0 {
		loanDays = uc.policy.DefaultLoanDays
	}
	if loanDays <= 0 {
		return nil, borrowing.ErrInvalidLoanDays
	}

	start := time.Now()
	var result *borrowing.Record

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 步骤1:锁定图书行(悲观锁)并校验规则1、2
		// ========================================
		// LockByID执行:SELECT * FROM books WHERE id = ? FOR UPDATE
		// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问该行
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			return err // 规则1:图书不存在
		}
		if !b.HasAvailableCopy() {
			return book.ErrNoCopiesAvailable // 规则2:无可借副本
		}

		// ========================================
		// 步骤2:锁定会员行并校验规则3、4、5
		// ========================================
		// 锁顺序固定:先图书后会员,避免交叉借书时死锁
		m, err := uc.memberRepo.LockByID(txCtx, req.MemberID)
		if err != nil {
			return err // 规则3:会员不存在
		}
		if err := m.CanBorrow(); err != nil {
			return err // 规则4/5:状态异常或已达上限
		}

		// ========================================
		// 步骤3:重复借阅校验(规则6)
		// ========================================
		// 同一会员同一本书只能有一条未归还记录(逾期未还同样算)
		existing, err := uc.recordRepo.FindOpenByBookAndMember(txCtx, req.BookID, req.MemberID)
		if err != nil && err != borrowing.ErrRecordNotFound {
			return err
		}
		if existing != nil {
			return borrowing.ErrAlreadyBorrowed
		}

		// ========================================
		// 步骤4:写入借阅记录
		// ========================================
		record, err := borrowing.NewRecord(req.BookID, req.MemberID, loanDays, req.Notes, time.Now())
		if err != nil {
			return err
		}
		if err := uc.recordRepo.Create(txCtx, record); err != nil {
			return err
		}

		// ========================================
		// 步骤5:原子调整两个计数
		// ========================================
		// SQL守卫(WHERE available_copies + ? >= 0等)是并发兜底,
		// 失败则整个事务回滚,记录不会写入
		if err := uc.bookRepo.IncrAvailable(txCtx, req.BookID, -1); err != nil {
			return err
		}
		if err := uc.memberRepo.IncrBorrowed(txCtx, req.MemberID, 1); err != nil {
			return err
		}

		result = record
		return nil
	})

	observeLendingTx("borrow", start)

	if err != nil {
		recordBorrowRejection(err)
		return nil, err
	}

	// 借书成功:计数并发布事件(fire-and-forget,失败只记日志)
	if metrics.BorrowsTotal != nil {
		metrics.IncCounter(metrics.BorrowsTotal)
	}
	uc.publishEvent(ctx, mq.LendingEvent{
		Type:       mq.EventBorrowed,
		RecordID:   result.ID,
		BookID:     result.BookID,
		MemberID:   result.MemberID,
		OccurredAt: result.BorrowDate,
	})

	return newRecordView(result, time.Now()), nil
}

// publishEvent 发布借阅事件
// 事件发布在事务提交之后:发布失败不影响已提交的借阅
func (uc *BorrowBookUseCase) publishEvent(ctx context.Context, event mq.LendingEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishLendingEvent(ctx, event); err != nil {
		log.Printf("借阅事件发布失败(不影响业务): %v", err)
	}
}

// recordBorrowRejection 借书被拒时按原因计数
func recordBorrowRejection(err error) {
	if metrics.BorrowsRejectedTotal == nil {
		return
	}
	reason := rejectionReason(err)
	if reason == "" {
		return // 系统错误不计入业务拒绝
	}
	metrics.IncCounterVec(metrics.BorrowsRejectedTotal, map[string]string{"reason": reason})
}

// rejectionReason 业务错误码 → 拒绝原因标签
func rejectionReason(err error) string {
	appErr := apperrors.GetAppError(err)
	switch appErr.Code {
	case apperrors.ErrCodeBookNotFound, apperrors.ErrCodeMemberNotFound:
		return "not_found"
	case apperrors.ErrCodeNoCopiesAvailable:
		return "no_copies"
	case apperrors.ErrCodeMemberNotActive:
		return "not_active"
	case apperrors.ErrCodeBorrowLimitReached:
		return "limit_reached"
	case apperrors.ErrCodeAlreadyBorrowed:
		return "already_borrowed"
	default:
		return ""
	}
}

// observeLendingTx 记录借/还原子批次耗时
func observeLendingTx(operation string, start time.Time) {
	if metrics.BorrowTransactionDuration == nil {
		return
	}
	metrics.ObserveHistogramVec(metrics.BorrowTransactionDuration,
		map[string]string{"operation": operation},
		time.Since(start).Seconds())
}
