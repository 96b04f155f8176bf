package borrowing

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/metrics"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
)

// ReturnBookUseCase 还书用例
// 教学要点:
// 1. 与借书对称的原子批次:改记录、加副本、减计数,同一事务
// 2. 逾期费在归还时刻一次性结算,写入记录后不再变化
// 3. 终态记录重复归还被幂等拒绝,不产生任何副作用
type ReturnBookUseCase struct {
	recordRepo borrowing.Repository
	bookRepo   book.Repository
	memberRepo member.Repository
	txManager  Transactor
	publisher  EventPublisher
	policy     LendingPolicy
}

// NewReturnBookUseCase 创建还书用例
func NewReturnBookUseCase(
	recordRepo borrowing.Repository,
	bookRepo book.Repository,
	memberRepo member.Repository,
	txManager Transactor,
	publisher EventPublisher,
	policy LendingPolicy,
) *ReturnBookUseCase {
	return &ReturnBookUseCase{
		recordRepo: recordRepo,
		bookRepo:   bookRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
		publisher:  publisher,
		policy:     policy,
	}
}

// Execute 执行还书用例
// 流程:
//  1. 锁定借阅记录行(不存在→404)
//  2. 终态校验(已归还→幂等拒绝,无副作用)
//  3. 锁定图书行与会员行(锁顺序与借书一致:先图书后会员)
//  4. 结算逾期费并落记录(状态Returned或Returned (Late))
//  5. 原子增加可借副本、减少会员计数
func (uc *ReturnBookUseCase) Execute(ctx context.Context, recordID uint) (*RecordView, error) {
	start := time.Now()
	var result *borrowing.Record

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 1. 锁定借阅记录行(FOR UPDATE)
		// 普通读是快照读,并发还同一条记录时两个事务都会看到Borrowed;
		// 锁内读保证后到的事务看到前一个事务落库的终态
		record, err := uc.recordRepo.LockByID(txCtx, recordID)
		if err != nil {
			return err
		}

		// 2. 终态校验:已归还的记录直接拒绝,不碰任何计数
		if record.IsTerminal() {
			return borrowing.ErrAlreadyReturned
		}

		// 3. 锁定图书行与会员行(与借书相同的锁顺序,避免死锁)
		if _, err := uc.bookRepo.LockByID(txCtx, record.BookID); err != nil {
			return err
		}
		if _, err := uc.memberRepo.LockByID(txCtx, record.MemberID); err != nil {
			return err
		}

		// 4. 结算归还:状态流转+逾期费计算(超期不足一天按1天计)
		if err := record.MarkReturned(time.Now(), uc.policy.DailyLateFeeCents); err != nil {
			return err
		}
		if err := uc.recordRepo.Update(txCtx, record); err != nil {
			return err
		}

		// 5. 原子恢复两个计数(失败则整体回滚,记录状态不会落库)
		if err := uc.bookRepo.IncrAvailable(txCtx, record.BookID, 1); err != nil {
			return err
		}
		if err := uc.memberRepo.IncrBorrowed(txCtx, record.MemberID, -1); err != nil {
			return err
		}

		result = record
		return nil
	})

	observeLendingTx("return", start)

	if err != nil {
		return nil, err
	}

	// 还书成功:计数并发布事件
	recordReturnMetrics(result)
	uc.publishEvent(ctx, mq.LendingEvent{
		Type:         mq.EventReturned,
		RecordID:     result.ID,
		BookID:       result.BookID,
		MemberID:     result.MemberID,
		LateFeeCents: result.LateFeeCents,
		OccurredAt:   *result.ReturnDate,
	})

	return newRecordView(result, time.Now()), nil
}

// publishEvent 发布借阅事件(fire-and-forget)
func (uc *ReturnBookUseCase) publishEvent(ctx context.Context, event mq.LendingEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishLendingEvent(ctx, event); err != nil {
		log.Printf("借阅事件发布失败(不影响业务): %v", err)
	}
}

// recordReturnMetrics 还书指标:按是否逾期计数,累计逾期费
func recordReturnMetrics(record *borrowing.Record) {
	late := record.Status == borrowing.StatusReturnedLate
	if metrics.ReturnsTotal != nil {
		metrics.IncCounterVec(metrics.ReturnsTotal, map[string]string{
			"late": strconv.FormatBool(late),
		})
	}
	if late && metrics.LateFeeCollectedCentsTotal != nil {
		metrics.AddCounter(metrics.LateFeeCollectedCentsTotal, float64(record.LateFeeCents))
	}
}
