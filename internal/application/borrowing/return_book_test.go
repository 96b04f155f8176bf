package borrowing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
)

// seedOpenRecord 直接植入一条未归还记录(借出时的计数已体现在fixture里)
func seedOpenRecord(t *testing.T, repo *fakeRecordRepo, bookID, memberID uint, borrowedAt time.Time, loanDays int) *borrowing.Record {
	t.Helper()
	record, err := borrowing.NewRecord(bookID, memberID, loanDays, "", borrowedAt)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), record))
	return record
}

// TestReturnBook_OnTime 按期归还:状态Returned,无逾期费,计数恢复
func TestReturnBook_OnTime(t *testing.T) {
	b := testBook(1, 0, 1)       // 唯一副本已借出
	m := testMember(10, 1, 3)    // 会员持有1本
	bookRepo := newFakeBookRepo(b)
	memberRepo := newFakeMemberRepo(m)
	recordRepo := newFakeRecordRepo()
	publisher := &fakePublisher{}
	uc := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, publisher, testPolicy())

	// 未到期:借出时间接近当前,14天借期
	record := seedOpenRecord(t, recordRepo, 1, 10, time.Now().UTC(), 14)

	view, err := uc.Execute(context.Background(), record.ID)
	require.NoError(t, err)

	assert.Equal(t, "Returned", view.Status)
	assert.Equal(t, int64(0), view.LateFeeCents)
	assert.Equal(t, "No late fee", view.LateFee)
	assert.NotNil(t, view.ReturnDate)

	// 计数恢复
	assert.Equal(t, 1, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 0, memberRepo.members[10].BorrowedBooks)

	// 还书事件
	require.Len(t, publisher.events, 1)
	assert.Equal(t, mq.EventReturned, publisher.events[0].Type)
	assert.Equal(t, int64(0), publisher.events[0].LateFeeCents)
}

// TestReturnBook_ThreeDaysLate 逾期3天:费用=3×日费率,状态Returned (Late)
func TestReturnBook_ThreeDaysLate(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 0, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 1, 3))
	recordRepo := newFakeRecordRepo()
	publisher := &fakePublisher{}
	uc := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, publisher, testPolicy())

	// 借出于17天前(14天借期),现在归还正好超期3天整
	// 归还发生在"超期2天多"与"3天整"之间,向上取整为3天
	borrowedAt := time.Now().UTC().Add(-17*24*time.Hour + time.Minute)
	record := seedOpenRecord(t, recordRepo, 1, 10, borrowedAt, 14)

	view, err := uc.Execute(context.Background(), record.ID)
	require.NoError(t, err)

	assert.Equal(t, "Returned (Late)", view.Status)
	assert.Equal(t, int64(300), view.LateFeeCents)
	assert.Equal(t, "$3.00", view.LateFee)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, int64(300), publisher.events[0].LateFeeCents)
}

// TestReturnBook_NotFound 记录不存在
func TestReturnBook_NotFound(t *testing.T) {
	uc := NewReturnBookUseCase(newFakeRecordRepo(), newFakeBookRepo(), newFakeMemberRepo(), fakeTx{}, nil, testPolicy())

	_, err := uc.Execute(context.Background(), 99)
	assert.Equal(t, borrowing.ErrRecordNotFound, err)
}

// TestReturnBook_Idempotent 重复归还被拒,第二次不再改动计数与记录
func TestReturnBook_Idempotent(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 0, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 1, 3))
	recordRepo := newFakeRecordRepo()
	uc := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, testPolicy())

	record := seedOpenRecord(t, recordRepo, 1, 10, time.Now().UTC(), 14)

	_, err := uc.Execute(context.Background(), record.ID)
	require.NoError(t, err)
	feeAfterFirst := record.LateFeeCents
	returnedAt := *record.ReturnDate

	// 第二次归还
	_, err = uc.Execute(context.Background(), record.ID)
	assert.Equal(t, borrowing.ErrAlreadyReturned, err)

	// 计数与记录保持第一次归还后的状态
	assert.Equal(t, 1, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 0, memberRepo.members[10].BorrowedBooks)
	assert.Equal(t, feeAfterFirst, record.LateFeeCents)
	assert.True(t, record.ReturnDate.Equal(returnedAt))
}

// staleReadRecordRepo 模拟可重复读隔离级别下的快照读:
// 普通读返回事务开始前捕获的旧版本,锁内读返回最新落库状态
type staleReadRecordRepo struct {
	*fakeRecordRepo
	stale map[uint]*borrowing.Record
}

func (r *staleReadRecordRepo) FindByID(ctx context.Context, id uint) (*borrowing.Record, error) {
	if record, ok := r.stale[id]; ok {
		return record, nil
	}
	return r.fakeRecordRepo.FindByID(ctx, id)
}

// TestReturnBook_StaleSnapshotDoubleReturn 并发重复归还同一条记录:
// 后到事务的快照读仍看到Borrowed,终态校验必须基于锁内读,
// 否则同一条记录被结算两次(副本+2、会员计数-2)
func TestReturnBook_StaleSnapshotDoubleReturn(t *testing.T) {
	// 计数留有余量:若校验失效,两次+1/-1都不会被守卫拦下
	bookRepo := newFakeBookRepo(testBook(1, 0, 2))
	memberRepo := newFakeMemberRepo(testMember(10, 2, 3))
	inner := newFakeRecordRepo()
	recordRepo := &staleReadRecordRepo{fakeRecordRepo: inner, stale: make(map[uint]*borrowing.Record)}
	uc := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, testPolicy())

	record := seedOpenRecord(t, inner, 1, 10, time.Now().UTC(), 14)

	// 捕获后到事务开始时的快照(仍是Borrowed)
	snapshot := *record
	recordRepo.stale[record.ID] = &snapshot

	_, err := uc.Execute(context.Background(), record.ID)
	require.NoError(t, err)

	// 快照读依旧返回Borrowed,但锁内读拿到终态,归还被幂等拒绝
	_, err = uc.Execute(context.Background(), record.ID)
	assert.Equal(t, borrowing.ErrAlreadyReturned, err)

	// 计数只结算一次
	assert.Equal(t, 1, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 1, memberRepo.members[10].BorrowedBooks)
}

// TestReturnBook_RoundTrip 借书→还书的完整往返,计数恢复原状
func TestReturnBook_RoundTrip(t *testing.T) {
	b := testBook(1, 2, 5)
	m := testMember(10, 0, 3)
	bookRepo := newFakeBookRepo(b)
	memberRepo := newFakeMemberRepo(m)
	recordRepo := newFakeRecordRepo()
	policy := testPolicy()

	borrowUC := NewBorrowBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, policy)
	returnUC := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, policy)

	view, err := borrowUC.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 1, memberRepo.members[10].BorrowedBooks)

	_, err = returnUC.Execute(context.Background(), view.ID)
	require.NoError(t, err)

	// 往返后回到初始计数
	assert.Equal(t, 2, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 0, memberRepo.members[10].BorrowedBooks)
}
