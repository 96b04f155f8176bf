package borrowing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
)

var baseNow = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// newBorrowFixture 组装借书用例及其依赖
func newBorrowFixture(b *book.Book, m *member.Member) (*BorrowBookUseCase, *fakeBookRepo, *fakeMemberRepo, *fakeRecordRepo, *fakePublisher) {
	bookRepo := newFakeBookRepo(b)
	memberRepo := newFakeMemberRepo(m)
	recordRepo := newFakeRecordRepo()
	publisher := &fakePublisher{}
	uc := NewBorrowBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, publisher, testPolicy())
	return uc, bookRepo, memberRepo, recordRepo, publisher
}

// TestBorrowBook_Success 正常借书:记录写入,两个计数同步变化
func TestBorrowBook_Success(t *testing.T) {
	b := testBook(1, 3, 5)
	m := testMember(10, 1, 3)
	uc, bookRepo, memberRepo, recordRepo, publisher := newBorrowFixture(b, m)

	view, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10, Notes: "course reserve"})
	require.NoError(t, err)

	// 响应内容
	assert.Equal(t, "Borrowed", view.Status)
	assert.Equal(t, uint(1), view.BookID)
	assert.Equal(t, uint(10), view.MemberID)
	assert.Equal(t, "No late fee", view.LateFee)
	assert.Nil(t, view.ReturnDate)
	assert.Equal(t, view.BorrowDate.AddDate(0, 0, 14), view.DueDate)

	// 副作用:副本-1,会员计数+1,记录落库
	assert.Equal(t, 2, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 2, memberRepo.members[10].BorrowedBooks)
	record, err := recordRepo.FindByID(context.Background(), view.ID)
	require.NoError(t, err)
	assert.True(t, record.IsOpen())

	// 借阅事件已发布
	require.Len(t, publisher.events, 1)
	assert.Equal(t, mq.EventBorrowed, publisher.events[0].Type)
	assert.Equal(t, view.ID, publisher.events[0].RecordID)
}

// TestBorrowBook_CustomLoanDays 显式借期覆盖默认值
func TestBorrowBook_CustomLoanDays(t *testing.T) {
	uc, _, _, _, _ := newBorrowFixture(testBook(1, 1, 1), testMember(10, 0, 3))

	view, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10, LoanDays: 30})
	require.NoError(t, err)
	assert.Equal(t, view.BorrowDate.AddDate(0, 0, 30), view.DueDate)
}

// TestBorrowBook_InvalidLoanDays 负借期被拒
func TestBorrowBook_InvalidLoanDays(t *testing.T) {
	uc, bookRepo, _, _, _ := newBorrowFixture(testBook(1, 1, 1), testMember(10, 0, 3))

	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10, LoanDays: -7})
	assert.Equal(t, borrowing.ErrInvalidLoanDays, err)
	assert.Equal(t, 1, bookRepo.books[1].AvailableCopies)
}

// TestBorrowBook_Rejections 六步规则校验:命中即拒,且无任何副作用
func TestBorrowBook_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		book    *book.Book
		member  *member.Member
		req     BorrowBookRequest
		wantErr error
	}{
		{
			name:    "图书不存在",
			book:    testBook(1, 1, 1),
			member:  testMember(10, 0, 3),
			req:     BorrowBookRequest{BookID: 99, MemberID: 10},
			wantErr: book.ErrBookNotFound,
		},
		{
			name:    "无可借副本",
			book:    testBook(1, 0, 5),
			member:  testMember(10, 0, 3),
			req:     BorrowBookRequest{BookID: 1, MemberID: 10},
			wantErr: book.ErrNoCopiesAvailable,
		},
		{
			name:    "会员不存在",
			book:    testBook(1, 1, 1),
			member:  testMember(10, 0, 3),
			req:     BorrowBookRequest{BookID: 1, MemberID: 99},
			wantErr: member.ErrMemberNotFound,
		},
		{
			name: "会员已停用",
			book: testBook(1, 1, 1),
			member: func() *member.Member {
				m := testMember(10, 0, 3)
				m.Status = member.StatusSuspended
				return m
			}(),
			req:     BorrowBookRequest{BookID: 1, MemberID: 10},
			wantErr: member.ErrMemberNotActive,
		},
		{
			name:    "已达借阅上限",
			book:    testBook(1, 1, 1),
			member:  testMember(10, 3, 3),
			req:     BorrowBookRequest{BookID: 1, MemberID: 10},
			wantErr: member.ErrBorrowLimitReached,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, bookRepo, memberRepo, recordRepo, publisher := newBorrowFixture(tc.book, tc.member)

			availBefore := tc.book.AvailableCopies
			borrowedBefore := tc.member.BorrowedBooks

			_, err := uc.Execute(context.Background(), tc.req)
			assert.Equal(t, tc.wantErr, err)

			// 被拒的借书不产生任何副作用
			assert.Equal(t, availBefore, bookRepo.books[tc.book.ID].AvailableCopies)
			assert.Equal(t, borrowedBefore, memberRepo.members[tc.member.ID].BorrowedBooks)
			assert.Empty(t, recordRepo.records)
			assert.Empty(t, publisher.events)
		})
	}
}

// TestBorrowBook_AlreadyBorrowed 同一会员重复借同一本书被拒
func TestBorrowBook_AlreadyBorrowed(t *testing.T) {
	uc, bookRepo, memberRepo, recordRepo, _ := newBorrowFixture(testBook(1, 5, 5), testMember(10, 0, 3))

	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)

	// 第二次借同一本书
	_, err = uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	assert.Equal(t, borrowing.ErrAlreadyBorrowed, err)

	// 计数只反映第一次借书
	assert.Equal(t, 4, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 1, memberRepo.members[10].BorrowedBooks)
	assert.Len(t, recordRepo.records, 1)
}

// TestBorrowBook_AfterReturnCanBorrowAgain 归还后同一本书可再借
func TestBorrowBook_AfterReturnCanBorrowAgain(t *testing.T) {
	b := testBook(1, 1, 1)
	m := testMember(10, 0, 3)
	bookRepo := newFakeBookRepo(b)
	memberRepo := newFakeMemberRepo(m)
	recordRepo := newFakeRecordRepo()
	policy := testPolicy()

	borrowUC := NewBorrowBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, policy)
	returnUC := NewReturnBookUseCase(recordRepo, bookRepo, memberRepo, fakeTx{}, nil, policy)

	first, err := borrowUC.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)

	_, err = returnUC.Execute(context.Background(), first.ID)
	require.NoError(t, err)

	// 终态记录不再阻挡重新借阅
	second, err := borrowUC.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// TestBorrowBook_LastWriteFailureRollsBack 批次最后一步写入失败,整体回滚:
// 此时记录已写入、副本已-1,回滚后记录不存在、两个计数保持原值,事件不发布
func TestBorrowBook_LastWriteFailureRollsBack(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 3, 5))
	memberRepo := newFakeMemberRepo(testMember(10, 1, 3))
	memberRepo.incrBorrowedErr = assert.AnError
	recordRepo := newFakeRecordRepo()
	publisher := &fakePublisher{}
	tx := &rollbackTx{books: bookRepo, members: memberRepo, records: recordRepo}
	uc := NewBorrowBookUseCase(recordRepo, bookRepo, memberRepo, tx, publisher, testPolicy())

	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	assert.ErrorIs(t, err, assert.AnError)

	// 中途的部分写入全部消失
	assert.Empty(t, recordRepo.records)
	assert.Equal(t, 3, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 1, memberRepo.members[10].BorrowedBooks)
	assert.Empty(t, publisher.events)

	// 故障排除后同一fixture可正常借出
	memberRepo.incrBorrowedErr = nil
	view, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, bookRepo.books[1].AvailableCopies)
	assert.Equal(t, 2, memberRepo.members[10].BorrowedBooks)
	assert.True(t, recordRepo.records[view.ID].IsOpen())
}

// TestBorrowBook_NilPublisher mq未启用时发布者为nil,借书正常完成
func TestBorrowBook_NilPublisher(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 0, 3))
	uc := NewBorrowBookUseCase(newFakeRecordRepo(), bookRepo, memberRepo, fakeTx{}, nil, testPolicy())

	_, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	assert.NoError(t, err)
}

// TestBorrowBook_PublishFailureDoesNotFail 事件发布失败不影响借书结果
func TestBorrowBook_PublishFailureDoesNotFail(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 0, 3))
	publisher := &fakePublisher{err: assert.AnError}
	uc := NewBorrowBookUseCase(newFakeRecordRepo(), bookRepo, memberRepo, fakeTx{}, publisher, testPolicy())

	view, err := uc.Execute(context.Background(), BorrowBookRequest{BookID: 1, MemberID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Borrowed", view.Status)
}
