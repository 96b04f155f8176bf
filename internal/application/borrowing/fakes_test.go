package borrowing

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/book"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/member"
	"github.com/MicheleArgenti/cse341-library-management-system/pkg/mq"
)

// =========================================
// 内存版仓储/事务/发布者(用例层单元测试用)
// =========================================

// fakeTx 直接执行fn,不做真实事务
// 用例的规则校验都发生在写入之前,被拒路径天然无副作用
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// rollbackTx 带回滚语义的事务fake
// fn返回error时恢复三个存储的快照,模拟真实事务的整体回滚,
// 用于验证批次中途失败不留下部分写入
type rollbackTx struct {
	books   *fakeBookRepo
	members *fakeMemberRepo
	records *fakeRecordRepo
}

func (tx *rollbackTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	bookSnap := make(map[uint]*book.Book, len(tx.books.books))
	for id, b := range tx.books.books {
		copied := *b
		bookSnap[id] = &copied
	}
	memberSnap := make(map[uint]*member.Member, len(tx.members.members))
	for id, m := range tx.members.members {
		copied := *m
		memberSnap[id] = &copied
	}
	recordSnap := make(map[uint]*borrowing.Record, len(tx.records.records))
	for id, r := range tx.records.records {
		copied := *r
		recordSnap[id] = &copied
	}
	nextID := tx.records.nextID

	if err := fn(ctx); err != nil {
		tx.books.books = bookSnap
		tx.members.members = memberSnap
		tx.records.records = recordSnap
		tx.records.nextID = nextID
		return err
	}
	return nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	events []mq.LendingEvent
	err    error
}

func (p *fakePublisher) PublishLendingEvent(_ context.Context, event mq.LendingEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	r := &fakeBookRepo{books: make(map[uint]*book.Book)}
	for _, b := range books {
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) Update(_ context.Context, b *book.Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeBookRepo) Delete(_ context.Context, id uint) error {
	delete(r.books, id)
	return nil
}

func (r *fakeBookRepo) List(_ context.Context, _ book.ListParams) ([]*book.Book, int64, error) {
	out := make([]*book.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

// IncrAvailable 与MySQL实现相同的守卫语义
func (r *fakeBookRepo) IncrAvailable(_ context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	next := b.AvailableCopies + delta
	if next < 0 {
		return book.ErrNoCopiesAvailable
	}
	if next > b.TotalCopies {
		return book.ErrInvalidCopies
	}
	b.AvailableCopies = next
	return nil
}

// fakeMemberRepo 内存会员仓储
// incrBorrowedErr非nil时IncrBorrowed直接失败(模拟批次最后一步写入失败)
type fakeMemberRepo struct {
	members         map[uint]*member.Member
	incrBorrowedErr error
}

func newFakeMemberRepo(members ...*member.Member) *fakeMemberRepo {
	r := &fakeMemberRepo{members: make(map[uint]*member.Member)}
	for _, m := range members {
		r.members[m.ID] = m
	}
	return r
}

func (r *fakeMemberRepo) Create(_ context.Context, m *member.Member) error {
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) FindByID(_ context.Context, id uint) (*member.Member, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (r *fakeMemberRepo) FindByEmail(_ context.Context, email string) (*member.Member, error) {
	for _, m := range r.members {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, member.ErrMemberNotFound
}

func (r *fakeMemberRepo) Update(_ context.Context, m *member.Member) error {
	r.members[m.ID] = m
	return nil
}

func (r *fakeMemberRepo) Delete(_ context.Context, id uint) error {
	delete(r.members, id)
	return nil
}

func (r *fakeMemberRepo) List(_ context.Context, _ member.ListParams) ([]*member.Member, int64, error) {
	out := make([]*member.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMemberRepo) LockByID(ctx context.Context, id uint) (*member.Member, error) {
	return r.FindByID(ctx, id)
}

// IncrBorrowed 与MySQL实现相同的守卫语义
func (r *fakeMemberRepo) IncrBorrowed(_ context.Context, id uint, delta int) error {
	if r.incrBorrowedErr != nil {
		return r.incrBorrowedErr
	}
	m, ok := r.members[id]
	if !ok {
		return member.ErrMemberNotFound
	}
	next := m.BorrowedBooks + delta
	if next < 0 || next > m.MaxBooksAllowed {
		return member.ErrBorrowLimitReached
	}
	m.BorrowedBooks = next
	return nil
}

// fakeRecordRepo 内存借阅记录仓储
type fakeRecordRepo struct {
	records map[uint]*borrowing.Record
	nextID  uint
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[uint]*borrowing.Record), nextID: 1}
}

func (r *fakeRecordRepo) Create(_ context.Context, record *borrowing.Record) error {
	record.ID = r.nextID
	r.nextID++
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) FindByID(_ context.Context, id uint) (*borrowing.Record, error) {
	record, ok := r.records[id]
	if !ok {
		return nil, borrowing.ErrRecordNotFound
	}
	return record, nil
}

// LockByID 锁内读:返回存储中的当前状态
// (还书的终态校验必须走这里,而非可能过期的普通读)
func (r *fakeRecordRepo) LockByID(ctx context.Context, id uint) (*borrowing.Record, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRecordRepo) FindOpenByBookAndMember(_ context.Context, bookID, memberID uint) (*borrowing.Record, error) {
	for _, record := range r.records {
		if record.BookID == bookID && record.MemberID == memberID && record.IsOpen() {
			return record, nil
		}
	}
	return nil, borrowing.ErrRecordNotFound
}

func (r *fakeRecordRepo) Update(_ context.Context, record *borrowing.Record) error {
	if _, ok := r.records[record.ID]; !ok {
		return borrowing.ErrRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.records[id]; !ok {
		return borrowing.ErrRecordNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeRecordRepo) List(_ context.Context, params borrowing.ListParams) ([]*borrowing.Record, int64, error) {
	out := make([]*borrowing.Record, 0, len(r.records))
	for _, record := range r.records {
		if params.BookID > 0 && record.BookID != params.BookID {
			continue
		}
		if params.MemberID > 0 && record.MemberID != params.MemberID {
			continue
		}
		if params.Status != nil && record.Status != *params.Status {
			continue
		}
		if params.DueBefore != nil && !record.DueDate.Before(*params.DueBefore) {
			continue
		}
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

// =========================================
// 测试数据构造
// =========================================

func testBook(id uint, available, total int) *book.Book {
	b := book.NewBook("Test Driven Go", "A. Gopher", "9781234567890", nil, 2020, "Test Press", 300, total, available)
	b.ID = id
	return b
}

func testMember(id uint, borrowed, max int) *member.Member {
	m := member.NewMember("Ada", "Lovelace", "ada@example.com", "555-0100", nil,
		baseNow, member.TypeStandard, max)
	m.ID = id
	m.BorrowedBooks = borrowed
	return m
}

func testPolicy() LendingPolicy {
	return LendingPolicy{DefaultLoanDays: 14, DailyLateFeeCents: 100}
}
