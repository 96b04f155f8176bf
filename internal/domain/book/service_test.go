package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存图书仓储(领域服务单元测试用)
type fakeRepo struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeRepo(books ...*Book) *fakeRepo {
	r := &fakeRepo{books: make(map[uint]*Book), nextID: 1}
	for _, b := range books {
		if b.ID >= r.nextID {
			r.nextID = b.ID + 1
		}
		r.books[b.ID] = b
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, b *Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = b
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

func (r *fakeRepo) FindByISBN(_ context.Context, isbn string) (*Book, error) {
	for _, b := range r.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, ErrBookNotFound
}

func (r *fakeRepo) Update(_ context.Context, b *Book) error {
	r.books[b.ID] = b
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *fakeRepo) List(_ context.Context, _ ListParams) ([]*Book, int64, error) {
	out := make([]*Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) LockByID(ctx context.Context, id uint) (*Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRepo) IncrAvailable(_ context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return ErrBookNotFound
	}
	next := b.AvailableCopies + delta
	if next < 0 {
		return ErrNoCopiesAvailable
	}
	if next > b.TotalCopies {
		return ErrInvalidCopies
	}
	b.AvailableCopies = next
	return nil
}

func seedBook(id uint, available, total int) *Book {
	b := NewBook("Clean Architecture", "Robert C. Martin", "9780134494166",
		nil, 2017, "Prentice Hall", 432, total, available)
	b.ID = id
	return b
}

// TestDeleteBook_AllCopiesOnShelf 全部副本在馆,删除成功
func TestDeleteBook_AllCopiesOnShelf(t *testing.T) {
	repo := newFakeRepo(seedBook(1, 5, 5))
	svc := NewService(repo)

	err := svc.DeleteBook(context.Background(), 1)
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), 1)
	assert.Equal(t, ErrBookNotFound, err)
}

// TestDeleteBook_CopiesOnLoan 有副本在外时拒绝删除
// 删除后还书事务将查不到图书,未归还记录和会员计数都会悬挂
func TestDeleteBook_CopiesOnLoan(t *testing.T) {
	repo := newFakeRepo(seedBook(1, 4, 5))
	svc := NewService(repo)

	err := svc.DeleteBook(context.Background(), 1)
	assert.Equal(t, ErrBookHasOpenLoans, err)

	// 图书仍在,归还后可再次删除
	b, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)

	b.AvailableCopies = b.TotalCopies
	assert.NoError(t, svc.DeleteBook(context.Background(), 1))
}

// TestDeleteBook_NotFound 图书不存在
func TestDeleteBook_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.DeleteBook(context.Background(), 99)
	assert.Equal(t, ErrBookNotFound, err)
}

// TestCreateBook_DuplicateISBN ISBN重复被拒
func TestCreateBook_DuplicateISBN(t *testing.T) {
	repo := newFakeRepo(seedBook(1, 2, 2))
	svc := NewService(repo)

	_, err := svc.CreateBook(context.Background(), "Another Title", "Someone",
		"9780134494166", nil, 2020, "Pub", 100, 1, 1)
	assert.Equal(t, ErrISBNDuplicate, err)
}
