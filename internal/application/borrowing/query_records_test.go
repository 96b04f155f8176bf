package borrowing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
)

// TestQueryRecords_GetByID 详情查询附带图书/会员摘要
func TestQueryRecords_GetByID(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 1, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 0, 3))
	recordRepo := newFakeRecordRepo()
	uc := NewQueryRecordsUseCase(recordRepo, bookRepo, memberRepo)

	record, _ := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC())
	require.NoError(t, recordRepo.Create(context.Background(), record))

	view, err := uc.GetByID(context.Background(), record.ID)
	require.NoError(t, err)

	require.NotNil(t, view.BookDetails)
	assert.Equal(t, "Test Driven Go", view.BookDetails.Title)
	assert.Equal(t, "9781234567890", view.BookDetails.ISBN)
	require.NotNil(t, view.MemberDetails)
	assert.Equal(t, "Ada Lovelace", view.MemberDetails.Name)
}

// TestQueryRecords_GetByID_DeletedBook 图书已删除时摘要留空,记录仍可读
func TestQueryRecords_GetByID_DeletedBook(t *testing.T) {
	bookRepo := newFakeBookRepo() // 无图书
	memberRepo := newFakeMemberRepo(testMember(10, 0, 3))
	recordRepo := newFakeRecordRepo()
	uc := NewQueryRecordsUseCase(recordRepo, bookRepo, memberRepo)

	record, _ := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC())
	require.NoError(t, recordRepo.Create(context.Background(), record))

	view, err := uc.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Nil(t, view.BookDetails)
	assert.NotNil(t, view.MemberDetails)
}

// TestQueryRecords_OverdueStatus 逾期未还的记录展示为Overdue
func TestQueryRecords_OverdueStatus(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 0, 1))
	memberRepo := newFakeMemberRepo(testMember(10, 1, 3))
	recordRepo := newFakeRecordRepo()
	uc := NewQueryRecordsUseCase(recordRepo, bookRepo, memberRepo)

	// 借出于30天前,14天借期:已逾期
	record, _ := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC().AddDate(0, 0, -30))
	require.NoError(t, recordRepo.Create(context.Background(), record))

	view, err := uc.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Overdue", view.Status)

	// Overdue过滤命中
	resp, err := uc.List(context.Background(), ListRecordsRequest{Status: "Overdue"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	// Borrowed过滤同样命中(Borrowed包含逾期未还)
	resp, err = uc.List(context.Background(), ListRecordsRequest{Status: "Borrowed"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}

// TestQueryRecords_InvalidStatus 非法状态过滤被拒
func TestQueryRecords_InvalidStatus(t *testing.T) {
	uc := NewQueryRecordsUseCase(newFakeRecordRepo(), newFakeBookRepo(), newFakeMemberRepo())

	_, err := uc.List(context.Background(), ListRecordsRequest{Status: "Lost"})
	assert.Error(t, err)
}

// TestQueryRecords_FilterByMember 按会员过滤
func TestQueryRecords_FilterByMember(t *testing.T) {
	bookRepo := newFakeBookRepo(testBook(1, 0, 2))
	memberRepo := newFakeMemberRepo(testMember(10, 1, 3), testMember(11, 1, 3))
	recordRepo := newFakeRecordRepo()
	uc := NewQueryRecordsUseCase(recordRepo, bookRepo, memberRepo)

	r1, _ := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC())
	r2, _ := borrowing.NewRecord(1, 11, 14, "", time.Now().UTC())
	require.NoError(t, recordRepo.Create(context.Background(), r1))
	require.NoError(t, recordRepo.Create(context.Background(), r2))

	resp, err := uc.List(context.Background(), ListRecordsRequest{MemberID: 11})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, uint(11), resp.Records[0].MemberID)
}
