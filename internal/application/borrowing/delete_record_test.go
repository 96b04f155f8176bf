package borrowing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/borrowing"
)

// TestDeleteRecord_Terminal 终态记录可删除
func TestDeleteRecord_Terminal(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := NewDeleteRecordUseCase(recordRepo)

	record, err := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, recordRepo.Create(context.Background(), record))
	require.NoError(t, record.MarkReturned(time.Now().UTC(), 100))

	err = uc.Execute(context.Background(), record.ID)
	assert.NoError(t, err)

	_, err = recordRepo.FindByID(context.Background(), record.ID)
	assert.Equal(t, borrowing.ErrRecordNotFound, err)
}

// TestDeleteRecord_Open 未归还记录不可删除(逾期未还同样)
func TestDeleteRecord_Open(t *testing.T) {
	recordRepo := newFakeRecordRepo()
	uc := NewDeleteRecordUseCase(recordRepo)

	// 未归还且已逾期:存储状态仍是Borrowed,同样拒绝删除
	record, err := borrowing.NewRecord(1, 10, 14, "", time.Now().UTC().AddDate(0, -2, 0))
	require.NoError(t, err)
	require.NoError(t, recordRepo.Create(context.Background(), record))

	err = uc.Execute(context.Background(), record.ID)
	assert.Equal(t, borrowing.ErrActiveRecord, err)

	// 记录仍在
	_, err = recordRepo.FindByID(context.Background(), record.ID)
	assert.NoError(t, err)
}

// TestDeleteRecord_NotFound 记录不存在
func TestDeleteRecord_NotFound(t *testing.T) {
	uc := NewDeleteRecordUseCase(newFakeRecordRepo())

	err := uc.Execute(context.Background(), 404)
	assert.Equal(t, borrowing.ErrRecordNotFound, err)
}
