package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMemberDefaults(t *testing.T) {
	m := NewMember("Grace", "Hopper", "grace@example.com", "", nil, time.Time{}, TypeStandard, 0)

	assert.Equal(t, StatusActive, m.Status, "新会员默认Active")
	assert.Zero(t, m.BorrowedBooks)
	assert.Equal(t, 3, m.MaxBooksAllowed, "Standard默认上限3本")
	assert.False(t, m.MembershipDate.IsZero(), "入会日期缺省为今天")
}

func TestDefaultMaxBooksByType(t *testing.T) {
	// Premium 5本、Student 4本、其他3本
	assert.Equal(t, 5, DefaultMaxBooks(TypePremium))
	assert.Equal(t, 4, DefaultMaxBooks(TypeStudent))
	assert.Equal(t, 3, DefaultMaxBooks(TypeStandard))
	assert.Equal(t, 3, DefaultMaxBooks(TypeSenior))
	assert.Equal(t, 3, DefaultMaxBooks(""))
}

func TestNewMemberExplicitLimit(t *testing.T) {
	m := NewMember("Ada", "Lovelace", "ada@example.com", "", nil, time.Time{}, TypePremium, 10)
	assert.Equal(t, 10, m.MaxBooksAllowed, "显式上限优先于类型默认值")
}

func TestCanBorrow(t *testing.T) {
	tests := []struct {
		name     string
		status   MemberStatus
		borrowed int
		max      int
		wantErr  error
	}{
		{"正常可借", StatusActive, 0, 3, nil},
		{"差一本到上限", StatusActive, 2, 3, nil},
		{"已达上限", StatusActive, 3, 3, ErrBorrowLimitReached},
		{"停用状态", StatusInactive, 0, 3, ErrMemberNotActive},
		{"暂停状态", StatusSuspended, 0, 3, ErrMemberNotActive},
		// 状态校验优先于上限校验
		{"暂停且超限", StatusSuspended, 5, 3, ErrMemberNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Member{Status: tt.status, BorrowedBooks: tt.borrowed, MaxBooksAllowed: tt.max}
			err := m.CanBorrow()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasOpenLoans(t *testing.T) {
	m := &Member{BorrowedBooks: 0}
	assert.False(t, m.HasOpenLoans())

	m.BorrowedBooks = 1
	assert.True(t, m.HasOpenLoans())
}

func TestStatusStringRoundTrip(t *testing.T) {
	for _, s := range []MemberStatus{StatusActive, StatusInactive, StatusSuspended} {
		parsed, ok := ParseStatus(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	_, ok := ParseStatus("Banned")
	assert.False(t, ok)

	assert.Equal(t, "Unknown", MemberStatus(99).String())
}
