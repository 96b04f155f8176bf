package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBookDefaultsAvailableCopies(t *testing.T) {
	// availableCopies传负数表示默认等于totalCopies
	b := NewBook("The Go Programming Language", "Alan A. A. Donovan", "9780134190440",
		nil, 2015, "Addison-Wesley", 380, 5, -1)

	assert.Equal(t, 5, b.TotalCopies)
	assert.Equal(t, 5, b.AvailableCopies, "新书应全部可借")
	assert.NotNil(t, b.Genres, "genres应初始化为空切片而非nil")
	assert.NoError(t, b.ValidateCopies())
}

func TestNewBookExplicitAvailableCopies(t *testing.T) {
	b := NewBook("Title", "Author", "9780000000000", []string{"Fiction"}, 2020, "Pub", 100, 5, 3)

	assert.Equal(t, 3, b.AvailableCopies)
	assert.NoError(t, b.ValidateCopies())
}

func TestHasAvailableCopy(t *testing.T) {
	b := NewBook("Title", "Author", "9780000000001", nil, 2020, "Pub", 100, 1, 1)
	assert.True(t, b.HasAvailableCopy())

	b.AvailableCopies = 0
	assert.False(t, b.HasAvailableCopy())
}

func TestValidateCopiesInvariant(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		available int
		wantErr   bool
	}{
		{"全部可借", 5, 5, false},
		{"部分可借", 5, 2, false},
		{"全部借出", 5, 0, false},
		{"可借为负", 5, -1, true},
		{"可借超过总数", 5, 6, true},
		{"总数为负", -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{TotalCopies: tt.total, AvailableCopies: tt.available}
			err := b.ValidateCopies()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCopies)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateInfoPartialSemantics(t *testing.T) {
	b := NewBook("Old Title", "Old Author", "9780000000002", nil, 2010, "Old Pub", 200, 3, 3)

	// 空值表示不修改
	b.UpdateInfo("New Title", "", "", 0, 0)

	assert.Equal(t, "New Title", b.Title)
	assert.Equal(t, "Old Author", b.Author)
	assert.Equal(t, "Old Pub", b.Publisher)
	assert.Equal(t, 2010, b.PublishedYear)
	assert.Equal(t, 200, b.Pages)
}
