package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是馆藏图书聚合的根实体
// 2. TotalCopies/AvailableCopies是核心不变量:0 <= Available <= Total
// 3. AvailableCopies只随借书/还书变动,变更必须走仓储的原子操作
// 4. ISBN作为业务唯一标识(数据库层保证唯一性)
type Book struct {
	ID              uint
	Title           string   // 书名
	Author          string   // 作者姓名
	ISBN            string   // ISBN号(国际标准书号)
	Genres          []string // 分类标签
	PublishedYear   int      // 出版年份
	Publisher       string   // 出版社
	Pages           int      // 页数
	TotalCopies     int      // 馆藏总副本数
	AvailableCopies int      // 当前可借副本数
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBook 创建新图书(工厂方法)
// availableCopies传负数表示"默认等于totalCopies"(新书全部可借)
func NewBook(title, author, isbn string, genres []string, publishedYear int, publisher string, pages, totalCopies, availableCopies int) *Book {
	now := time.Now().UTC()
	if availableCopies < 0 {
		availableCopies = totalCopies
	}
	if genres == nil {
		genres = []string{}
	}
	return &Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Genres:          genres,
		PublishedYear:   publishedYear,
		Publisher:       publisher,
		Pages:           pages,
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HasAvailableCopy 是否有可借副本
func (b *Book) HasAvailableCopy() bool {
	return b.AvailableCopies > 0
}

// HasCopiesOnLoan 是否有副本在借(可借数<总数)
func (b *Book) HasCopiesOnLoan() bool {
	return b.AvailableCopies < b.TotalCopies
}

// ValidateCopies 校验副本数不变量
// 业务规则:0 <= AvailableCopies <= TotalCopies
func (b *Book) ValidateCopies() error {
	if b.TotalCopies < 0 {
		return ErrInvalidCopies
	}
	if b.AvailableCopies < 0 || b.AvailableCopies > b.TotalCopies {
		return ErrInvalidCopies
	}
	return nil
}

// UpdateInfo 更新图书基本信息
// 空值表示不修改该字段(部分更新语义)
func (b *Book) UpdateInfo(title, author, publisher string, publishedYear, pages int) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if publisher != "" {
		b.Publisher = publisher
	}
	if publishedYear > 0 {
		b.PublishedYear = publishedYear
	}
	if pages > 0 {
		b.Pages = pages
	}
	b.UpdatedAt = time.Now().UTC()
}
