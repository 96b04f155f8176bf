package author

import (
	"time"
)

// Author 作者实体(聚合根)
// DDD设计说明:
// 1. Author是独立聚合,图书通过作者姓名关联(不做外键,与原目录数据对齐)
// 2. DeathDate使用指针,nil表示在世
// 3. NotableWorks为代表作列表,持久化层序列化为JSON存储
type Author struct {
	ID           uint
	FirstName    string     // 名
	LastName     string     // 姓
	BirthDate    time.Time  // 出生日期
	DeathDate    *time.Time // 逝世日期(nil表示在世)
	Nationality  string     // 国籍
	Biography    string     // 简介
	NotableWorks []string   // 代表作
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(firstName, lastName string, birthDate time.Time, deathDate *time.Time, nationality, biography string, notableWorks []string) *Author {
	now := time.Now().UTC()
	if notableWorks == nil {
		notableWorks = []string{}
	}
	return &Author{
		FirstName:    firstName,
		LastName:     lastName,
		BirthDate:    birthDate,
		DeathDate:    deathDate,
		Nationality:  nationality,
		Biography:    biography,
		NotableWorks: notableWorks,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// FullName 全名(用于展示与日志)
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}

// UpdateInfo 更新作者信息
// 空字符串表示不修改该字段;DeathDate与NotableWorks由调用方显式传入
func (a *Author) UpdateInfo(firstName, lastName, nationality, biography string) {
	if firstName != "" {
		a.FirstName = firstName
	}
	if lastName != "" {
		a.LastName = lastName
	}
	if nationality != "" {
		a.Nationality = nationality
	}
	if biography != "" {
		a.Biography = biography
	}
	a.UpdatedAt = time.Now().UTC()
}
