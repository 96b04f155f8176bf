package dto

// CreateAuthorRequest HTTP创建作者请求
// validator tag说明:
// - required: 必填字段
// - datetime=2006-01-02: 日期格式校验(YYYY-MM-DD)
// - dive: 校验切片中的每个元素
type CreateAuthorRequest struct {
	FirstName    string   `json:"firstName" binding:"required,max=50" example:"Ada"`
	LastName     string   `json:"lastName" binding:"required,max=50" example:"Lovelace"`
	BirthDate    string   `json:"birthDate" binding:"required,datetime=2006-01-02" example:"1815-12-10"`
	DeathDate    string   `json:"deathDate" binding:"omitempty,datetime=2006-01-02" example:"1852-11-27"`
	Nationality  string   `json:"nationality" binding:"max=50" example:"British"`
	Biography    string   `json:"biography" binding:"max=5000" example:"English mathematician and writer"`
	NotableWorks []string `json:"notableWorks" binding:"omitempty,dive,max=200"`
}

// UpdateAuthorRequest HTTP更新作者请求
// 部分更新语义:未提供的字段保持原值
type UpdateAuthorRequest struct {
	FirstName    string   `json:"firstName" binding:"omitempty,max=50" example:"Ada"`
	LastName     string   `json:"lastName" binding:"omitempty,max=50" example:"Lovelace"`
	BirthDate    string   `json:"birthDate" binding:"omitempty,datetime=2006-01-02" example:"1815-12-10"`
	DeathDate    string   `json:"deathDate" binding:"omitempty,datetime=2006-01-02" example:"1852-11-27"`
	Nationality  string   `json:"nationality" binding:"omitempty,max=50" example:"British"`
	Biography    string   `json:"biography" binding:"omitempty,max=5000"`
	NotableWorks []string `json:"notableWorks" binding:"omitempty,dive,max=200"`
}

// ListAuthorsRequest HTTP作者列表请求(query参数)
type ListAuthorsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Lovelace"`
}
