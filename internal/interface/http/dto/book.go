package dto

// CreateBookRequest HTTP录入图书请求
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// AvailableCopies缺省等于TotalCopies(新书全部可借)
type CreateBookRequest struct {
	Title           string   `json:"title" binding:"required,max=200" example:"The Go Programming Language"`
	Author          string   `json:"author" binding:"required,max=100" example:"Alan A. A. Donovan"`
	ISBN            string   `json:"isbn" binding:"required,max=20" example:"9780134190440"`
	Genres          []string `json:"genre" binding:"omitempty,dive,max=50" example:"Programming"`
	PublishedYear   int      `json:"publishedYear" binding:"omitempty,min=0,max=2100" example:"2015"`
	Publisher       string   `json:"publisher" binding:"omitempty,max=100" example:"Addison-Wesley"`
	Pages           int      `json:"pages" binding:"omitempty,min=0" example:"380"`
	TotalCopies     int      `json:"totalCopies" binding:"required,min=1,max=10000" example:"5"`
	AvailableCopies *int     `json:"availableCopies" binding:"omitempty,min=0" example:"5"`
}

// UpdateBookRequest HTTP更新图书请求
// 部分更新语义:未提供的字段保持原值
type UpdateBookRequest struct {
	Title           string   `json:"title" binding:"omitempty,max=200"`
	Author          string   `json:"author" binding:"omitempty,max=100"`
	ISBN            string   `json:"isbn" binding:"omitempty,max=20"`
	Genres          []string `json:"genre" binding:"omitempty,dive,max=50"`
	PublishedYear   int      `json:"publishedYear" binding:"omitempty,min=0,max=2100"`
	Publisher       string   `json:"publisher" binding:"omitempty,max=100"`
	Pages           int      `json:"pages" binding:"omitempty,min=0"`
	TotalCopies     *int     `json:"totalCopies" binding:"omitempty,min=1,max=10000"`
	AvailableCopies *int     `json:"availableCopies" binding:"omitempty,min=0"`
}

// ListBooksRequest HTTP图书列表请求(query参数)
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Go"`
	SortBy   string `form:"sortBy" binding:"omitempty,oneof=title_asc title_desc created_at_desc" example:"created_at_desc"`
}
