package dto

// AddressRequest HTTP地址
type AddressRequest struct {
	Street  string `json:"street" binding:"max=200" example:"123 Main St"`
	City    string `json:"city" binding:"max=100" example:"Springfield"`
	State   string `json:"state" binding:"max=50" example:"IL"`
	ZipCode string `json:"zipCode" binding:"max=20" example:"62704"`
}

// RegisterMemberRequest HTTP注册会员请求
// MembershipDate缺省为今天;MaxBooksAllowed缺省按会员类型取默认值
// (Premium 5本/Student 4本/其他3本)
type RegisterMemberRequest struct {
	FirstName       string          `json:"firstName" binding:"required,max=50" example:"Grace"`
	LastName        string          `json:"lastName" binding:"required,max=50" example:"Hopper"`
	Email           string          `json:"email" binding:"required,email,max=100" example:"grace@example.com"`
	Phone           string          `json:"phone" binding:"omitempty,max=30" example:"555-0142"`
	Address         *AddressRequest `json:"address" binding:"omitempty"`
	MembershipDate  string          `json:"membershipDate" binding:"omitempty,datetime=2006-01-02" example:"2025-01-15"`
	MembershipType  string          `json:"membershipType" binding:"omitempty,oneof=Standard Premium Student Senior" example:"Standard"`
	MaxBooksAllowed int             `json:"maxBooksAllowed" binding:"omitempty,min=1,max=50" example:"3"`
}

// UpdateMemberRequest HTTP更新会员请求
// 部分更新语义:未提供的字段保持原值
type UpdateMemberRequest struct {
	FirstName       string          `json:"firstName" binding:"omitempty,max=50"`
	LastName        string          `json:"lastName" binding:"omitempty,max=50"`
	Email           string          `json:"email" binding:"omitempty,email,max=100"`
	Phone           string          `json:"phone" binding:"omitempty,max=30"`
	Address         *AddressRequest `json:"address" binding:"omitempty"`
	MembershipType  string          `json:"membershipType" binding:"omitempty,oneof=Standard Premium Student Senior"`
	Status          string          `json:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
	MaxBooksAllowed int             `json:"maxBooksAllowed" binding:"omitempty,min=1,max=50"`
}

// ListMembersRequest HTTP会员列表请求(query参数)
type ListMembersRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"Hopper"`
	Status   string `form:"status" binding:"omitempty,oneof=Active Inactive Suspended" example:"Active"`
}
