package dto

// RegisterStaffRequest HTTP馆员注册请求
// 密码强度(8-20位,含字母和数字)由领域服务校验
type RegisterStaffRequest struct {
	Email    string `json:"email" binding:"required,email,max=100" example:"staff@library.org"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd123"`
	Name     string `json:"name" binding:"required,min=2,max=50" example:"Jean Doe"`
}

// LoginStaffRequest HTTP馆员登录请求
type LoginStaffRequest struct {
	Email    string `json:"email" binding:"required,email" example:"staff@library.org"`
	Password string `json:"password" binding:"required" example:"passw0rd123"`
}
