package staff

import (
	"context"

	"github.com/MicheleArgenti/cse341-library-management-system/internal/domain/staff"
)

// RegisterUseCase 馆员注册用例
type RegisterUseCase struct {
	staffService staff.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(staffService staff.Service) *RegisterUseCase {
	return &RegisterUseCase{staffService: staffService}
}

// RegisterRequest 注册请求DTO
type RegisterRequest struct {
	Email    string
	Password string
	Name     string
}

// RegisterResponse 注册响应DTO
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Execute 执行注册
// 邮箱格式、密码强度、姓名长度校验由领域服务负责
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	st, err := uc.staffService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:    st.ID,
		Email: st.Email,
		Name:  st.Name,
	}, nil
}
