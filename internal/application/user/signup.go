package user

import (
	"context"

	"github.com/oyemayanq/bookstore-api/internal/domain/user"
	"github.com/oyemayanq/bookstore-api/pkg/jwt"
)

// SignupUseCase 用户注册用例
// 设计说明：
// 1. Application层负责用例编排,协调领域服务与Token签发
// 2. 注册成功直接签发Token(身份在注册时建立,随即写入凭证)
type SignupUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
}

// NewSignupUseCase 创建注册用例
func NewSignupUseCase(userService user.Service, jwtManager *jwt.Manager) *SignupUseCase {
	return &SignupUseCase{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// SignupRequest 注册请求
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// SignupResponse 注册响应
// 不返回密码字段（安全考虑）
type SignupResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// Execute 执行注册
func (uc *SignupUseCase) Execute(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	// 1. 调用领域服务执行注册(邮箱重复返回Conflict)
	u, err := uc.userService.Signup(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 签发Token
	token, err := uc.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, err
	}

	return &SignupResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Token:     token.Value,
		ExpiresIn: token.ExpiresIn,
	}, nil
}
