package dto

import (
	"regexp"

	"github.com/oyemayanq/bookstore-api/pkg/validator"
)

// emailPattern 邮箱格式
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// SignupRequest 注册请求
// 不使用binding tag:校验规则由Validator集中表达,
// 错误按字段归集后一次性返回
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate 校验注册参数
// 规则:
// - name 非空且至少3个字符
// - email 非空且格式合法
// - password 非空且至少6个字符
func (r *SignupRequest) Validate() *validator.Validator {
	v := validator.New()

	if v.Exists("name", r.Name) {
		v.MinLength("name", r.Name, 3, "Name should be at least 3 characters long.")
	}
	if v.Exists("email", r.Email) {
		v.MatchesPattern("email", r.Email, emailPattern, "Email is not valid.")
	}
	if v.Exists("password", r.Password) {
		v.MinLength("password", r.Password, 6, "Password should be at least 6 characters long.")
	}

	return v
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate 校验登录参数(只验非空,凭证正误由领域层判定)
func (r *LoginRequest) Validate() *validator.Validator {
	v := validator.New()
	v.Exists("email", r.Email)
	v.Exists("password", r.Password)
	return v
}
