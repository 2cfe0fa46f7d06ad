package user

import (
	apperrors "github.com/oyemayanq/bookstore-api/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeUserNotFound, "Could not find the user.")

	// ErrEmailDuplicate 邮箱已被注册
	ErrEmailDuplicate = apperrors.New(apperrors.ErrCodeEmailDuplicate, "User already exists, please login instead.")

	// ErrInvalidCredentials 邮箱或密码错误
	// 不区分"邮箱不存在"和"密码错误"（防止账号枚举）
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeBadLogin, "Invalid credentials, could not log you in.")
)
