package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不要直接暴露HTTP状态码）
// 2. Message是用户友好的提示信息
// 3. Fields是字段级校验错误（字段名→提示），仅参数校验失败时存在
// 4. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Code    int               `json:"code"`    // 业务错误码
	Message string            `json:"message"` // 用户友好的错误提示
	Fields  map[string]string `json:"errors,omitempty"`
	Err     error             `json:"-"` // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewInvalidRequest 创建参数校验错误（携带字段→提示映射）
// 用途：Validator收集完所有字段错误后，整体返回给客户端
func NewInvalidRequest(fields map[string]string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidParams,
		Message: "Invalid inputs passed, please check your data.",
		Fields:  fields,
	}
}

// Wrap 包装系统错误（如数据库错误、网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode 用指定业务码包装内部错误
func WrapCode(code int, err error, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、业务规则校验失败）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal    = 50000 // 内部错误
	ErrCodePersistence = 50001 // 数据库写入失败
	ErrCodeRedisError  = 50002 // Redis错误
	ErrCodeUnavailable = 50003 // 存储超时/不可达
	ErrCodeCredential  = 50004 // 签名/验签基础设施故障

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期
	ErrCodeBadLogin     = 40103 // 邮箱或密码错误
	ErrCodeForbidden    = 40104 // 无权限

	// 资源错误（40400-40499）
	ErrCodeNotFound      = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound  = 40401 // 用户不存在
	ErrCodeBookNotFound  = 40402 // 图书不存在
	ErrCodeOrderNotFound = 40403 // 订单不存在

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError   = 40000 // 业务错误(通用)
	ErrCodeEmailDuplicate  = 40003 // 邮箱已存在
	ErrCodeDuplicateEntry  = 40009 // 重复记录(通用)
	ErrCodeAlreadyReviewed = 40010 // 重复评论

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal    = New(ErrCodeInternal, "Something went wrong, please try again later.")
	ErrPersistence = New(ErrCodePersistence, "Could not save your data, please try again later.")
	ErrRedisError  = New(ErrCodeRedisError, "Cache service error.")
	ErrUnavailable = New(ErrCodeUnavailable, "Service is temporarily unavailable, please try again later.")
	ErrCredential  = New(ErrCodeCredential, "Could not process credentials, please try again later.")

	// 认证授权
	ErrUnauthorized = New(ErrCodeUnauthorized, "Authentication required, please log in.")
	ErrInvalidToken = New(ErrCodeInvalidToken, "Invalid token.")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token expired, please log in again.")
	ErrBadLogin     = New(ErrCodeBadLogin, "Invalid credentials, could not log you in.")
	ErrForbidden    = New(ErrCodeForbidden, "You are not allowed to access this resource.")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid inputs passed, please check your data.")
	ErrBindError     = New(ErrCodeBindError, "Malformed request body.")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Something went wrong, please try again later.")
}

// IsCode 判断错误是否携带指定业务码
func IsCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
