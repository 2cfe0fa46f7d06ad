package validator

import (
	"regexp"
	"strings"
)

// Validator 请求字段校验器
// 设计说明：
// 1. 每个请求在Handler内构造一个Validator，收集所有字段错误后一次性返回
//    （不在第一个错误处中断，客户端可以一次看到全部问题）
// 2. 每个字段最多保留一条错误信息：字段已失败后，该字段的后续规则全部跳过
//    （避免"cannot be empty"+"too short"叠加）
// 3. 纯内存状态，无I/O，不跨请求共享，不通过中间件传递
type Validator struct {
	errors map[string]string
}

// New 创建校验器
func New() *Validator {
	return &Validator{
		errors: make(map[string]string),
	}
}

// Exists 必填校验
// 字段缺失或为零值时记录 "<Field> cannot be empty"（首字母大写）
// 返回字段是否存在，其他规则以此作为前置条件
func (v *Validator) Exists(field string, value interface{}) bool {
	if v.failed(field) {
		return false
	}
	if present(value) {
		return true
	}
	v.addError(field, capitalize(field)+" cannot be empty")
	return false
}

// MatchesPattern 正则校验（前置：字段必须存在）
func (v *Validator) MatchesPattern(field, value string, pattern *regexp.Regexp, message string) {
	if !v.Exists(field, value) {
		return
	}
	v.Check(pattern.MatchString(value), field, message)
}

// MinLength 最小长度校验，适用于字符串和列表（前置：字段必须存在）
func (v *Validator) MinLength(field string, value interface{}, min int, message string) {
	if !v.Exists(field, value) {
		return
	}
	v.Check(length(value) >= min, field, message)
}

// MinValue 数值下界校验（前置：字段必须存在）
func (v *Validator) MinValue(field string, value, min float64, message string) {
	if !v.Exists(field, value) {
		return
	}
	v.Check(value >= min, field, message)
}

// MaxValue 数值上界校验（前置：字段必须存在）
func (v *Validator) MaxValue(field string, value, max float64, message string) {
	if !v.Exists(field, value) {
		return
	}
	v.Check(value <= max, field, message)
}

// Check 通用校验：result为false时记录错误
func (v *Validator) Check(result bool, field, message string) {
	if !result {
		v.addError(field, message)
	}
}

// HasErrors 是否存在校验失败
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors 返回字段→错误信息映射（用于客户端展示）
func (v *Validator) Errors() map[string]string {
	return v.errors
}

// addError 记录字段错误（每个字段只保留第一条）
func (v *Validator) addError(field, message string) {
	if _, exists := v.errors[field]; exists {
		return
	}
	v.errors[field] = message
}

// failed 字段是否已有错误
func (v *Validator) failed(field string) bool {
	_, exists := v.errors[field]
	return exists
}

// present 判断值是否"存在"（非零值）
// 支持字符串、数值、切片；nil视为缺失
func present(value interface{}) bool {
	switch val := value.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case []byte:
		return len(val) > 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case uint:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

// length 字符串/列表长度
func length(value interface{}) int {
	switch val := value.(type) {
	case string:
		return len(val)
	case []string:
		return len(val)
	default:
		return 0
	}
}

// capitalize 首字母大写（price → Price）
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
