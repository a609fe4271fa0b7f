// Package types 定义跨服务共享的错误类型
//
// 错误在服务内部携带完整信息，在 handler 边界统一转换：
// ValidationError -> 400（字段级详情可对外），TimeoutError / ProviderError -> 5xx
// （对外只返回通用提示，完整信息仅记录在服务端日志）。
package types

import (
	"fmt"
	"strings"
)

// ValidationError 请求校验失败
type ValidationError struct {
	Details []string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// TimeoutError 供应商调用超出时间预算
type TimeoutError struct {
	Err error
}

// Error 实现 error 接口
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("completion timed out: %v", e.Err)
}

// Unwrap 返回底层错误
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ProviderError 供应商调用失败（非超时）
type ProviderError struct {
	StatusCode int
	Err        error
}

// Error 实现 error 接口
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap 返回底层错误
func (e *ProviderError) Unwrap() error {
	return e.Err
}
