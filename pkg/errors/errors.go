// Package errors 提供统一的错误处理框架
package errors

import (
	"errors"
	"fmt"
)

// Code 错误码
type Code string

const (
	// 通用错误码
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL_ERROR"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// 文件发现相关
	CodeFileNotFound   Code = "FILE_NOT_FOUND"
	CodeDuplicateFile  Code = "DUPLICATE_FILE"
	CodeFileUnreadable Code = "FILE_UNREADABLE"

	// 表格校验相关
	CodeMissingHeaders Code = "MISSING_HEADERS"
	CodeEmptySheet     Code = "EMPTY_SHEET"
	CodeValidationFail Code = "VALIDATION_FAILED"

	// 对账相关
	CodeInvalidDateTime  Code = "INVALID_DATETIME"
	CodeUnknownLeaveType Code = "UNKNOWN_LEAVE_TYPE"
	CodeUnknownEmployee  Code = "UNKNOWN_EMPLOYEE"
)

// AppError 应用错误
type AppError struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Details string                 `json:"details,omitempty"`
	Cause   error                  `json:"-"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetails 添加详细信息
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithCause 添加原因
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithField 添加字段
func (e *AppError) WithField(key string, value interface{}) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// New 创建新错误
func New(code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(err error, code Code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is 检查错误是否为特定类型
func Is(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode 获取错误码
func GetCode(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// ExitCode 错误码转进程退出码
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCode(err) {
	case CodeFileNotFound, CodeDuplicateFile, CodeFileUnreadable:
		return 2
	case CodeMissingHeaders, CodeEmptySheet, CodeValidationFail:
		return 3
	case CodeInvalidDateTime:
		return 4
	default:
		return 1
	}
}

// 预定义错误
var (
	ErrNotFound     = New(CodeNotFound, "资源不存在")
	ErrInvalidInput = New(CodeInvalidInput, "输入参数无效")
	ErrInternal     = New(CodeInternal, "内部错误")
)

// FileNotFound 创建文件缺失错误
func FileNotFound(kind, dir string) *AppError {
	return New(CodeFileNotFound, fmt.Sprintf("目录 %s 中未找到%s文件", dir, kind))
}

// DuplicateFile 创建文件重复错误
func DuplicateFile(kind string, names []string) *AppError {
	return New(CodeDuplicateFile, fmt.Sprintf("发现多个%s文件: %v，请只保留一个", kind, names))
}

// InvalidDateTime 创建日期时间无效错误
func InvalidDateTime(field, value string) *AppError {
	return New(CodeInvalidDateTime, fmt.Sprintf("字段 '%s' 的日期时间无效: %q", field, value))
}

// ValidationErrors 验证错误集合
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// ValidationError 单个验证错误
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (ve *ValidationErrors) Error() string {
	if len(ve.Errors) == 0 {
		return "验证失败"
	}
	return fmt.Sprintf("验证失败: %s - %s", ve.Errors[0].Field, ve.Errors[0].Message)
}

// Add 添加验证错误
func (ve *ValidationErrors) Add(field, message string) {
	ve.Errors = append(ve.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors 检查是否有错误
func (ve *ValidationErrors) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ToAppError 转换为 AppError
func (ve *ValidationErrors) ToAppError(code Code, message string) *AppError {
	err := New(code, message)
	err.Cause = ve
	err.Fields = make(map[string]interface{})
	for _, e := range ve.Errors {
		err.Fields[e.Field] = e.Message
	}
	return err
}
