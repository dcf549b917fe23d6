// Package errors defines the application error taxonomy. Every failure the
// registry surfaces carries a stable business code and an HTTP status, and
// maps 1:1 onto the API result envelope.
package errors

import (
	"net/http"

	"hokhau/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// NewValidation creates a VALIDATION_ERROR with the given message. The
// validation layer produces one of these for the first violated rule.
func NewValidation(message string) *BaseError {
	return &BaseError{
		httpCode:  http.StatusBadRequest,
		errorCode: "VALIDATION_ERROR",
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Request lifecycle errors
	ErrRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy yêu cầu",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusConflict,
		"INVALID_STATE",
		"Yêu cầu đã được xử lý",
		"",
	)

	ErrUnsupportedRequestType = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Loại yêu cầu không được hỗ trợ",
		"",
	)

	// Household errors
	ErrHouseholdRequired = NewBaseError(
		http.StatusBadRequest,
		"HOUSEHOLD_REQUIRED",
		"Yêu cầu phải gắn với một hộ khẩu",
		"",
	)

	ErrHouseholdNotFound = NewBaseError(
		http.StatusNotFound,
		"HOUSEHOLD_NOT_FOUND",
		"Không tìm thấy hộ khẩu",
		"",
	)

	ErrHouseholdInactive = NewBaseError(
		http.StatusConflict,
		"HOUSEHOLD_INACTIVE",
		"Hộ khẩu chưa được kích hoạt",
		"",
	)

	ErrDuplicateChuHo = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CHU_HO",
		"Hộ khẩu đã có chủ hộ",
		"",
	)

	// Resident errors
	ErrPersonNotFound = NewBaseError(
		http.StatusNotFound,
		"PERSON_NOT_FOUND",
		"Không tìm thấy nhân khẩu",
		"",
	)

	ErrPersonOutsideHousehold = NewBaseError(
		http.StatusBadRequest,
		"PERSON_OUTSIDE_HOUSEHOLD",
		"Nhân khẩu không thuộc hộ khẩu này",
		"",
	)

	ErrDuplicateCCCD = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CCCD",
		"Số CCCD đã tồn tại trong hệ thống",
		"",
	)

	ErrDuplicatePerson = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PERSON",
		"Nhân khẩu trùng họ tên và ngày sinh đã có trong hộ khẩu",
		"",
	)

	ErrDuplicateNewborn = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_NEWBORN",
		"Trẻ mới sinh trùng họ tên và ngày sinh đã có trong hộ khẩu",
		"",
	)

	ErrInvalidRelationship = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RELATIONSHIP",
		"Quan hệ với chủ hộ không hợp lệ",
		"",
	)

	// Temporary residence/absence errors
	ErrPersonAlreadyInTempStatus = NewBaseError(
		http.StatusConflict,
		"PERSON_ALREADY_IN_TEMP_STATUS",
		"Nhân khẩu đang trong trạng thái tạm trú hoặc tạm vắng",
		"",
	)

	ErrActiveTempRecordExists = NewBaseError(
		http.StatusConflict,
		"ACTIVE_TEMP_RECORD_EXISTS",
		"Nhân khẩu đã có đăng ký tạm trú/tạm vắng còn hiệu lực",
		"",
	)

	// Deceased errors
	ErrAlreadyDeceased = NewBaseError(
		http.StatusConflict,
		"ALREADY_DECEASED",
		"Nhân khẩu đã được khai tử",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Tên đăng nhập hoặc mật khẩu không đúng",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Không có quyền thực hiện thao tác này",
		"",
	)

	// Feedback errors
	ErrFeedbackNotFound = NewBaseError(
		http.StatusNotFound,
		"FEEDBACK_NOT_FOUND",
		"Không tìm thấy phản ánh",
		"",
	)

	// Registry constraint violations surfaced by the store
	ErrDuplicate = NewBaseError(
		http.StatusConflict,
		"DUPLICATE",
		"Dữ liệu trùng lặp",
		"",
	)

	ErrFKViolation = NewBaseError(
		http.StatusBadRequest,
		"FK_VIOLATION",
		"Tham chiếu dữ liệu không hợp lệ",
		"",
	)

	ErrCheckViolation = NewBaseError(
		http.StatusBadRequest,
		"CHECK_VIOLATION",
		"Dữ liệu vi phạm ràng buộc",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy tài nguyên",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống",
		"",
	)
)

// Response is the unified API result envelope.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the machine-readable part of a failed Response.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Thao tác cơ sở dữ liệu thất bại"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
