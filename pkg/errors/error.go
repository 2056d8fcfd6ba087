package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string  // 에러 코드 반환
	Status() int   // HTTP 상태 코드 반환
	Unwrap() error // 내부 에러 반환
}

// AppError는 기본 에러 구현체입니다
type AppError struct {
	code    string
	message string
	status  int
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message는 내부 에러를 제외한 메시지만 반환합니다
func (e *AppError) Message() string {
	return e.message
}

// Status는 명시된 상태 코드가 있으면 그대로, 없으면 코드 매핑 값을 반환합니다
func (e *AppError) Status() int {
	if e.status != 0 {
		return e.status
	}
	return ToHTTPStatus(e.code)
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// NewStatusError는 상태 코드가 고정된 에러를 생성합니다 (업스트림 응답 등)
func NewStatusError(code string, status int, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		status:  status,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 기존 AppError인 경우 코드와 상태를 유지합니다
	var appErr *AppError
	if As(err, &appErr) {
		return NewStatusError(appErr.Code(), appErr.status, message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf는 에러 체인에서 에러 코드를 추출합니다
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

// StatusOf는 에러 체인에서 HTTP 상태 코드를 추출합니다
func StatusOf(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Status()
	}
	return ToHTTPStatus(ErrInternal)
}
