package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return echo.NewHTTPError(appErr.Status(), appErr.Error())
	}

	// Echo 에러인 경우 그대로 반환
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		return echoErr
	}

	// 기본 에러는 500으로 처리
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
// 상태 코드는 원래 값을 그대로 유지합니다 (405 등)
func FromHTTPError(err error) *AppError {
	if err == nil {
		return nil
	}

	// 이미 AppError인 경우 그대로 반환
	var appErr *AppError
	if As(err, &appErr) {
		return appErr
	}

	// Echo 에러 처리
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		code := httpStatusToCode(echoErr.Code)
		msg, ok := echoErr.Message.(string)
		if !ok || msg == "" {
			msg = http.StatusText(echoErr.Code)
		}
		return NewStatusError(code, echoErr.Code, msg, echoErr.Internal)
	}

	// 기본 에러는 Internal로 처리
	return NewAppError(ErrInternal, http.StatusText(http.StatusInternalServerError), err)
}
