package errors

import (
	"go.uber.org/zap"
)

// LogError는 에러를 구조화된 로그로 기록합니다
// 4xx 에러는 Warn, 그 외는 Error 레벨로 기록합니다
func LogError(logger *zap.Logger, err error, msg string, fields ...zap.Field) {
	if err == nil || logger == nil {
		return
	}

	// 기본 필드
	allFields := make([]zap.Field, 0, len(fields)+3)
	allFields = append(allFields, zap.Error(err))

	// AppError에서 추가 정보 추출
	status := StatusOf(err)
	var appErr *AppError
	if As(err, &appErr) {
		allFields = append(allFields,
			zap.String("error_code", appErr.Code()),
			zap.Int("status", status))
	}

	// 추가 필드 병합
	allFields = append(allFields, fields...)

	if status >= 400 && status < 500 {
		logger.Warn(msg, allFields...)
		return
	}
	logger.Error(msg, allFields...)
}
