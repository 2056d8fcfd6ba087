package errors

// 공통 에러 코드 정의
const (
	// 일반적인 에러 코드
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"

	// 게이트웨이 에러 코드
	ErrConfiguration = "CONFIGURATION" // 자격 증명 등 설정 누락
	ErrUpstream      = "UPSTREAM"      // 업스트림이 비정상 상태 코드로 응답
	ErrTransport     = "TRANSPORT"     // 네트워크 실패
)
