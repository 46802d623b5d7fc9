package serverutils

// WebResponse is the uniform JSON envelope for every endpoint.
type WebResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"` // machine-readable failure code
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) WebResponse[T] {
	return WebResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) WebResponse[any] {
	return WebResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorCodeResponse carries a structured failure code alongside the message,
// e.g. "invalid_or_expired_session".
func ErrorCodeResponse(code int, errorCode, message string) WebResponse[any] {
	return WebResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
		Error:   errorCode,
	}
}
