package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// StatusError - неуспешный HTTP-статус от внешнего сервиса.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d", e.Code)
}

func NewStatusError(code int) *StatusError {
	return &StatusError{Code: code}
}

func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == code
	}
	return false
}

// IsRetryable: транспортные ошибки и перегрузка/недоступность ретраятся,
// остальные статусы - постоянные.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		// сетевые ошибки, таймауты и прочий транспорт
		return true
	}

	switch statusErr.Code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func HTTPCode(err error) string {
	if err == nil {
		return "OK"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "transport"
}
