package server

import (
	"net/http"
	"time"

	"github.com/NVIDIA/datacontract/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorCode identifies a class of API failure in error responses.
type ErrorCode string

// Error codes as constants
const (
	ErrCodeInvalidRequest    ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidContract   ErrorCode = "INVALID_CONTRACT"
	ErrCodeInvalidDataset    ErrorCode = "INVALID_DATASET"
	ErrCodeMethodNotAllowed  ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnavailable       ErrorCode = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout           ErrorCode = "TIMEOUT"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest, ErrCodeInvalidContract, ErrCodeInvalidDataset:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code ErrorCode) bool {
	switch code {
	case ErrCodeRateLimitExceeded, ErrCodeUnavailable, ErrCodeTimeout, ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails combines two detail maps; keys in b win. Returns nil when
// both inputs are empty so the details field is omitted from the response.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// WriteError writes an error response. The HTTP status and retryable flag
// are derived from the code.
func WriteError(w http.ResponseWriter, r *http.Request, code ErrorCode, message string, details map[string]any) {
	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   mergeDetails(nil, details),
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryableFromCode(code),
	}

	serializer.RespondJSON(w, HTTPStatusFromCode(code), errResp)
}

// WriteErrorFromErr writes an error response for an unclassified failure.
// The underlying error text lands in details under "error".
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, message string, details map[string]any) {
	WriteError(w, r, ErrCodeInternal, message, mergeDetails(details, map[string]any{"error": err.Error()}))
}
