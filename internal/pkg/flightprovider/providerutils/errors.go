package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "provider internal error or temporary unavailable",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}
