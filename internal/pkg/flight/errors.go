package flight

import (
	"net/http"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/exception"
)

var ErrMalformedSchedule = exception.ApplicationError{
	Message:    "malformed schedule data from upstream",
	StatusCode: http.StatusBadGateway,
}
