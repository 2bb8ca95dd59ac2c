package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/exception"
)

var ErrInvalidSchedule = exception.ApplicationError{
	Message:    "could not resolve flight schedules",
	StatusCode: http.StatusBadGateway,
}
