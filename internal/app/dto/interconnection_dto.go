package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/exception"
	"github.com/ijalalfrz/flight-interconnections-service/internal/pkg/flight"
)

// DateTimeLayout is the ISO-8601 local date-time layout used in responses.
const DateTimeLayout = "2006-01-02T15:04"

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDateTime parses an ISO-8601 date-time. Values without offset are read as UTC.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date-time %q", value)
}

// InterconnectionRequest is the query of GET /interconnections.
// DepartureDateTime bounds the departure of the first leg and
// ArrivalDateTime the arrival of the last one.
type InterconnectionRequest struct {
	Departure         string `json:"departure" validate:"required,iata"`
	Arrival           string `json:"arrival" validate:"required,iata"`
	DepartureDateTime string `json:"departureDateTime" validate:"required,local_datetime"`
	ArrivalDateTime   string `json:"arrivalDateTime" validate:"required,local_datetime"`

	window flight.Window
}

// BindQuery reads the request from the URL query and validates it.
func (s *InterconnectionRequest) BindQuery(r *http.Request) error {
	query := r.URL.Query()

	s.Departure = strings.ToUpper(strings.TrimSpace(query.Get("departure")))
	s.Arrival = strings.ToUpper(strings.TrimSpace(query.Get("arrival")))
	s.DepartureDateTime = strings.TrimSpace(query.Get("departureDateTime"))
	s.ArrivalDateTime = strings.TrimSpace(query.Get("arrivalDateTime"))

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *InterconnectionRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.Departure == s.Arrival {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "arrival must be different from departure",
		}
	}

	start, _ := ParseDateTime(s.DepartureDateTime)
	end, _ := ParseDateTime(s.ArrivalDateTime)

	if end.Before(start) {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "arrivalDateTime must not be before departureDateTime",
		}
	}

	s.window = flight.Window{Start: start, End: end}

	return nil
}

// Window returns the search window. It is only set after a successful Validate.
func (s InterconnectionRequest) Window() flight.Window {
	return s.window
}

type Leg struct {
	DepartureAirport  string `json:"departureAirport"`
	ArrivalAirport    string `json:"arrivalAirport"`
	DepartureDateTime string `json:"departureDateTime"`
	ArrivalDateTime   string `json:"arrivalDateTime"`
}

type Interconnection struct {
	Stops int   `json:"stops"`
	Legs  []Leg `json:"legs"`
}

// NewInterconnections converts itineraries into the response body, keeping their order.
func NewInterconnections(itineraries []flight.Itinerary) []Interconnection {
	results := make([]Interconnection, len(itineraries))
	for i, itinerary := range itineraries {
		legs := make([]Leg, len(itinerary.Legs))
		for j, leg := range itinerary.Legs {
			legs[j] = Leg{
				DepartureAirport:  leg.DepartureAirport,
				ArrivalAirport:    leg.ArrivalAirport,
				DepartureDateTime: leg.DepartureDateTime.Format(DateTimeLayout),
				ArrivalDateTime:   leg.ArrivalDateTime.Format(DateTimeLayout),
			}
		}

		results[i] = Interconnection{
			Stops: itinerary.Stops,
			Legs:  legs,
		}
	}

	return results
}
