package flight

import "time"

// MinConnectionTime is the minimum ground time between the arrival of the
// first leg and the departure of the second one.
const MinConnectionTime = 2 * time.Hour

// Leg is a flight segment resolved to absolute times.
type Leg struct {
	DepartureAirport  string
	ArrivalAirport    string
	DepartureDateTime time.Time
	ArrivalDateTime   time.Time
}

type Itinerary struct {
	Stops int
	Legs  []Leg
}

func NewItinerary(legs ...Leg) Itinerary {
	return Itinerary{
		Stops: len(legs) - 1,
		Legs:  legs,
	}
}

// Window bounds a search: Start is the earliest departure of the first leg
// and End the latest arrival of the last leg.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Location() *time.Location {
	return w.Start.Location()
}
