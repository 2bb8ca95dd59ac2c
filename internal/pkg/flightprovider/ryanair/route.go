package ryanair

type Route struct {
	AirportFrom       string  `json:"airportFrom"`
	AirportTo         string  `json:"airportTo"`
	ConnectingAirport *string `json:"connectingAirport"`
	NewRoute          bool    `json:"newRoute"`
	SeasonalRoute     bool    `json:"seasonalRoute"`
	Operator          string  `json:"operator"`
	Group             string  `json:"group"`
}

type Schedule struct {
	Month int   `json:"month"`
	Days  []Day `json:"days"`
}

type Day struct {
	Day     int      `json:"day"`
	Flights []Flight `json:"flights"`
}

type Flight struct {
	CarrierCode   string `json:"carrierCode"`
	Number        string `json:"number"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}
