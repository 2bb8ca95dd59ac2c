package flight

// Route is a flyable airport pair as published by the route provider.
// Schedule stays nil until the correlator attaches a fetched timetable.
type Route struct {
	Origin            string
	Destination       string
	ConnectingAirport string
	Operator          string
	Schedule          *Schedule
}

// RouteKey identifies a route. Two routes with the same key are the same route.
type RouteKey struct {
	Origin      string
	Destination string
}

func (r *Route) Key() RouteKey {
	return RouteKey{Origin: r.Origin, Destination: r.Destination}
}

// IsDirect reports whether the route can be flown as a single leg.
func (r *Route) IsDirect() bool {
	return r.ConnectingAirport == ""
}

// Schedule is one route's timetable for a single month.
type Schedule struct {
	Year  int
	Month int
	Days  []DaySchedule
}

type DaySchedule struct {
	Day     int
	Flights []FlightInstance
}

// FlightInstance holds local clock times ("HH:MM") without a date.
type FlightInstance struct {
	Number        string
	DepartureTime string
	ArrivalTime   string
}

// RouteSet keeps routes unique by RouteKey in insertion order.
// The first route added for a key wins.
type RouteSet struct {
	routes []*Route
	index  map[RouteKey]int
}

func NewRouteSet(routes ...*Route) *RouteSet {
	s := &RouteSet{index: make(map[RouteKey]int)}
	for _, r := range routes {
		s.Add(r)
	}

	return s
}

// Add inserts r unless a route with the same key is already present.
// It reports whether r was inserted.
func (s *RouteSet) Add(r *Route) bool {
	if s.index == nil {
		s.index = make(map[RouteKey]int)
	}

	key := r.Key()
	if _, ok := s.index[key]; ok {
		return false
	}

	s.index[key] = len(s.routes)
	s.routes = append(s.routes, r)

	return true
}

func (s *RouteSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.routes)
}

// Routes returns the routes in insertion order. The slice must not be modified.
func (s *RouteSet) Routes() []*Route {
	if s == nil {
		return nil
	}

	return s.routes
}
