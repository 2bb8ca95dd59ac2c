package flight

// Graph holds the request-scoped working sets derived from the route list.
type Graph struct {
	Departure string
	Arrival   string

	// Direct holds routes flying Departure -> Arrival.
	Direct *RouteSet
	// From holds routes leaving Departure, candidates for a first leg.
	From *RouteSet
	// To holds routes reaching Arrival, candidates for a second leg.
	To *RouteSet
}

// BuildGraph partitions routes into the direct, first-leg and second-leg sets.
// Routes tagged with a connecting airport are discarded. A route may end up
// in more than one set.
func BuildGraph(routes []Route, departure, arrival string) *Graph {
	g := &Graph{
		Departure: departure,
		Arrival:   arrival,
		Direct:    NewRouteSet(),
		From:      NewRouteSet(),
		To:        NewRouteSet(),
	}

	for i := range routes {
		route := &routes[i]
		if !route.IsDirect() {
			continue
		}

		if route.Origin == departure && route.Destination == arrival {
			g.Direct.Add(route)
		}

		if route.Origin == departure {
			g.From.Add(route)
		}

		if route.Destination == arrival {
			g.To.Add(route)
		}
	}

	return g
}
