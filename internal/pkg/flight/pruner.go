package flight

// Prune narrows From and To to the routes that can be joined into a two-leg
// itinerary: a first leg is kept only if some second leg departs from its
// destination, and a second leg only if some kept first leg lands at its origin.
// Either set may end up empty.
func (g *Graph) Prune() {
	toOrigins := make(map[string]struct{}, g.To.Len())
	for _, r := range g.To.Routes() {
		toOrigins[r.Origin] = struct{}{}
	}

	from := NewRouteSet()
	fromDestinations := make(map[string]struct{}, g.From.Len())
	for _, r := range g.From.Routes() {
		if _, ok := toOrigins[r.Destination]; !ok {
			continue
		}

		from.Add(r)
		fromDestinations[r.Destination] = struct{}{}
	}

	to := NewRouteSet()
	for _, r := range g.To.Routes() {
		if _, ok := fromDestinations[r.Origin]; ok {
			to.Add(r)
		}
	}

	g.From = from
	g.To = to
}
