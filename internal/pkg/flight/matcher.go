package flight

import (
	"context"
	"fmt"
	"log/slog"
)

// MatchDirect returns a single-leg itinerary for every scheduled flight of
// the direct routes that departs at or after the window start and arrives at
// or before the window end. Routes without schedule are skipped.
func MatchDirect(ctx context.Context, direct *RouteSet, window Window) ([]Itinerary, error) {
	var itineraries []Itinerary

	for _, route := range direct.Routes() {
		legs, err := resolveLegs(route, window)
		if err != nil {
			return nil, err
		}

		for _, leg := range legs {
			if leg.DepartureDateTime.Before(window.Start) || leg.ArrivalDateTime.After(window.End) {
				continue
			}

			itineraries = append(itineraries, NewItinerary(leg))
			slog.DebugContext(ctx, "direct itinerary found",
				slog.String("from", route.Origin),
				slog.String("to", route.Destination))
		}
	}

	return itineraries, nil
}

// MatchOneStop joins first legs from the from set with second legs from the
// to set. A pair is accepted when the first leg departs at or after the window
// start, the second leg departs at least MinConnectionTime after the first
// leg arrives and the second leg arrives at or before the window end.
//
// Second legs are looked up by origin airport. When several routes in to
// share an origin, the first one in iteration order is used.
func MatchOneStop(ctx context.Context, from, to *RouteSet, window Window) ([]Itinerary, error) {
	connecting := make(map[string]*Route, to.Len())
	for _, route := range to.Routes() {
		if _, ok := connecting[route.Origin]; ok {
			slog.DebugContext(ctx, "ignoring duplicate second leg origin",
				slog.String("from", route.Origin),
				slog.String("to", route.Destination))
			continue
		}

		connecting[route.Origin] = route
	}

	secondLegs := make(map[RouteKey][]Leg)

	var itineraries []Itinerary
	for _, routeFrom := range from.Routes() {
		firstLegs, err := resolveLegs(routeFrom, window)
		if err != nil {
			return nil, err
		}

		routeTo, ok := connecting[routeFrom.Destination]
		if !ok || routeTo.Schedule == nil {
			continue
		}

		legsTo, ok := secondLegs[routeTo.Key()]
		if !ok {
			legsTo, err = resolveLegs(routeTo, window)
			if err != nil {
				return nil, err
			}

			secondLegs[routeTo.Key()] = legsTo
		}

		for _, first := range firstLegs {
			if first.DepartureDateTime.Before(window.Start) {
				continue
			}

			for _, second := range legsTo {
				if !canConnect(first, second) || second.ArrivalDateTime.After(window.End) {
					continue
				}

				itineraries = append(itineraries, NewItinerary(first, second))
				slog.DebugContext(ctx, "one stop itinerary found",
					slog.String("from", routeFrom.Origin),
					slog.String("via", routeFrom.Destination),
					slog.String("to", routeTo.Destination))
			}
		}
	}

	return itineraries, nil
}

func canConnect(first, second Leg) bool {
	return !first.ArrivalDateTime.Add(MinConnectionTime).After(second.DepartureDateTime)
}

// resolveLegs expands a route's schedule into legs, in day then flight order.
func resolveLegs(route *Route, window Window) ([]Leg, error) {
	if route.Schedule == nil {
		return nil, nil
	}

	schedule := route.Schedule
	loc := window.Location()

	var legs []Leg
	for _, day := range schedule.Days {
		for _, f := range day.Flights {
			departure, err := ResolveTime(schedule.Year, schedule.Month, day.Day, f.DepartureTime, loc)
			if err != nil {
				return nil, fmt.Errorf("route %s-%s flight %s: %w", route.Origin, route.Destination, f.Number, err)
			}

			arrival, err := ResolveTime(schedule.Year, schedule.Month, day.Day, f.ArrivalTime, loc)
			if err != nil {
				return nil, fmt.Errorf("route %s-%s flight %s: %w", route.Origin, route.Destination, f.Number, err)
			}

			legs = append(legs, Leg{
				DepartureAirport:  route.Origin,
				ArrivalAirport:    route.Destination,
				DepartureDateTime: departure,
				ArrivalDateTime:   arrival,
			})
		}
	}

	return legs, nil
}
