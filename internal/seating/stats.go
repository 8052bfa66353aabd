package seating

import (
	"sort"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// Summary holds roster-wide counts.
//
// Fields:
//
//	Total                – number of passengers.
//	Paid, Pending        – passengers by payment status.
//	ConfirmedSeats       – seats requested in the roster text.
//	TemporaryAssignments – seats chosen by the resolver.
//	UnassignedPassengers – passengers still without a seat.
//	EmptySeats           – SeatCapacity minus occupied seats.
type Summary struct {
	Total                int `json:"total"`
	Paid                 int `json:"paid"`
	Pending              int `json:"pending"`
	ConfirmedSeats       int `json:"confirmed_seats"`
	TemporaryAssignments int `json:"temporary_assignments"`
	UnassignedPassengers int `json:"unassigned_passengers"`
	EmptySeats           int `json:"empty_seats"`
}

// LocationStats counts the passengers boarding at one location.
type LocationStats struct {
	Location model.Location `json:"location"`
	Total    int            `json:"total"`
	Paid     int            `json:"paid"`
	Pending  int            `json:"pending"`
}

// LocationGroup is the passenger list for one boarding point.
type LocationGroup struct {
	LocationStats
	Passengers []model.Passenger `json:"passengers"`
}

// Summarize computes roster-wide counts.
func Summarize(records []model.Passenger) Summary {
	s := Summary{Total: len(records)}
	assigned := 0
	for _, p := range records {
		if p.IsPaid() {
			s.Paid++
		} else {
			s.Pending++
		}
		if !p.HasSeat() {
			s.UnassignedPassengers++
			continue
		}
		assigned++
		if p.IsTemporaryAssignment {
			s.TemporaryAssignments++
		}
	}
	s.ConfirmedSeats = assigned - s.TemporaryAssignments
	s.EmptySeats = model.SeatCapacity - assigned
	return s
}

// LocationBreakdown counts passengers per location.  Locations with more
// passengers come first; ties keep the order in which locations first
// appear in the roster.
func LocationBreakdown(records []model.Passenger) []LocationStats {
	groups := GroupByLocation(records)
	out := make([]LocationStats, len(groups))
	for i, g := range groups {
		out[i] = g.LocationStats
	}
	return out
}

// GroupByLocation groups passengers by boarding point.  Within a group
// passengers are ordered by seat number with seatless passengers last;
// groups are ordered like LocationBreakdown.
func GroupByLocation(records []model.Passenger) []LocationGroup {
	var groups []LocationGroup
	index := make(map[model.Location]int)
	for _, p := range records {
		i, ok := index[p.Location]
		if !ok {
			i = len(groups)
			index[p.Location] = i
			groups = append(groups, LocationGroup{LocationStats: LocationStats{Location: p.Location}})
		}
		g := &groups[i]
		g.Passengers = append(g.Passengers, p)
		g.Total++
		if p.IsPaid() {
			g.Paid++
		} else {
			g.Pending++
		}
	}

	for i := range groups {
		members := groups[i].Passengers
		sort.SliceStable(members, func(a, b int) bool {
			return seatLess(members[a], members[b])
		})
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total > groups[b].Total
	})
	return groups
}

func seatLess(a, b model.Passenger) bool {
	switch {
	case !a.HasSeat():
		return false
	case !b.HasSeat():
		return true
	}
	return *a.SeatNumber < *b.SeatNumber
}
