// Package seating validates seat requests, fills in missing seats and
// derives the per-location statistics, grouped passenger lists and seat
// chart shown to organisers.
package seating

import "github.com/iliyamo/bus-seat-roster/internal/model"

// Resolver checks seat numbers and assigns seats to passengers who did
// not ask for one.  Free seats are handed out from the back of the bus
// (highest number) forward.
type Resolver struct {
	capacity int
}

// NewResolver returns a Resolver for a bus with model.SeatCapacity seats.
func NewResolver() *Resolver {
	return &Resolver{capacity: model.SeatCapacity}
}

// Resolve validates records and returns a copy in which every passenger
// without a seat has been given one, as far as free seats allow.  Records
// left without a seat when the bus is full keep a nil SeatNumber.
//
// Resolve never modifies records.  On error the returned slice is nil and
// the error is an *InvalidSeatNumberError or *DuplicateSeatNumberError.
func (r *Resolver) Resolve(records []model.Passenger) ([]model.Passenger, error) {
	var invalid []int
	for _, p := range records {
		if p.SeatNumber != nil && (*p.SeatNumber < 1 || *p.SeatNumber > r.capacity) {
			invalid = append(invalid, *p.SeatNumber)
		}
	}
	if len(invalid) > 0 {
		return nil, &InvalidSeatNumberError{Seats: invalid}
	}

	occupied := make(map[int]bool, len(records))
	reported := make(map[int]bool)
	var dups []int
	for _, p := range records {
		if p.SeatNumber == nil {
			continue
		}
		seat := *p.SeatNumber
		if occupied[seat] {
			if !reported[seat] {
				reported[seat] = true
				dups = append(dups, seat)
			}
			continue
		}
		occupied[seat] = true
	}
	if len(dups) > 0 {
		return nil, &DuplicateSeatNumberError{Seats: dups}
	}

	free := make([]int, 0, r.capacity)
	for seat := r.capacity; seat >= 1; seat-- {
		if !occupied[seat] {
			free = append(free, seat)
		}
	}

	out := make([]model.Passenger, len(records))
	next := 0
	for i, p := range records {
		if p.SeatNumber != nil {
			seat := *p.SeatNumber // don't share the caller's pointer
			p.SeatNumber = &seat
		} else if next < len(free) {
			seat := free[next]
			next++
			p.SeatNumber = &seat
			p.IsTemporaryAssignment = true
		}
		out[i] = p
	}
	return out, nil
}
