package seating

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeatNumber and ErrDuplicateSeatNumber classify resolver
// failures.  Use errors.Is to test for them and errors.As to get the
// offending seats.
var (
	ErrInvalidSeatNumber   = errors.New("invalid seat number")
	ErrDuplicateSeatNumber = errors.New("duplicate seat number")
)

// InvalidSeatNumberError lists seat numbers outside 1..SeatCapacity, in
// roster order.
type InvalidSeatNumberError struct {
	Seats []int
}

func (e *InvalidSeatNumberError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidSeatNumber, joinSeats(e.Seats))
}

func (e *InvalidSeatNumberError) Is(target error) bool { return target == ErrInvalidSeatNumber }

// DuplicateSeatNumberError lists each seat number claimed by more than
// one passenger, once, in the order the duplicates were found.
type DuplicateSeatNumberError struct {
	Seats []int
}

func (e *DuplicateSeatNumberError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDuplicateSeatNumber, joinSeats(e.Seats))
}

func (e *DuplicateSeatNumberError) Is(target error) bool { return target == ErrDuplicateSeatNumber }

// OffendingSeats returns the seats carried by a resolver error, or nil.
func OffendingSeats(err error) []int {
	var inv *InvalidSeatNumberError
	if errors.As(err, &inv) {
		return inv.Seats
	}
	var dup *DuplicateSeatNumberError
	if errors.As(err, &dup) {
		return dup.Seats
	}
	return nil
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}
