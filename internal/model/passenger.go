package model

// SeatCapacity is the number of numbered seats on the bus.  Seats are
// numbered 1..SeatCapacity; higher numbers are towards the rear.
const SeatCapacity = 28

// PaymentStatus is the deposit state of a passenger.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusPending PaymentStatus = "PENDING"
)

// Location is a boarding point.  The set is closed; UNSPECIFIED is the
// default for passengers whose line names no known boarding point.
type Location string

const (
	LocationSadang      Location = "SADANG"
	LocationYangjae     Location = "YANGJAE"
	LocationJukjeon     Location = "JUKJEON"
	LocationSingal      Location = "SINGAL"
	LocationBokjeong    Location = "BOKJEONG"
	LocationUnspecified Location = "UNSPECIFIED"
)

// Locations lists every boarding point in route order, UNSPECIFIED last.
var Locations = []Location{
	LocationSadang,
	LocationYangjae,
	LocationJukjeon,
	LocationSingal,
	LocationBokjeong,
	LocationUnspecified,
}

// Passenger is a single parsed roster entry.
//
// Fields:
//
//	OrderNumber           – number the roster line started with; display only.
//	Name                  – trimmed passenger name.
//	PaymentStatus         – PAID or PENDING.
//	Location              – boarding point.
//	SeatNumber            – nil until a seat is known.
//	IsTemporaryAssignment – true when the seat was auto-assigned rather
//	                        than requested in the roster text.
type Passenger struct {
	OrderNumber           int           `json:"order_number"`
	Name                  string        `json:"name"`
	PaymentStatus         PaymentStatus `json:"payment_status"`
	Location              Location      `json:"location"`
	SeatNumber            *int          `json:"seat_number"`
	IsTemporaryAssignment bool          `json:"is_temporary_assignment"`
}

// HasSeat reports whether the passenger has a seat number.
func (p Passenger) HasSeat() bool { return p.SeatNumber != nil }

// Seat returns the seat number or 0 when none is set.
func (p Passenger) Seat() int {
	if p.SeatNumber == nil {
		return 0
	}
	return *p.SeatNumber
}

// IsPaid reports whether the deposit has been received.
func (p Passenger) IsPaid() bool { return p.PaymentStatus == StatusPaid }

// SeatPtr returns a pointer to n, for building passengers with a seat.
func SeatPtr(n int) *int { return &n }
