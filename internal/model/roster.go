package model

import "time"

// Roster is a committed set of passengers.  A roster is created by a
// single parse-and-resolve pass and is replaced as a whole by the next
// successful commit; it is never edited in place.
//
// Fields:
//
//	ID         – UUID assigned when the roster is committed.
//	Passengers – passengers in input order.
//	CreatedAt  – commit timestamp (UTC).
type Roster struct {
	ID         string      `json:"id"`
	Passengers []Passenger `json:"passengers"`
	CreatedAt  time.Time   `json:"created_at"`
}
