// Package queue defines message payloads exchanged over the message broker.
package queue

// RosterCommittedQueue is the durable queue roster events are published to.
const RosterCommittedQueue = "roster.committed"

// RosterCommittedEvent is published after a roster replaces the previous
// one.  It carries the headline numbers so consumers can log or notify
// without reading the roster back.
type RosterCommittedEvent struct {
	RosterID             string         `json:"roster_id"`
	Passengers           int            `json:"passengers"`
	Paid                 int            `json:"paid"`
	Pending              int            `json:"pending"`
	TemporaryAssignments int            `json:"temporary_assignments"`
	UnassignedPassengers int            `json:"unassigned_passengers"`
	EmptySeats           int            `json:"empty_seats"`
	ByLocation           map[string]int `json:"by_location"`
	CommittedAt          string         `json:"committed_at"`
}
