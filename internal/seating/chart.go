package seating

import "github.com/iliyamo/bus-seat-roster/internal/model"

// SeatView is one seat of the bus chart.  Unoccupied seats carry only
// the seat number.
type SeatView struct {
	Seat        int                 `json:"seat"`
	Occupied    bool                `json:"occupied"`
	Name        string              `json:"name,omitempty"`
	Status      model.PaymentStatus `json:"status,omitempty"`
	Location    model.Location      `json:"location,omitempty"`
	Temporary   bool                `json:"temporary,omitempty"`
	Color       string              `json:"color,omitempty"`
	BorderColor string              `json:"border_color,omitempty"`
}

// Chart lays records out over seats 1..SeatCapacity.  colors may be nil,
// in which case no colours are filled in.
func Chart(records []model.Passenger, colors *ColorAssigner) []SeatView {
	chart := make([]SeatView, model.SeatCapacity)
	for i := range chart {
		chart[i].Seat = i + 1
	}
	for _, p := range records {
		if !p.HasSeat() || p.Seat() < 1 || p.Seat() > model.SeatCapacity {
			continue
		}
		v := &chart[p.Seat()-1]
		v.Occupied = true
		v.Name = p.Name
		v.Status = p.PaymentStatus
		v.Location = p.Location
		v.Temporary = p.IsTemporaryAssignment
		if colors != nil {
			v.Color = colors.Color(p.Location)
			v.BorderColor = Darken(v.Color, 20)
		}
	}
	return chart
}
