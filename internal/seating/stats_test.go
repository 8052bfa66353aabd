package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

func rider(name string, loc model.Location, status model.PaymentStatus, seat int, temp bool) model.Passenger {
	p := model.Passenger{Name: name, Location: loc, PaymentStatus: status, IsTemporaryAssignment: temp}
	if seat != 0 {
		p.SeatNumber = model.SeatPtr(seat)
	}
	return p
}

func sampleRoster() []model.Passenger {
	return []model.Passenger{
		rider("a", model.LocationYangjae, model.StatusPaid, 1, false),
		rider("b", model.LocationSadang, model.StatusPending, 3, false),
		rider("c", model.LocationSadang, model.StatusPaid, 28, true),
		rider("d", model.LocationYangjae, model.StatusPaid, 0, false),
		rider("e", model.LocationSadang, model.StatusPaid, 2, false),
		rider("f", model.LocationBokjeong, model.StatusPending, 27, true),
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(sampleRoster())

	assert.Equal(t, Summary{
		Total:                6,
		Paid:                 4,
		Pending:              2,
		ConfirmedSeats:       3,
		TemporaryAssignments: 2,
		UnassignedPassengers: 1,
		EmptySeats:           23,
	}, got)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{EmptySeats: model.SeatCapacity}, Summarize(nil))
}

func TestLocationBreakdown(t *testing.T) {
	got := LocationBreakdown(sampleRoster())

	assert.Equal(t, []LocationStats{
		{Location: model.LocationSadang, Total: 3, Paid: 2, Pending: 1},
		{Location: model.LocationYangjae, Total: 2, Paid: 2, Pending: 0},
		{Location: model.LocationBokjeong, Total: 1, Paid: 0, Pending: 1},
	}, got)
}

func TestGroupByLocation(t *testing.T) {
	groups := GroupByLocation(sampleRoster())
	require.Len(t, groups, 3)

	names := func(g LocationGroup) []string {
		out := make([]string, len(g.Passengers))
		for i, p := range g.Passengers {
			out[i] = p.Name
		}
		return out
	}

	assert.Equal(t, model.LocationSadang, groups[0].Location)
	assert.Equal(t, []string{"e", "b", "c"}, names(groups[0]))
	assert.Equal(t, model.LocationYangjae, groups[1].Location)
	assert.Equal(t, []string{"a", "d"}, names(groups[1]))
	assert.Equal(t, []string{"f"}, names(groups[2]))
}

func TestGroupByLocationTiesKeepFirstSeen(t *testing.T) {
	groups := GroupByLocation([]model.Passenger{
		rider("a", model.LocationJukjeon, model.StatusPaid, 0, false),
		rider("b", model.LocationSingal, model.StatusPaid, 0, false),
		rider("c", model.LocationUnspecified, model.StatusPaid, 0, false),
		rider("d", model.LocationJukjeon, model.StatusPaid, 0, false),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, model.LocationJukjeon, groups[0].Location)
	assert.Equal(t, model.LocationSingal, groups[1].Location)
	assert.Equal(t, model.LocationUnspecified, groups[2].Location)
	assert.Equal(t, "a", groups[0].Passengers[0].Name)
	assert.Equal(t, "d", groups[0].Passengers[1].Name)
}
