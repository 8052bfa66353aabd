package seating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

func passenger(name string, seat int) model.Passenger {
	p := model.Passenger{Name: name, PaymentStatus: model.StatusPending, Location: model.LocationUnspecified}
	if seat != 0 {
		p.SeatNumber = model.SeatPtr(seat)
	}
	return p
}

func seats(records []model.Passenger) []int {
	out := make([]int, len(records))
	for i, p := range records {
		out[i] = p.Seat()
	}
	return out
}

func TestResolveAssignsFromTheBack(t *testing.T) {
	in := []model.Passenger{
		passenger("a", 1),
		passenger("b", 0),
		passenger("c", 28),
		passenger("d", 0),
		passenger("e", 0),
	}

	out, err := NewResolver().Resolve(in)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 27, 28, 26, 25}, seats(out))
	assert.False(t, out[0].IsTemporaryAssignment)
	assert.True(t, out[1].IsTemporaryAssignment)
	assert.False(t, out[2].IsTemporaryAssignment)
	assert.True(t, out[3].IsTemporaryAssignment)
	assert.True(t, out[4].IsTemporaryAssignment)
}

func TestResolveDoesNotModifyInput(t *testing.T) {
	in := []model.Passenger{passenger("a", 3), passenger("b", 0)}

	out, err := NewResolver().Resolve(in)
	require.NoError(t, err)

	assert.Nil(t, in[1].SeatNumber)
	assert.False(t, in[1].IsTemporaryAssignment)
	*out[0].SeatNumber = 9
	assert.Equal(t, 3, *in[0].SeatNumber)
}

func TestResolveExample(t *testing.T) {
	in := []model.Passenger{
		{OrderNumber: 1, Name: "Kim", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(1)},
		{OrderNumber: 2, Name: "Lee", PaymentStatus: model.StatusPending, Location: model.LocationSadang},
	}

	out, err := NewResolver().Resolve(in)
	require.NoError(t, err)
	assert.Equal(t, 1, out[0].Seat())
	assert.False(t, out[0].IsTemporaryAssignment)
	assert.Equal(t, 28, out[1].Seat())
	assert.True(t, out[1].IsTemporaryAssignment)
}

func TestResolveInvalidSeat(t *testing.T) {
	in := []model.Passenger{passenger("a", 29), passenger("b", 2), passenger("c", -1), passenger("d", 0)}

	out, err := NewResolver().Resolve(in)
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, ErrInvalidSeatNumber))
	assert.False(t, errors.Is(err, ErrDuplicateSeatNumber))
	assert.Equal(t, []int{29, -1}, OffendingSeats(err))
	assert.Nil(t, in[3].SeatNumber)
}

func TestResolveDuplicateSeat(t *testing.T) {
	in := []model.Passenger{
		passenger("a", 1),
		passenger("b", 1),
		passenger("c", 5),
		passenger("d", 5),
		passenger("e", 1),
		passenger("f", 0),
	}

	_, err := NewResolver().Resolve(in)
	require.Error(t, err)

	var dup *DuplicateSeatNumberError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, []int{1, 5}, dup.Seats)
	assert.EqualError(t, err, "duplicate seat number: 1, 5")
	assert.Nil(t, in[5].SeatNumber)
}

func TestResolveInvalidBeforeDuplicate(t *testing.T) {
	_, err := NewResolver().Resolve([]model.Passenger{passenger("a", 1), passenger("b", 1), passenger("c", 40)})
	assert.ErrorIs(t, err, ErrInvalidSeatNumber)
}

func TestResolveRunsOutOfSeats(t *testing.T) {
	in := make([]model.Passenger, 0, model.SeatCapacity+2)
	in = append(in, passenger("fixed", 10))
	for i := 0; i < model.SeatCapacity+1; i++ {
		in = append(in, passenger("open", 0))
	}

	out, err := NewResolver().Resolve(in)
	require.NoError(t, err)

	assigned := map[int]bool{}
	for _, p := range out {
		if p.HasSeat() {
			assert.False(t, assigned[p.Seat()], "seat %d assigned twice", p.Seat())
			assigned[p.Seat()] = true
		}
	}
	assert.Len(t, assigned, model.SeatCapacity)
	assert.Nil(t, out[len(out)-2].SeatNumber)
	assert.Nil(t, out[len(out)-1].SeatNumber)
	assert.False(t, out[len(out)-1].IsTemporaryAssignment)
	assert.Equal(t, 1, out[len(out)-3].Seat())
}

func TestResolveIsIdempotent(t *testing.T) {
	in := []model.Passenger{passenger("a", 4), passenger("b", 0), passenger("c", 0)}

	first, err := NewResolver().Resolve(in)
	require.NoError(t, err)
	second, err := NewResolver().Resolve(first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveEmpty(t *testing.T) {
	out, err := NewResolver().Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
