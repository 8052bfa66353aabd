package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

func TestMemoryRosterStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryRosterStore()

	_, err := s.Current(ctx)
	assert.ErrorIs(t, err, ErrRosterNotFound)

	r := &model.Roster{
		ID:        "r1",
		CreatedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Passengers: []model.Passenger{
			{OrderNumber: 1, Name: "김진욱", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(1)},
		},
	}
	require.NoError(t, s.Replace(ctx, r))

	// later edits to the caller's copy must not leak into the store
	*r.Passengers[0].SeatNumber = 9
	r.Passengers[0].Name = "changed"

	got, err := s.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, "김진욱", got.Passengers[0].Name)
	assert.Equal(t, 1, got.Passengers[0].Seat())

	require.NoError(t, s.Clear(ctx))
	_, err = s.Current(ctx)
	assert.ErrorIs(t, err, ErrRosterNotFound)
	require.NoError(t, s.Clear(ctx))
}
