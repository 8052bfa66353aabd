package seating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

func TestColorAssigner(t *testing.T) {
	a := NewColorAssigner(nil)

	a.Assign(sampleRoster())
	assert.Equal(t, DefaultPalette[0], a.Color(model.LocationYangjae))
	assert.Equal(t, DefaultPalette[1], a.Color(model.LocationSadang))
	assert.Equal(t, DefaultPalette[2], a.Color(model.LocationBokjeong))
	assert.Equal(t, FallbackColor, a.Color(model.LocationSingal))

	// a later roster keeps earlier colours and appends new ones
	a.Assign([]model.Passenger{
		rider("x", model.LocationSingal, model.StatusPaid, 0, false),
		rider("y", model.LocationYangjae, model.StatusPaid, 0, false),
	})
	assert.Equal(t, DefaultPalette[0], a.Color(model.LocationYangjae))
	assert.Equal(t, DefaultPalette[3], a.Color(model.LocationSingal))

	legend := a.Legend()
	require.Len(t, legend, 4)
	assert.Equal(t, LocationColor{Location: model.LocationSingal, Color: DefaultPalette[3]}, legend[3])

	a.Reset()
	assert.Empty(t, a.Legend())
	assert.Equal(t, FallbackColor, a.Color(model.LocationYangjae))
}

func TestColorAssignerCycles(t *testing.T) {
	a := NewColorAssigner([]string{"#111111", "#222222"})
	a.Assign([]model.Passenger{
		rider("a", model.LocationSadang, model.StatusPaid, 0, false),
		rider("b", model.LocationYangjae, model.StatusPaid, 0, false),
		rider("c", model.LocationJukjeon, model.StatusPaid, 0, false),
	})
	assert.Equal(t, "#111111", a.Color(model.LocationJukjeon))
}

func TestDarken(t *testing.T) {
	assert.Equal(t, "#b41909", Darken("#e74c3c", 20))
	assert.Equal(t, "#000000", Darken("#101010", 50))
	assert.Equal(t, "#e74c3c", Darken("#e74c3c", 0))
	assert.Equal(t, "not-a-color", Darken("not-a-color", 20))
}

func TestChart(t *testing.T) {
	colors := NewColorAssigner(nil)
	records := sampleRoster()
	colors.Assign(records)

	chart := Chart(records, colors)
	require.Len(t, chart, model.SeatCapacity)

	assert.Equal(t, SeatView{Seat: 4}, chart[3])

	seat28 := chart[27]
	assert.True(t, seat28.Occupied)
	assert.Equal(t, "c", seat28.Name)
	assert.True(t, seat28.Temporary)
	assert.Equal(t, colors.Color(model.LocationSadang), seat28.Color)
	assert.Equal(t, Darken(seat28.Color, 20), seat28.BorderColor)

	occupied := 0
	for _, v := range chart {
		if v.Occupied {
			occupied++
		}
	}
	assert.Equal(t, 5, occupied)
}
