package seating

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// DefaultPalette is the fixed set of location colours, used in order.
var DefaultPalette = []string{
	"#e74c3c", "#3498db", "#2ecc71", "#f39c12", "#9b59b6", "#1abc9c", "#e67e22",
	"#34495e", "#e91e63", "#00bcd4", "#8bc34a", "#ff5722", "#795548", "#607d8b",
}

// FallbackColor is used for locations that have no colour yet.
const FallbackColor = "#3498db"

// ColorAssigner remembers the colour given to each location.  Colours are
// handed out in the order locations are first seen and are never taken
// back until Reset, so a location keeps its colour across re-parses.
// A ColorAssigner is not safe for concurrent use.
type ColorAssigner struct {
	palette []string
	colors  map[model.Location]string
	order   []model.Location
}

// NewColorAssigner returns an assigner cycling through palette, or
// DefaultPalette when palette is empty.
func NewColorAssigner(palette []string) *ColorAssigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorAssigner{palette: palette, colors: make(map[model.Location]string)}
}

// Assign gives a colour to every location in records that has none yet.
func (a *ColorAssigner) Assign(records []model.Passenger) {
	for _, p := range records {
		if _, ok := a.colors[p.Location]; ok {
			continue
		}
		a.colors[p.Location] = a.palette[len(a.order)%len(a.palette)]
		a.order = append(a.order, p.Location)
	}
}

// Color returns the colour of loc, or FallbackColor.
func (a *ColorAssigner) Color(loc model.Location) string {
	if c, ok := a.colors[loc]; ok {
		return c
	}
	return FallbackColor
}

// LocationColor is one legend entry.
type LocationColor struct {
	Location model.Location `json:"location"`
	Color    string         `json:"color"`
}

// Legend lists assigned colours in assignment order.
func (a *ColorAssigner) Legend() []LocationColor {
	out := make([]LocationColor, len(a.order))
	for i, loc := range a.order {
		out[i] = LocationColor{Location: loc, Color: a.colors[loc]}
	}
	return out
}

// Clone returns an independent copy, for previews that must not claim
// colours.
func (a *ColorAssigner) Clone() *ColorAssigner {
	cp := &ColorAssigner{
		palette: a.palette,
		colors:  make(map[model.Location]string, len(a.colors)),
		order:   append([]model.Location(nil), a.order...),
	}
	for k, v := range a.colors {
		cp.colors[k] = v
	}
	return cp
}

// Reset forgets every assignment.
func (a *ColorAssigner) Reset() {
	a.colors = make(map[model.Location]string)
	a.order = nil
}

// Darken lowers each RGB channel of a "#rrggbb" colour by percent of 255,
// clamping at 0.  Malformed input is returned unchanged.
func Darken(color string, percent float64) string {
	hex := strings.TrimPrefix(color, "#")
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color
	}
	amt := int(2.55*percent + 0.5)
	clamp := func(c int) int {
		switch {
		case c < 0:
			return 0
		case c > 255:
			return 255
		}
		return c
	}
	r := clamp(int(n>>16) - amt)
	g := clamp(int(n>>8&0xff) - amt)
	b := clamp(int(n&0xff) - amt)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
