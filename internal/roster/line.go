package roster

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

var (
	// "12. 홍길동(입완, 양재, 3)"
	recordRe = regexp.MustCompile(`^(\d+)\.\s*([^(]+)\(([^)]+)\)`)
	// "12." with nothing after it: an empty slot in the sign-up list.
	emptySlotRe = regexp.MustCompile(`^\d+\.\s*$`)
	// "12. 홍길동" with no info blob.
	nameOnlyRe = regexp.MustCompile(`^(\d+)\.\s*([^\s(]+)$`)

	tokenSplitRe = regexp.MustCompile(`[,.\s]+`)
	seatTokenRe  = regexp.MustCompile(`^(\d+)\D*$`)
)

// ParseLine extracts a passenger from a line that IsNoise accepted.  The
// second result is false when the line does not describe a passenger.
func (v *Vocabulary) ParseLine(line string) (model.Passenger, bool) {
	line = strings.TrimSpace(line)

	if m := recordRe.FindStringSubmatch(line); m != nil {
		order, err := strconv.Atoi(m[1])
		name := strings.TrimSpace(m[2])
		if err != nil || name == "" {
			return model.Passenger{}, false
		}
		p := newPassenger(order, name)
		v.applyInfo(&p, m[3])
		return p, true
	}

	if emptySlotRe.MatchString(line) {
		return model.Passenger{}, false
	}

	if m := nameOnlyRe.FindStringSubmatch(line); m != nil {
		order, err := strconv.Atoi(m[1])
		if err != nil {
			return model.Passenger{}, false
		}
		return newPassenger(order, m[2]), true
	}
	return model.Passenger{}, false
}

func newPassenger(order int, name string) model.Passenger {
	return model.Passenger{
		OrderNumber:   order,
		Name:          name,
		PaymentStatus: model.StatusPending,
		Location:      model.LocationUnspecified,
	}
}

// applyInfo classifies every token of the info blob.  People write the
// fields in any order, so each token is recognised by what it looks like.
// A field is only ever set by the first token that qualifies for it.
func (v *Vocabulary) applyInfo(p *model.Passenger, info string) {
	statusSet := false
	for _, tok := range tokenSplitRe.Split(info, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		if v.isUnassignedSeat(tok) {
			continue
		}

		if p.SeatNumber == nil {
			if m := seatTokenRe.FindStringSubmatch(tok); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= model.SeatCapacity {
					p.SeatNumber = &n
					continue
				}
			}
		}

		if p.Location == model.LocationUnspecified {
			if loc, ok := v.matchLocation(tok); ok {
				p.Location = loc
				continue
			}
		}

		if v.IsStatusKeyword(tok) {
			if !statusSet {
				p.PaymentStatus = v.NormalizeStatus(tok)
				statusSet = true
			}
			continue
		}
		// anything else is an annotation we don't understand
	}
}
