// Package roster turns free-text, chat-pasted passenger rosters into
// passenger records.  Lines are first classified (noise or candidate),
// then candidate lines are parsed by recognising the fields inside the
// parenthesised info blob by their shape and vocabulary rather than by
// position.  Lines that cannot be understood are dropped without error.
package roster

import (
	"strings"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// LocationName maps a boarding-point name as typed in rosters to its
// location code.
type LocationName struct {
	Location model.Location `yaml:"location" json:"location" validate:"required,oneof=SADANG YANGJAE JUKJEON SINGAL BOKJEONG"`
	Name     string         `yaml:"name" json:"name" validate:"required"`
}

// Vocabulary holds the keyword tables used to classify lines and tokens.
// All matching is substring matching on NFC-normalised text.
type Vocabulary struct {
	// UnassignedSeat marks a token as "no seat preference".
	UnassignedSeat []string `yaml:"unassigned_seat" json:"unassigned_seat" validate:"required,dive,required"`
	// Paid and Pending are the payment-status vocabularies.  Paid wins
	// when a token contains words from both.
	Paid    []string `yaml:"paid" json:"paid" validate:"required,dive,required"`
	Pending []string `yaml:"pending" json:"pending" validate:"required,dive,required"`
	// Locations are checked in order; the first contained name wins.
	Locations []LocationName `yaml:"locations" json:"locations" validate:"required,dive"`
	// UnspecifiedLabel is the display name for LocationUnspecified.
	UnspecifiedLabel string `yaml:"unspecified_label" json:"unspecified_label" validate:"required"`

	// Noise-line vocabularies.
	VideoTerms      []string `yaml:"video_terms" json:"video_terms" validate:"dive,required"`
	AccountTerms    []string `yaml:"account_terms" json:"account_terms" validate:"dive,required"`
	BoardingMarkers []string `yaml:"boarding_markers" json:"boarding_markers" validate:"dive,required"`
}

// DefaultVocabulary returns the built-in keyword tables.  Each call
// returns a fresh copy that the caller may modify.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		UnassignedSeat: []string{
			"미정", "미배정",
			"아무곳", "아무데", "아무대",
			"상관없",
			"맘대로", "마음대로",
			"임의", "임의배정",
			"없음",
			"^^", "?", "x", "X",
		},
		Paid:    []string{"입완", "입금완료", "완료", "입금됨", "결제완료"},
		Pending: []string{"예정", "입금예정", "미입금", "대기", "예약"},
		Locations: []LocationName{
			{Location: model.LocationSadang, Name: "사당"},
			{Location: model.LocationYangjae, Name: "양재"},
			{Location: model.LocationJukjeon, Name: "죽전"},
			{Location: model.LocationSingal, Name: "신갈"},
			{Location: model.LocationBokjeong, Name: "복정"},
		},
		UnspecifiedLabel: "미지정",
		VideoTerms:       []string{"youtu.be", "youtube.com", "YouTube", "유튜브"},
		AccountTerms:     []string{"카뱅", "계좌"},
		BoardingMarkers:  []string{"탑승(", "탑승지"},
	}
}

// LocationLabel returns the roster name of loc.
func (v *Vocabulary) LocationLabel(loc model.Location) string {
	for _, l := range v.Locations {
		if l.Location == loc {
			return l.Name
		}
	}
	if loc == model.LocationUnspecified {
		return v.UnspecifiedLabel
	}
	return string(loc)
}

// matchLocation returns the first location whose name occurs in token.
func (v *Vocabulary) matchLocation(token string) (model.Location, bool) {
	for _, l := range v.Locations {
		if strings.Contains(token, l.Name) {
			return l.Location, true
		}
	}
	return model.LocationUnspecified, false
}

func (v *Vocabulary) isUnassignedSeat(token string) bool {
	return containsAny(token, v.UnassignedSeat)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
