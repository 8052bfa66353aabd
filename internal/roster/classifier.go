package roster

import (
	"regexp"
	"strings"
)

var (
	accountNumberRe = regexp.MustCompile(`\d{4}[\s-]?\d{2}[\s-]?\d{7}`)
	priceRe         = regexp.MustCompile(`\d+만원`)
	dateHeaderRe    = regexp.MustCompile(`^\d+/\d+[,\s]*[월화수목금토일]?\)`)
	orderPrefixRe   = regexp.MustCompile(`^\d+\.`)
)

// IsNoise reports whether line is not a passenger record.  Roster posts
// mix passenger lines with trip headers, itinerary bullets, links and
// bank details; only lines starting with "<n>." survive.  Checks run in
// a fixed priority order and the first hit wins.
func (v *Vocabulary) IsNoise(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return true
	case strings.HasPrefix(line, "("), // "(10/25토) 설악산 천불동"
		strings.HasPrefix(line, "*"), // "* 소공원 ~ 천당폭포 왕복"
		strings.HasPrefix(line, "-"), // "- 14km/6.5h"
		strings.HasPrefix(line, "+"):
		return true
	case strings.Contains(line, "http"), containsAny(line, v.VideoTerms):
		return true
	case containsAny(line, v.AccountTerms), accountNumberRe.MatchString(line):
		return true
	case containsAny(line, v.BoardingMarkers), priceRe.MatchString(line):
		return true
	case dateHeaderRe.MatchString(line):
		return true
	case !orderPrefixRe.MatchString(line):
		return true
	}
	return false
}
