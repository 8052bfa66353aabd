package roster

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

// Parser converts roster text into passengers using a Vocabulary.  A
// Parser holds no state between calls and is safe for concurrent use as
// long as its Vocabulary is not modified.
type Parser struct {
	vocab *Vocabulary
}

// NewParser returns a Parser for vocab.  A nil vocab selects
// DefaultVocabulary.
func NewParser(vocab *Vocabulary) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Parser{vocab: vocab}
}

// Vocabulary returns the tables the parser matches against.
func (p *Parser) Vocabulary() *Vocabulary { return p.vocab }

// Parse splits text into lines and returns the passengers found, in
// input order.  Noise and unparseable lines contribute nothing.
func (p *Parser) Parse(text string) []model.Passenger {
	// Hangul pasted from some clients arrives decomposed (NFD) and would
	// never match the keyword tables.
	text = norm.NFC.String(text)

	var out []model.Passenger
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || p.vocab.IsNoise(line) {
			continue
		}
		if passenger, ok := p.vocab.ParseLine(line); ok {
			out = append(out, passenger)
		}
	}
	return out
}
