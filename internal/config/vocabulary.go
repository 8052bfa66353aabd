package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/iliyamo/bus-seat-roster/internal/roster"
)

// LoadVocabulary returns the keyword tables used by the roster parser.  An
// empty path selects the built-in tables.  A YAML file overrides only the
// tables it names; everything else keeps its default.
//
// Example:
//
//	paid: [입완, 입금완료, 완료, 입금됨, 결제완료, 송금완료]
//	locations:
//	  - {location: SADANG, name: 사당}
//	  - {location: YANGJAE, name: 양재}
func LoadVocabulary(path string) (*roster.Vocabulary, error) {
	vocab := roster.DefaultVocabulary()
	if path == "" {
		return vocab, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	if err := yaml.Unmarshal(data, vocab); err != nil {
		return nil, fmt.Errorf("parse vocabulary %s: %w", path, err)
	}
	if err := validator.New().Struct(vocab); err != nil {
		return nil, fmt.Errorf("invalid vocabulary %s: %w", path, err)
	}
	return vocab, nil
}
