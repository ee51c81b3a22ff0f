package namegen

import (
	_ "embed"
	"fmt"
	"strings"
)

// Bundled corpora, one name per line. Loaded once at generator
// construction and never modified afterwards.
var (
	//go:embed data/male_first_names.txt
	maleFirstNamesRaw string

	//go:embed data/female_first_names.txt
	femaleFirstNamesRaw string

	//go:embed data/last_names.txt
	lastNamesRaw string
)

// corpus holds the three immutable name lists shared by all draws.
type corpus struct {
	maleFirstNames   []string
	femaleFirstNames []string
	lastNames        []string
}

// loadCorpus parses the embedded corpora and validates the non-empty
// invariant each list must satisfy for generation to be infallible.
func loadCorpus() (*corpus, error) {
	male, err := parseNameList(maleFirstNamesRaw)
	if err != nil {
		return nil, fmt.Errorf("male first names: %w", err)
	}

	female, err := parseNameList(femaleFirstNamesRaw)
	if err != nil {
		return nil, fmt.Errorf("female first names: %w", err)
	}

	last, err := parseNameList(lastNamesRaw)
	if err != nil {
		return nil, fmt.Errorf("last names: %w", err)
	}

	return &corpus{
		maleFirstNames:   male,
		femaleFirstNames: female,
		lastNames:        last,
	}, nil
}

// parseNameList splits raw line-delimited data into a trimmed list,
// skipping blank lines.
func parseNameList(raw string) ([]string, error) {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, ErrEmptyCorpus
	}
	return names, nil
}

// firstNames returns the first-name pool for the given gender. The caller
// guarantees gender validity.
func (c *corpus) firstNames(gender Gender) []string {
	if gender == Female {
		return c.femaleFirstNames
	}
	return c.maleFirstNames
}
