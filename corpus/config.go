// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/epigraphia/liberalitas/classify"
	"github.com/epigraphia/liberalitas/utils/textutils"
)

// Config carries the external configuration of one pipeline run: the gap
// repair rules, the classifier reference lists, and the word-frequency
// stopwords. All of it is data, replaceable without touching pipeline code.
type Config struct {
	Repairs   []RepairRule       `yaml:"repairs"`
	Reference classify.Reference `yaml:"reference"`
	Stopwords []string           `yaml:"stopwords"`
}

// DefaultConfig returns the configuration shipped for the liberalitas EDH
// export: the two known rows whose modern find spot must fall back to the
// ancient one, the women-related reference lists, and a small Latin stopword
// set.
func DefaultConfig() Config {
	return Config{
		Repairs: []RepairRule{
			{Row: 29, Target: ColModernSpot, Fallback: ColAncientSpot},
			{Row: 67, Target: ColModernSpot, Fallback: ColAncientSpot},
		},
		Reference: classify.Reference{
			CatalogIDs: []string{
				"HD006870",
				"HD032311",
				"CIL 11, 01421",
				"CIL 14, 00350",
			},
			NamePhrases: []string{
				"Agusiae Priscillae",
				"Caelia Macrina",
				"Iuliae Memmiae",
				"Salvia Marcellina",
				"Ummidia Quadratilla",
				"Eumachia",
				"Fabiae Agrippinae",
			},
		},
		Stopwords: []string{
			"qui", "quae", "quod", "cum", "sunt", "esse", "eius",
			"atque", "item", "sibi", "suis", "idem", "sua", "ita",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// StopwordSet returns the stopwords as a folded lookup set.
func (c Config) StopwordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Stopwords))

	for _, word := range c.Stopwords {
		folded := textutils.LowerASCIIFolding(word)
		if folded != "" {
			set[folded] = struct{}{}
		}
	}

	return set
}
