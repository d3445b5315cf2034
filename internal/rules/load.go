package rules

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tabuflow/convert-core/constants"
)

// overlay mirrors the YAML override file. All fields are optional; absent
// fields keep their compiled-in defaults.
type overlay struct {
	Keywords   map[string][]string `yaml:"keywords"`
	IDKeywords []string            `yaml:"id_keywords"`
	Pricing    struct {
		PerPage          map[string]float64 `yaml:"per_page"`
		Default          *float64           `yaml:"default"`
		PremiumThreshold *float64           `yaml:"premium_threshold"`
	} `yaml:"pricing"`
	TwoColumn []string `yaml:"two_column"`
	SheetFix  []string `yaml:"sheet_fix"`
}

// Load returns the default rule set, overlaid with the YAML file at path when
// path is non-empty. The file is schema-validated before merging.
func Load(path string, logger *slog.Logger) (*Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := Defaults()
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}
	if err := validateAgainstSchema(BuildOverlaySchema(), doc); err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}

	var ov overlay
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("decode rules file: %w", err)
	}
	s.merge(ov, logger)
	logger.Info("rules overlay applied", "path", path)
	return s, nil
}

func (s *Set) merge(ov overlay, logger *slog.Logger) {
	for label, words := range ov.Keywords {
		cat, ok := constants.ParseCategory(label)
		if !ok {
			logger.Warn("rules overlay: unknown category in keywords", "label", label)
			continue
		}
		s.Keywords[cat] = words
	}
	if len(ov.IDKeywords) > 0 {
		s.IDKeywords = ov.IDKeywords
	}
	for tier, rate := range ov.Pricing.PerPage {
		s.Pricing.PerPage[tier] = rate
	}
	if ov.Pricing.Default != nil {
		s.Pricing.DefaultPerPage = *ov.Pricing.Default
	}
	if ov.Pricing.PremiumThreshold != nil {
		s.Pricing.PremiumThreshold = *ov.Pricing.PremiumThreshold
	}
	if ov.TwoColumn != nil {
		s.TwoColumn = categoryTable(ov.TwoColumn, "two_column", logger)
	}
	if ov.SheetFix != nil {
		s.SheetFix = categoryTable(ov.SheetFix, "sheet_fix", logger)
	}
}

func categoryTable(labels []string, field string, logger *slog.Logger) map[constants.DocumentCategory]bool {
	table := make(map[constants.DocumentCategory]bool, len(labels))
	for _, label := range labels {
		cat, ok := constants.ParseCategory(label)
		if !ok {
			logger.Warn("rules overlay: unknown category", "field", field, "label", label)
			continue
		}
		table[cat] = true
	}
	return table
}

// validateAgainstSchema validates a decoded YAML document against schemaMap.
// The document is round-tripped through JSON so the validator sees canonical
// types (yaml.v3 produces map[string]any/int, jsonschema expects json.Unmarshal shapes).
func validateAgainstSchema(schemaMap map[string]any, doc any) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rules.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("rules.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	db, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal rules: %w", err)
	}
	var v any
	if err := json.Unmarshal(db, &v); err != nil {
		return fmt.Errorf("unmarshal rules: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("rules do not match schema: %w", err)
	}
	return nil
}
