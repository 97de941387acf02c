package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/mix-solver/internal/models"
)

// Format is a catalog file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// CatalogJSON represents the file structure for a catalog.
// Tables are lists so the definition order survives a round trip.
type CatalogJSON struct {
	Effects     []EffectJSON     `json:"effects" yaml:"effects"`
	Ingredients []IngredientJSON `json:"ingredients" yaml:"ingredients"`
	Substances  []SubstanceJSON  `json:"substances" yaml:"substances"`
}

// EffectJSON represents one effect entry
type EffectJSON struct {
	ID         string  `json:"id" yaml:"id"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
	Addiction  float64 `json:"addiction,omitempty" yaml:"addiction,omitempty"`
	Category   string  `json:"category,omitempty" yaml:"category,omitempty"`
}

// RuleJSON represents one transformation rule
type RuleJSON struct {
	If   string `json:"if" yaml:"if"`
	Then string `json:"then" yaml:"then"`
}

// IngredientJSON represents one ingredient entry
type IngredientJSON struct {
	ID            string     `json:"id" yaml:"id"`
	Cost          float64    `json:"cost" yaml:"cost"`
	DefaultEffect string     `json:"default_effect" yaml:"default_effect"`
	Rules         []RuleJSON `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// SubstanceJSON represents one substance entry
type SubstanceJSON struct {
	ID             string   `json:"id" yaml:"id"`
	BasePrice      float64  `json:"base_price" yaml:"base_price"`
	InitialEffects []string `json:"initial_effects,omitempty" yaml:"initial_effects,omitempty"`
	Category       string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q", filepath.Ext(path))
	}
}

// LoadCatalog loads and validates a catalog file (.json, .yaml or .yml)
func LoadCatalog(path string) (*models.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	catalog, err := ParseCatalog(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return catalog, nil
}

// ParseCatalog decodes and validates catalog data
func ParseCatalog(data []byte, format Format) (*models.Catalog, error) {
	var raw CatalogJSON

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}

	catalog := raw.toCatalog()
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// ExportCatalog encodes a catalog in the given format
func ExportCatalog(c *models.Catalog, format Format) ([]byte, error) {
	raw := fromCatalog(c)

	switch format {
	case FormatJSON:
		return json.MarshalIndent(raw, "", "  ")
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
}

func (raw *CatalogJSON) toCatalog() *models.Catalog {
	effects := make([]*models.Effect, 0, len(raw.Effects))
	for _, e := range raw.Effects {
		effects = append(effects, &models.Effect{
			ID:         models.EffectID(e.ID),
			Multiplier: e.Multiplier,
			Addiction:  e.Addiction,
			Category:   models.EffectCategory(e.Category),
		})
	}

	ingredients := make([]*models.Ingredient, 0, len(raw.Ingredients))
	for _, i := range raw.Ingredients {
		rules := make([]models.Rule, 0, len(i.Rules))
		for _, r := range i.Rules {
			rules = append(rules, models.Rule{If: models.EffectID(r.If), Then: models.EffectID(r.Then)})
		}
		ingredients = append(ingredients, &models.Ingredient{
			ID:            models.IngredientID(i.ID),
			Cost:          i.Cost,
			DefaultEffect: models.EffectID(i.DefaultEffect),
			Rules:         rules,
		})
	}

	substances := make([]*models.Substance, 0, len(raw.Substances))
	for _, s := range raw.Substances {
		initial := make([]models.EffectID, 0, len(s.InitialEffects))
		for _, e := range s.InitialEffects {
			initial = append(initial, models.EffectID(e))
		}
		substances = append(substances, &models.Substance{
			ID:             models.SubstanceID(s.ID),
			BasePrice:      s.BasePrice,
			InitialEffects: initial,
			Category:       models.SubstanceCategory(s.Category),
		})
	}

	return models.NewCatalog(effects, ingredients, substances)
}

func fromCatalog(c *models.Catalog) *CatalogJSON {
	raw := &CatalogJSON{}

	for _, e := range c.AllEffects() {
		raw.Effects = append(raw.Effects, EffectJSON{
			ID:         string(e.ID),
			Multiplier: e.Multiplier,
			Addiction:  e.Addiction,
			Category:   string(e.Category),
		})
	}

	for _, i := range c.AllIngredients() {
		ij := IngredientJSON{
			ID:            string(i.ID),
			Cost:          i.Cost,
			DefaultEffect: string(i.DefaultEffect),
		}
		for _, r := range i.Rules {
			ij.Rules = append(ij.Rules, RuleJSON{If: string(r.If), Then: string(r.Then)})
		}
		raw.Ingredients = append(raw.Ingredients, ij)
	}

	for _, s := range c.AllSubstances() {
		sj := SubstanceJSON{
			ID:        string(s.ID),
			BasePrice: s.BasePrice,
			Category:  string(s.Category),
		}
		for _, e := range s.InitialEffects {
			sj.InitialEffects = append(sj.InitialEffects, string(e))
		}
		raw.Substances = append(raw.Substances, sj)
	}

	return raw
}
