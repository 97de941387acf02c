// Package config resolves run settings from defaults, a config file,
// MIXER_* environment variables and command-line flags, in rising priority.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/napolitain/mix-solver/internal/models"
)

// Keys double as flag names
const (
	KeySubstance    = "substance"
	KeySteps        = "steps"
	KeyBudget       = "budget"
	KeyMinAddiction = "min-addiction"
	KeyIngredients  = "ingredients"
	KeyCatalog      = "catalog"
	KeyVerbose      = "verbose"
	KeyJSON         = "json"

	EnvPrefix = "MIXER"
)

// DefaultMaxSteps is the search depth used when none is configured
const DefaultMaxSteps = 5

// Config holds everything one CLI run needs
type Config struct {
	Substances   []models.SubstanceID
	MaxSteps     int
	Budget       *float64
	MinAddiction *float64
	Ingredients  []models.IngredientID
	CatalogFile  string
	Verbose      bool
	JSON         bool
}

// DefaultConfig returns the configuration used with no file, env or flags
func DefaultConfig() *Config {
	return &Config{
		Substances: []models.SubstanceID{models.OGKush},
		MaxSteps:   DefaultMaxSteps,
	}
}

// Load merges defaults, the optional config file, environment and flags.
// fs may be nil; file may be empty.
func Load(fs *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault(KeySubstance, []string{string(def.Substances[0])})
	v.SetDefault(KeySteps, def.MaxSteps)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		MaxSteps:    v.GetInt(KeySteps),
		CatalogFile: v.GetString(KeyCatalog),
		Verbose:     v.GetBool(KeyVerbose),
		JSON:        v.GetBool(KeyJSON),
	}

	for _, s := range splitList(v.GetStringSlice(KeySubstance)) {
		cfg.Substances = append(cfg.Substances, models.SubstanceID(s))
	}
	for _, s := range splitList(v.GetStringSlice(KeyIngredients)) {
		cfg.Ingredients = append(cfg.Ingredients, models.IngredientID(s))
	}

	if v.IsSet(KeyBudget) {
		b := v.GetFloat64(KeyBudget)
		cfg.Budget = &b
	}
	if v.IsSet(KeyMinAddiction) {
		m := v.GetFloat64(KeyMinAddiction)
		cfg.MinAddiction = &m
	}

	return cfg, nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	if len(c.Substances) == 0 {
		return &models.ValidationError{Field: KeySubstance, Message: "at least one base substance required"}
	}
	if c.MaxSteps < 0 {
		return &models.ValidationError{Field: KeySteps, Message: "must be non-negative"}
	}
	if c.Budget != nil && *c.Budget < 0 {
		return &models.ValidationError{Field: KeyBudget, Message: "must be non-negative"}
	}
	if c.MinAddiction != nil && (*c.MinAddiction < 0 || *c.MinAddiction > models.MaxAddiction) {
		return &models.ValidationError{Field: KeyMinAddiction, Message: "must be within [0,100]"}
	}
	return nil
}

// splitList flattens entries that hold several comma or space separated values,
// as environment variables do
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.FieldsFunc(item, func(r rune) bool {
			return r == ',' || r == ' '
		}) {
			out = append(out, part)
		}
	}
	return out
}
