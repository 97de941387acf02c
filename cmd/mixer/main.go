package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/napolitain/mix-solver/internal/config"
	"github.com/napolitain/mix-solver/internal/loader"
	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
	"github.com/napolitain/mix-solver/internal/solver/multi"
	"github.com/napolitain/mix-solver/internal/solver/single"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "mixer",
		Short: "Mix Profit Optimizer",
		Long: `A branch-and-bound solver that finds the most profitable
sequence of ingredients to mix into a base substance.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String(config.KeyCatalog, "", "Path to a custom catalog (.json or .yaml)")
	rootCmd.PersistentFlags().BoolP(config.KeyVerbose, "v", false, "Log search statistics to stderr")
	rootCmd.PersistentFlags().Bool(config.KeyJSON, false, "Print results as JSON")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the best sequence for one substance",
		RunE:  runOptimize,
	}
	addSearchFlags(optimizeCmd)

	multiCmd := &cobra.Command{
		Use:   "multi",
		Short: "Find one shared sequence for several substances",
		RunE:  runMulti,
	}
	addSearchFlags(multiCmd)

	applyCmd := &cobra.Command{
		Use:   "apply [ingredient...]",
		Short: "Mix an explicit ingredient sequence and show each step",
		RunE:  runApply,
	}
	applyCmd.Flags().StringSliceP(config.KeySubstance, "s", []string{string(models.OGKush)}, "Base substance")

	catalogCmd := &cobra.Command{
		Use:       "catalog [effects|ingredients|substances]",
		Short:     "List catalog tables",
		ValidArgs: []string{"effects", "ingredients", "substances"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE:      runCatalog,
	}
	catalogCmd.Flags().String("export", "", "Write the catalog to stdout in this format (json or yaml)")

	rootCmd.AddCommand(optimizeCmd, multiCmd, applyCmd, catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP(config.KeySubstance, "s", []string{string(models.OGKush)}, "Base substance (repeat for multi)")
	cmd.Flags().IntP(config.KeySteps, "n", config.DefaultMaxSteps, "Number of ingredients to mix")
	cmd.Flags().Float64P(config.KeyBudget, "b", 0, "Maximum total ingredient cost (unlimited if unset)")
	cmd.Flags().Float64P(config.KeyMinAddiction, "a", 0, "Minimum addiction percentage (none if unset)")
	cmd.Flags().StringSliceP(config.KeyIngredients, "i", nil, "Allowed ingredients (default: all)")
}

// setup loads config and the catalog shared by every command
func setup(cmd *cobra.Command) (*config.Config, *mixer.Mixer, error) {
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	catalog := models.DefaultCatalog()
	if cfg.CatalogFile != "" {
		catalog, err = loader.LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, nil, err
		}
	}
	return cfg, mixer.New(catalog), nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Substances) > 1 {
		color.Yellow("Warning: optimize uses only the first substance; use 'multi' for shared sequences")
	}

	runID := uuid.New()
	log := newLogger(cfg.Verbose, runID)

	opt := single.NewOptimizer(m, single.WithLogger(log))
	result, err := opt.FindOptimalMix(single.Options{
		Substance:    cfg.Substances[0],
		MaxSteps:     cfg.MaxSteps,
		Ingredients:  cfg.Ingredients,
		Budget:       cfg.Budget,
		MinAddiction: cfg.MinAddiction,
	})
	if err != nil {
		return err
	}

	if cfg.JSON {
		return printJSON(runID, result)
	}
	printBanner("Single-Target Optimizer", runID)
	printSteps(m, result.Substance, result.Sequence)
	printResult(result)
	return nil
}

func runMulti(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}

	runID := uuid.New()
	log := newLogger(cfg.Verbose, runID)

	opt := multi.NewOptimizer(m, multi.WithLogger(log))
	result, err := opt.FindOptimalMix(multi.Options{
		Substances:   cfg.Substances,
		MaxSteps:     cfg.MaxSteps,
		Ingredients:  cfg.Ingredients,
		Budget:       cfg.Budget,
		MinAddiction: cfg.MinAddiction,
	})
	if err != nil {
		return err
	}

	if cfg.JSON {
		return printJSON(runID, result)
	}
	printBanner("Multi-Target Optimizer", runID)
	printMultiResult(result)
	return nil
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}

	ids := make([]models.IngredientID, len(args))
	for i, a := range args {
		ids[i] = models.IngredientID(a)
	}

	state, err := m.ApplySequence(cfg.Substances[0], ids)
	if err != nil {
		return err
	}
	result := models.NewOptimizationResult(state)

	runID := uuid.New()
	if cfg.JSON {
		return printJSON(runID, result)
	}
	printBanner("Mix Sequence", runID)
	printSteps(m, state.Substance, state.Sequence)
	printResult(result)
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, m, err := setup(cmd)
	if err != nil {
		return err
	}
	catalog, ok := m.Catalog().(*models.Catalog)
	if !ok {
		return fmt.Errorf("catalog listing needs a *models.Catalog")
	}

	if format, _ := cmd.Flags().GetString("export"); format != "" {
		data, err := loader.ExportCatalog(catalog, loader.Format(format))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	table := "all"
	if len(args) == 1 {
		table = args[0]
	}

	if cfg.JSON {
		data, err := loader.ExportCatalog(catalog, loader.FormatJSON)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if table == "all" || table == "effects" {
		printEffects(catalog)
	}
	if table == "all" || table == "ingredients" {
		printIngredients(catalog)
	}
	if table == "all" || table == "substances" {
		printSubstances(catalog)
	}
	return nil
}

func printJSON(runID uuid.UUID, result any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		RunID  string `json:"run_id"`
		Result any    `json:"result"`
	}{runID.String(), result})
}
