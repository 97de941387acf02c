package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/mix-solver/internal/mixer"
	"github.com/napolitain/mix-solver/internal/models"
)

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Foreground(lipgloss.Color("6")).
	Bold(true).
	Padding(0, 2)

func printBanner(title string, runID uuid.UUID) {
	fmt.Println()
	fmt.Println(bannerStyle.Render(title + "\n" + lipgloss.NewStyle().Faint(true).Render("run "+runID.String())))
	fmt.Println()
}

// printSteps replays the sequence and shows the mix after every ingredient
func printSteps(m *mixer.Mixer, substance models.SubstanceID, sequence []models.IngredientID) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Ingredient", "Cost", "Effects", "Value", "Profit", "Addiction"}),
	)

	state, err := m.CreateInitialState(substance)
	if err != nil {
		color.Red("Error: %v", err)
		return
	}
	_ = table.Append([]string{
		"0", formatName(string(substance)), "",
		formatEffects(state.Effects),
		fmt.Sprintf("$%.2f", state.Value),
		fmt.Sprintf("$%.2f", state.Profit),
		fmt.Sprintf("%.0f%%", state.Addiction),
	})

	for i, id := range sequence {
		state, err = m.ApplyIngredient(state, id)
		if err != nil {
			color.Red("Error at step %d: %v", i+1, err)
			return
		}
		ing, _ := m.Catalog().Ingredient(id)
		_ = table.Append([]string{
			fmt.Sprintf("%d", i+1),
			formatName(string(id)),
			fmt.Sprintf("$%.2f", ing.Cost),
			formatEffects(state.Effects),
			fmt.Sprintf("$%.2f", state.Value),
			fmt.Sprintf("$%.2f", state.Profit),
			fmt.Sprintf("%.0f%%", state.Addiction),
		})
	}

	_ = table.Render()
}

func printResult(r *models.OptimizationResult) {
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed)

	fmt.Println()
	if !r.ConstraintSatisfied {
		errorColor.Println("❌ No sequence meets the minimum addiction; showing the unmixed substance")
	}
	successColor.Printf("✓ %s: %s\n", formatName(string(r.Substance)), formatSequence(r.Sequence))
	fmt.Printf("   Effects:    %s\n", formatEffects(r.Effects))
	fmt.Printf("   Cost:       $%.2f\n", r.TotalCost)
	fmt.Printf("   Sell price: $%.2f\n", r.SellPrice)
	fmt.Printf("   Profit:     $%.2f (%.1f%% margin)\n", r.Profit, r.ProfitMargin)
	fmt.Printf("   Addiction:  %.0f%%\n", r.Addiction)
	printStats(r.Stats)
}

func printMultiResult(r *models.MultiOptimizationResult) {
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed)

	if !r.ConstraintSatisfied {
		errorColor.Println("❌ No shared sequence meets the minimum addiction for every substance")
	}
	successColor.Printf("✓ Shared sequence: %s\n\n", formatSequence(r.Sequence))

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Substance", "Effects", "Sell Price", "Profit", "Margin", "Addiction"}),
	)
	for _, sr := range r.Results {
		_ = table.Append([]string{
			formatName(string(sr.Substance)),
			formatEffects(sr.Effects),
			fmt.Sprintf("$%.2f", sr.SellPrice),
			fmt.Sprintf("$%.2f", sr.Profit),
			fmt.Sprintf("%.1f%%", sr.ProfitMargin),
			fmt.Sprintf("%.0f%%", sr.Addiction),
		})
	}
	_ = table.Render()

	fmt.Println("\n📊 Combined:")
	fmt.Printf("   Shared cost:      $%.2f\n", r.TotalCost)
	fmt.Printf("   Total sell price: $%.2f\n", r.TotalSellPrice)
	fmt.Printf("   Total profit:     $%.2f (%.1f%% margin)\n", r.TotalProfit, r.AverageProfitMargin)
	printStats(r.Stats)
}

func printStats(s models.SearchStats) {
	if s.Nodes == 0 {
		return
	}
	infoColor := color.New(color.FgYellow)
	infoColor.Printf("\n🔎 Searched %d nodes (%d leaves), pruned %d by bound and %d as dominated\n",
		s.Nodes, s.Leaves, s.BoundPrunes, s.MemoPrunes)
}

func printEffects(c *models.Catalog) {
	color.New(color.FgCyan, color.Bold).Println("\n✨ Effects")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Effect", "Multiplier", "Addiction", "Category"}),
	)
	for _, e := range c.AllEffects() {
		_ = table.Append([]string{
			formatName(string(e.ID)),
			fmt.Sprintf("%.2f", e.Multiplier),
			fmt.Sprintf("%.3f", e.Addiction),
			string(e.Category),
		})
	}
	_ = table.Render()
}

func printIngredients(c *models.Catalog) {
	color.New(color.FgCyan, color.Bold).Println("\n🧪 Ingredients")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Ingredient", "Cost", "Default Effect", "Rules"}),
	)
	for _, i := range c.AllIngredients() {
		rules := make([]string, len(i.Rules))
		for n, r := range i.Rules {
			rules[n] = fmt.Sprintf("%s → %s", formatName(string(r.If)), formatName(string(r.Then)))
		}
		_ = table.Append([]string{
			formatName(string(i.ID)),
			fmt.Sprintf("$%.2f", i.Cost),
			formatName(string(i.DefaultEffect)),
			strings.Join(rules, "\n"),
		})
	}
	_ = table.Render()
}

func printSubstances(c *models.Catalog) {
	color.New(color.FgCyan, color.Bold).Println("\n🌿 Substances")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Substance", "Base Price", "Initial Effects", "Category"}),
	)
	for _, s := range c.AllSubstances() {
		_ = table.Append([]string{
			formatName(string(s.ID)),
			fmt.Sprintf("$%.2f", s.BasePrice),
			formatEffects(s.InitialEffects),
			string(s.Category),
		})
	}
	_ = table.Render()
}

func formatSequence(ids []models.IngredientID) string {
	if len(ids) == 0 {
		return "(nothing mixed)"
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = formatName(string(id))
	}
	return strings.Join(names, " → ")
}

func formatEffects(ids []models.EffectID) string {
	if len(ids) == 0 {
		return "-"
	}
	names := make([]string, len(ids))
	for i, id := range mixer.SortedEffects(ids) {
		names[i] = formatName(string(id))
	}
	return strings.Join(names, ", ")
}

func formatName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	words := strings.Fields(name)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
