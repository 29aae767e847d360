package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tmorvan/statesim/internal/country"
	"github.com/tmorvan/statesim/internal/loader"
	"github.com/tmorvan/statesim/internal/models"
	"github.com/tmorvan/statesim/internal/policy"
	"github.com/tmorvan/statesim/internal/sim"
	"github.com/tmorvan/statesim/internal/telemetry"
)

var (
	topologyFile string
	days         int
	dbPath       string
	seed         int64
	policyName   string
	quiet        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statesim",
		Short: "Closed-economy state simulation",
		Long: `A closed-economy simulation of states, buildings and goods markets,
driven day by day by a pluggable action policy.`,
		Run: runSim,
	}

	rootCmd.Flags().StringVarP(&topologyFile, "topology", "t", "", "Path to YAML topology file (random country if omitted)")
	rootCmd.Flags().IntVarP(&days, "days", "n", 365, "Number of days to simulate")
	rootCmd.Flags().StringVarP(&dbPath, "db", "o", "", "Path to SQLite telemetry database (disabled if omitted)")
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", 42, "Random seed for sampling and the random policy")
	rootCmd.Flags().StringVarP(&policyName, "policy", "p", "random", "Policy to drive the run (random, expander)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSim(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  State Economy Simulator  │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	logLevel := slog.LevelInfo
	if quiet {
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	catalog := models.DefaultCatalog()
	rng := rand.New(rand.NewSource(seed))

	var c *country.Country
	var err error
	if topologyFile != "" {
		c, err = loader.LoadCountry(topologyFile, catalog)
		if err != nil {
			color.Red("Error loading topology: %v", err)
			os.Exit(1)
		}
		if !quiet {
			infoColor.Printf("📄 Loaded topology from %s\n", topologyFile)
		}
	} else {
		c, err = loader.RandomCountry("C1", rng, catalog)
		if err != nil {
			color.Red("Error sampling country: %v", err)
			os.Exit(1)
		}
		if !quiet {
			infoColor.Printf("🎲 Sampled random country (seed %d)\n", seed)
		}
	}

	pol, ok := policy.ByName(policyName, seed)
	if !ok {
		color.Red("Unknown policy %q (want random or expander)", policyName)
		os.Exit(1)
	}

	var sink *telemetry.DB
	if dbPath != "" {
		sink, err = telemetry.Open(dbPath)
		if err != nil {
			color.Red("Error opening telemetry db: %v", err)
			os.Exit(1)
		}
		defer sink.Close()
	}

	if !quiet {
		infoColor.Printf("🏛️  %d states, policy %s, %d days\n\n", len(c.States()), pol.Name(), days)
		printBuildings(c)
	}

	runner := sim.NewRunner(c, sim.Config{
		Days:      days,
		Policy:    pol,
		Telemetry: sink,
		Logger:    logger,
	})

	score, err := runner.Run()
	if err != nil {
		color.Red("Run failed: %v", err)
		os.Exit(1)
	}

	if !quiet {
		fmt.Println()
		printPrices(c)
		fmt.Println()
		printBuildings(c)
	}

	successColor.Printf("\n✓ Simulated %d days\n", days)
	successColor.Printf("✓ Final score: %s\n", humanize.CommafWithDigits(score, 2))
	if sink != nil {
		infoColor.Printf("📦 Telemetry run %s written to %s\n", runner.RunID(), dbPath)
	}
}

func printPrices(c *country.Country) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"State", "Good", "Base", "Price", "Stock"}),
	)

	for _, state := range c.States() {
		for _, good := range models.AllGoodTypes() {
			p, ok := state.Ledger[good]
			if !ok {
				continue
			}
			row := []string{
				state.ID,
				formatName(string(good)),
				fmt.Sprintf("%.2f", p.BasePrice),
				fmt.Sprintf("%.2f", p.LocalPrice),
				humanize.CommafWithDigits(p.Quantity, 1),
			}
			_ = table.Append(row)
		}
	}

	_ = table.Render()
}

func printBuildings(c *country.Country) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"State", "Building", "Level", "Method", "Penalty", "Cash"}),
	)

	for _, state := range c.States() {
		for _, b := range state.Buildings {
			row := []string{
				state.ID,
				b.Name,
				fmt.Sprintf("%d/%d", b.Level, b.MaxLevel),
				formatName(b.ActiveMethod()),
				fmt.Sprintf("%.2f", b.ShortagePenalty),
				humanize.CommafWithDigits(b.CashReserve, 2),
			}
			_ = table.Append(row)
		}
	}

	_ = table.Render()
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
