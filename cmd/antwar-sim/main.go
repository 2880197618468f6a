package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/daniacca/antwar/internal/antwar"
)

func main() {
	var (
		configFile = flag.String("config-file", "", "path to a config JSON file (optional, defaults apply)")
		ticks      = flag.Int("ticks", 1000, "number of ticks to run")
		seed       = flag.Int64("seed", 0, "random seed override (0 keeps the config's seed)")
		asymmetric = flag.Bool("asymmetric", false, "enable asymmetric mode (double red power, extra blue spawn)")
		csvOut     = flag.String("csv", "", "path to write the statistics report as CSV (optional)")
	)
	flag.Parse()

	cfg := antwar.DefaultConfig()
	if *configFile != "" {
		loaded, err := loadConfigFromFile(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *asymmetric {
		cfg.Asymmetric = true
	}

	world, err := antwar.NewWorld(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building world: %v\n", err)
		os.Exit(1)
	}

	collector := antwar.NewStatsCollector()
	for i := 0; i < *ticks; i++ {
		collector.Record(world.Step())
	}

	printSummary(world, collector)

	if *csvOut != "" {
		if err := writeCSVReport(collector, *csvOut); err != nil {
			fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Statistics written to %s\n", *csvOut)
	}
}

func loadConfigFromFile(path string) (antwar.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return antwar.Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := antwar.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return antwar.Config{}, fmt.Errorf("parsing config JSON: %w", err)
	}

	if err := antwar.ValidateConfig(cfg); err != nil {
		return antwar.Config{}, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func printSummary(world *antwar.World, collector *antwar.StatsCollector) {
	rows := collector.Cumulative()
	fmt.Printf("Simulation finished (grid=%dx%d, ticks=%d, seed=%d)\n",
		world.Config().GridSize, world.Config().GridSize, world.Tick(), world.Config().Seed)
	if len(rows) == 0 {
		return
	}
	last := rows[len(rows)-1]
	fmt.Printf("  red:  population=%d eaten=%d deaths=%d\n", last.RedPopulation, last.RedEaten, last.RedDeaths)
	fmt.Printf("  blue: population=%d eaten=%d deaths=%d\n", last.BluePopulation, last.BlueEaten, last.BlueDeaths)
}

func writeCSVReport(collector *antwar.StatsCollector, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()
	return collector.WriteCSV(f)
}
