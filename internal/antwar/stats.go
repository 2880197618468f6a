package antwar

import (
	"encoding/csv"
	"fmt"
	"io"
)

// TickStats are the six scalars recorded after every tick. Eaten and death
// counts are per-tick; cumulative aggregation is the collector's job.
type TickStats struct {
	Tick           int `json:"tick"`
	RedPopulation  int `json:"red_population"`
	BluePopulation int `json:"blue_population"`
	RedEaten       int `json:"red_eaten"`
	BlueEaten      int `json:"blue_eaten"`
	RedDeaths      int `json:"red_deaths"`
	BlueDeaths     int `json:"blue_deaths"`
}

// StatsCollector accumulates per-tick rows and turns them into the run's
// tabular report.
type StatsCollector struct {
	rows []TickStats
}

// NewStatsCollector creates an empty collector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

// Record appends one tick's statistics.
func (c *StatsCollector) Record(ts TickStats) {
	c.rows = append(c.rows, ts)
}

// Len returns the number of recorded ticks.
func (c *StatsCollector) Len() int {
	return len(c.rows)
}

// Rows returns a copy of the raw per-tick rows.
func (c *StatsCollector) Rows() []TickStats {
	out := make([]TickStats, len(c.rows))
	copy(out, c.rows)
	return out
}

// Cumulative returns the rows with eaten and death columns converted to
// running totals; populations stay per-tick.
func (c *StatsCollector) Cumulative() []TickStats {
	out := make([]TickStats, len(c.rows))
	var redEaten, blueEaten, redDeaths, blueDeaths int
	for i, r := range c.rows {
		redEaten += r.RedEaten
		blueEaten += r.BlueEaten
		redDeaths += r.RedDeaths
		blueDeaths += r.BlueDeaths
		r.RedEaten = redEaten
		r.BlueEaten = blueEaten
		r.RedDeaths = redDeaths
		r.BlueDeaths = blueDeaths
		out[i] = r
	}
	return out
}

// WriteCSV writes the cumulative report as CSV with a header row.
func (c *StatsCollector) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"Time", "Population_R", "Population_B", "CumEaten_R", "CumEaten_B", "CumDeaths_R", "CumDeaths_B"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing stats header: %w", err)
	}
	for _, r := range c.Cumulative() {
		row := []string{
			fmt.Sprintf("%d", r.Tick),
			fmt.Sprintf("%d", r.RedPopulation),
			fmt.Sprintf("%d", r.BluePopulation),
			fmt.Sprintf("%d", r.RedEaten),
			fmt.Sprintf("%d", r.BlueEaten),
			fmt.Sprintf("%d", r.RedDeaths),
			fmt.Sprintf("%d", r.BlueDeaths),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing stats row %d: %w", r.Tick, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
