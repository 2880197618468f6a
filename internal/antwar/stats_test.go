package antwar

import (
	"strings"
	"testing"
)

func TestStatsCollector_RecordAndRows(t *testing.T) {
	c := NewStatsCollector()
	if c.Len() != 0 {
		t.Errorf("Expected empty collector, got %d rows", c.Len())
	}

	c.Record(TickStats{Tick: 1, RedPopulation: 1, BluePopulation: 1, RedEaten: 1})
	c.Record(TickStats{Tick: 2, RedPopulation: 2, BluePopulation: 1, BlueDeaths: 1})

	rows := c.Rows()
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].RedEaten != 1 || rows[1].BlueDeaths != 1 {
		t.Error("Rows lost per-tick values")
	}

	// Rows hands out a copy.
	rows[0].Tick = 99
	if c.Rows()[0].Tick != 1 {
		t.Error("Mutating a returned row leaked into the collector")
	}
}

func TestStatsCollector_Cumulative(t *testing.T) {
	c := NewStatsCollector()
	c.Record(TickStats{Tick: 1, RedPopulation: 3, RedEaten: 1, BlueEaten: 2, RedDeaths: 1})
	c.Record(TickStats{Tick: 2, RedPopulation: 4, RedEaten: 2, BlueDeaths: 1})
	c.Record(TickStats{Tick: 3, RedPopulation: 2, BlueEaten: 1, RedDeaths: 2})

	cum := c.Cumulative()
	want := []TickStats{
		{Tick: 1, RedPopulation: 3, RedEaten: 1, BlueEaten: 2, RedDeaths: 1},
		{Tick: 2, RedPopulation: 4, RedEaten: 3, BlueEaten: 2, RedDeaths: 1, BlueDeaths: 1},
		{Tick: 3, RedPopulation: 2, RedEaten: 3, BlueEaten: 3, RedDeaths: 3, BlueDeaths: 1},
	}
	for i, w := range want {
		if cum[i] != w {
			t.Errorf("Cumulative row %d = %+v, want %+v", i, cum[i], w)
		}
	}

	// The raw rows stay per-tick.
	if c.Rows()[1].RedEaten != 2 {
		t.Error("Cumulative aggregation mutated the raw rows")
	}
}

func TestStatsCollector_WriteCSV(t *testing.T) {
	c := NewStatsCollector()
	c.Record(TickStats{Tick: 1, RedPopulation: 1, BluePopulation: 2, RedEaten: 1})
	c.Record(TickStats{Tick: 2, RedPopulation: 1, BluePopulation: 2, RedEaten: 1, BlueDeaths: 1})

	var sb strings.Builder
	if err := c.WriteCSV(&sb); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Time,Population_R,Population_B,CumEaten_R,CumEaten_B,CumDeaths_R,CumDeaths_B" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "1,1,2,1,0,0,0" {
		t.Errorf("Unexpected first row: %q", lines[1])
	}
	if lines[2] != "2,1,2,2,0,0,1" {
		t.Errorf("Unexpected second row: %q", lines[2])
	}
}
