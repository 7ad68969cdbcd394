package telemetry

import (
	"math"
	"testing"
)

func TestComputeMassStats(t *testing.T) {
	values := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	mean, std, p10, p50, p90, maxMass := ComputeMassStats(values)

	if math.Abs(mean-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", mean)
	}
	// Sample standard deviation of 1..10
	if math.Abs(std-3.0277) > 0.001 {
		t.Errorf("std = %v, want ~3.0277", std)
	}
	if p10 != 1 || p50 != 5 || p90 != 9 {
		t.Errorf("percentiles = (%v, %v, %v), want (1, 5, 9)", p10, p50, p90)
	}
	if maxMass != 10 {
		t.Errorf("max = %v, want 10", maxMass)
	}
	// Input must not be reordered
	if values[0] != 10 {
		t.Error("ComputeMassStats sorted its input in place")
	}
}

func TestComputeMassStatsSmall(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantMax  float64
	}{
		{"empty slice", nil, 0, 0},
		{"single agent", []float64{20}, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, _, _, _, maxMass := ComputeMassStats(tt.values)
			if mean != tt.wantMean || maxMass != tt.wantMax {
				t.Errorf("mean, max = %v, %v, want %v, %v", mean, maxMass, tt.wantMean, tt.wantMax)
			}
			if std != 0 {
				t.Errorf("std = %v, want 0", std)
			}
		})
	}
}

func TestTeamRecords(t *testing.T) {
	pop := Population{
		TeamMasses: []float64{30, 0, 10},
		TeamCounts: []int{2, 0, 1},
	}

	records := TeamRecords(600, pop)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Share != 0.75 || records[2].Share != 0.25 {
		t.Errorf("shares = %v, %v, want 0.75, 0.25", records[0].Share, records[2].Share)
	}
	if records[1].Count != 0 || records[1].Mass != 0 {
		t.Errorf("eliminated team record = %+v", records[1])
	}
	for _, r := range records {
		if r.WindowEnd != 600 {
			t.Errorf("team %d window end = %d, want 600", r.Team, r.WindowEnd)
		}
	}
}
