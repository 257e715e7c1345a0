package util

import (
	"math"
	"testing"
)

func TestNewStats(t *testing.T) {
	stats := NewStats([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if stats.Mean != 5 {
		t.Errorf("Expected mean 5, got %v", stats.Mean)
	}
	if stats.Min != 2 || stats.Max != 9 {
		t.Errorf("Expected min 2 / max 9, got %v / %v", stats.Min, stats.Max)
	}
	if math.Abs(stats.StdDeviation-2) > 1e-9 {
		t.Errorf("Expected std deviation 2, got %v", stats.StdDeviation)
	}
}

func TestNewStatsEmpty(t *testing.T) {
	stats := NewStats(nil)
	if stats.Mean != 0 || stats.Min != 0 || stats.Max != 0 {
		t.Errorf("Expected zero stats for empty input, got %+v", stats)
	}
}

func TestDistributionQuality(t *testing.T) {
	perfect := NewDistributionStats([]float64{100, 100, 100, 100})
	if perfect.DistributionQuality != 1 {
		t.Errorf("Expected quality 1 for a perfect spread, got %v", perfect.DistributionQuality)
	}

	skewed := NewDistributionStats([]float64{400, 0, 0, 0})
	if skewed.DistributionQuality >= perfect.DistributionQuality {
		t.Errorf("Expected a skewed spread to score below a perfect one, got %v",
			skewed.DistributionQuality)
	}
}
