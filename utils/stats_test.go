package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 10, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.TotalGenerations != 1 || s.Changed != 10 {
		t.Fatalf("first update: %+v", s)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 200, 5, 0)
	if math.Abs(s.AveragePopulation-110) > 1e-9 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.Population != 200 {
		t.Fatalf("Population = %d, want 200", s.Population)
	}
}
