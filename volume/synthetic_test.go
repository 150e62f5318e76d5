// Package volume_test - synthetic volume source tests
package volume_test

import (
	"context"
	"testing"

	"roadcost/core/types"
	"roadcost/volume"
)

func TestSyntheticDeterministic(t *testing.T) {
	src := volume.NewSynthetic()

	first, err := src.Volumes(context.Background(), "HWY-2095", "ALT-B")
	if err != nil {
		t.Fatalf("Volumes failed: %v", err)
	}
	second, err := src.Volumes(context.Background(), "HWY-2095", "ALT-B")
	if err != nil {
		t.Fatalf("Volumes failed: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("interval counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("interval %d differs between identical requests", i)
		}
	}
}

func TestSyntheticDistinctAlignments(t *testing.T) {
	src := volume.NewSynthetic()

	a, err := src.Volumes(context.Background(), "HWY-2095", "ALT-A")
	if err != nil {
		t.Fatalf("Volumes failed: %v", err)
	}
	b, err := src.Volumes(context.Background(), "HWY-2095", "ALT-B")
	if err != nil {
		t.Fatalf("Volumes failed: %v", err)
	}

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different alignments produced identical volume data")
	}
}

func TestSyntheticIntervalsAreValid(t *testing.T) {
	src := volume.NewSynthetic()

	intervals, err := src.Volumes(context.Background(), "HWY-2095", "ALT-B")
	if err != nil {
		t.Fatalf("Volumes failed: %v", err)
	}
	if len(intervals) != 20 {
		t.Errorf("expected 20 intervals for a 1 km alignment, got %d", len(intervals))
	}
	if err := types.ValidateIntervals(intervals); err != nil {
		t.Errorf("generated intervals fail validation: %v", err)
	}

	// Contiguous 50 m stationing
	for i, iv := range intervals {
		if iv.StationEnd-iv.StationStart != 50 {
			t.Errorf("interval %d is not 50 m: %+v", i, iv)
		}
		if i > 0 && iv.StationStart != intervals[i-1].StationEnd {
			t.Errorf("interval %d is not contiguous with its predecessor", i)
		}
	}
}
