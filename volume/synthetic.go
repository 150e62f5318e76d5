package volume

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand"

	"roadcost/core/types"
)

// Roadway geometry used by the synthetic generator: a 7.2 m two-lane
// carriageway with 50/150/250 mm pavement, base and subbase layers.
const (
	roadWidth         = 7.2
	pavementThickness = 0.05
	baseThickness     = 0.15
	subbaseThickness  = 0.25

	defaultLength = 1000.0
	stationStep   = 50.0
)

// Synthetic generates plausible volume data for an alignment. It is a
// stand-in for the 3D model service: output is deterministic per
// project/alignment pair, so repeated estimates for the same alignment
// see identical volumes.
type Synthetic struct{}

// NewSynthetic creates a synthetic volume source
func NewSynthetic() *Synthetic {
	return &Synthetic{}
}

// Volumes implements Source
func (s *Synthetic) Volumes(_ context.Context, projectID, alignmentID string) ([]types.VolumeInterval, error) {
	rng := rand.New(rand.NewSource(seed(projectID, alignmentID)))

	n := int(defaultLength / stationStep)
	intervals := make([]types.VolumeInterval, 0, n)

	for i := 0; i < n; i++ {
		start := float64(i) * stationStep
		end := start + stationStep
		mid := (start + end) / 2

		// Cut/fill follow the difference between a rolling terrain
		// profile and a gentler road profile, plus noise.
		terrain := math.Sin(mid/200)*10 + rng.NormFloat64()*2
		road := math.Sin(mid/300) * 5
		diff := terrain - road

		cut := math.Max(0, diff*20+rng.NormFloat64()*5)
		fill := math.Max(0, -diff*20+rng.NormFloat64()*5)

		intervals = append(intervals, types.VolumeInterval{
			StationStart:   start,
			StationEnd:     end,
			CutVolume:      cut,
			FillVolume:     fill,
			PavementVolume: roadWidth * pavementThickness * stationStep,
			BaseVolume:     roadWidth * baseThickness * stationStep,
			SubbaseVolume:  roadWidth * subbaseThickness * stationStep,
		})
	}

	return intervals, nil
}

func seed(projectID, alignmentID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(projectID))
	h.Write([]byte{0})
	h.Write([]byte(alignmentID))
	return int64(h.Sum64())
}
