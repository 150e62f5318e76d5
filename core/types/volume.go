package types

import (
	"roadcost/internal/errors"
)

// VolumeInterval carries the earthwork and pavement volumes computed for
// one station interval along an alignment. Intervals are immutable once
// produced by a volume source; the core does not require contiguity
// between consecutive intervals.
type VolumeInterval struct {
	// StationStart is the interval start station in metres
	StationStart float64 `json:"station_start"`

	// StationEnd is the interval end station in metres, > StationStart
	StationEnd float64 `json:"station_end"`

	// CutVolume is earth removed, m³
	CutVolume float64 `json:"cut_volume"`

	// FillVolume is earth added, m³
	FillVolume float64 `json:"fill_volume"`

	// PavementVolume is the asphalt surface course volume, m³
	PavementVolume float64 `json:"pavement_volume"`

	// BaseVolume is the aggregate base course volume, m³
	BaseVolume float64 `json:"base_volume"`

	// SubbaseVolume is the granular subbase volume, m³
	SubbaseVolume float64 `json:"subbase_volume"`
}

// Validate checks the interval against the input contract
func (v VolumeInterval) Validate() error {
	if v.StationEnd <= v.StationStart {
		return errors.Validationf("station_end %.2f must be greater than station_start %.2f", v.StationEnd, v.StationStart)
	}
	for _, vol := range []struct {
		name  string
		value float64
	}{
		{"cut_volume", v.CutVolume},
		{"fill_volume", v.FillVolume},
		{"pavement_volume", v.PavementVolume},
		{"base_volume", v.BaseVolume},
		{"subbase_volume", v.SubbaseVolume},
	} {
		if vol.value < 0 {
			return errors.Validationf("%s must be non-negative, got %.4f", vol.name, vol.value)
		}
	}
	return nil
}

// ValidateIntervals checks every interval in a sequence
func ValidateIntervals(intervals []VolumeInterval) error {
	for i, iv := range intervals {
		if err := iv.Validate(); err != nil {
			if e, ok := err.(*errors.Error); ok {
				return e.WithContext("interval", i)
			}
			return err
		}
	}
	return nil
}
