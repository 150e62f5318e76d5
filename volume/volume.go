// Package volume defines the volume-source boundary and a synthetic
// stand-in for the 3D model service.
package volume

import (
	"context"

	"roadcost/core/types"
)

// Source supplies the volume intervals computed for a project alignment.
// Implementations must return a non-empty, station-ordered sequence; the
// core tolerates any station step.
type Source interface {
	// Volumes returns the ordered interval sequence for an alignment
	Volumes(ctx context.Context, projectID, alignmentID string) ([]types.VolumeInterval, error)
}
