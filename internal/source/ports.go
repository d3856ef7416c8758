package source

import (
	"context"

	"liftreport/internal/core"
)

// Ports for inbound set readers.
type (
	// SetReader returns every logged set the source holds. Year filtering
	// belongs to the aggregator, not the source.
	SetReader interface {
		ListSets(ctx context.Context) ([]core.Set, error)
	}
)
