package fetch

import (
	"context"

	"github.com/ytget/countries/internal/model"
)

// Fetcher defines the interface for the fetch service.
type Fetcher interface {
	SetUpdateCallback(func(*model.RegionTask))

	// RegionURL returns the endpoint queried for region
	RegionURL(region string) string

	// FetchRegion downloads one region into outputPath
	FetchRegion(ctx context.Context, region, outputPath string) (*model.RegionTask, error)

	// FetchAll downloads every region into dir, one file per region
	FetchAll(ctx context.Context, regions []string, dir string) (*model.FetchRun, error)
}
