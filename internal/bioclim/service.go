// Package bioclim fetches the 19 WorldClim bioclimatic variables for a list
// of named points and assembles them into one result table, one row per
// point, in input order.
package bioclim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"easy-bioclim/internal/config"
	"easy-bioclim/internal/metrics"
	"easy-bioclim/internal/providers/worldclim"
	"easy-bioclim/internal/types"

	"golang.org/x/sync/errgroup"
)

// VariableProvider resolves the bioclim variables at a single coordinate.
type VariableProvider interface {
	GetBioPoint(ctx context.Context, latitude, longitude float64) (*worldclim.BioPointAPIResponse, error)
}

// Service builds a bioclim result table for an ordered point list.
type Service interface {
	BuildTable(ctx context.Context, points []types.Point) (*ResultTable, error)
}

type bioclimService struct {
	provider VariableProvider
	cfg      *config.Config
	logger   *slog.Logger
}

// NewBioclimService creates a new bioclim service against the configured
// WorldClim sampler endpoint.
func NewBioclimService(cfg *config.Config, logger *slog.Logger) Service {
	client := worldclim.NewClientWithBaseURL(logger, cfg.Provider.BaseURL)
	return NewBioclimServiceWithProvider(client, cfg, logger)
}

// NewBioclimServiceWithProvider creates a new bioclim service with a custom
// provider. This is useful for testing with mock providers.
func NewBioclimServiceWithProvider(
	provider VariableProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &bioclimService{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With("component", "bioclim-service"),
	}
}

// BuildTable fetches a variable vector for every point and zips points and
// vectors into a table. Fetches run concurrently up to the configured limit,
// each writing into its own input-index slot, so row order always matches
// input order. A failed fetch fills its slot with an all-missing vector and
// never aborts the run.
func (s *bioclimService) BuildTable(ctx context.Context, points []types.Point) (*ResultTable, error) {
	vectors := make([]VariableVector, len(points))

	concurrency := s.cfg.App.FetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	g := errgroup.Group{}
	g.SetLimit(concurrency)

	for i, point := range points {
		i, point := i, point
		g.Go(func() error {
			// Fetch failures land in the slot, not in the group error:
			// one point must never abort the others.
			vectors[i] = s.fetchOne(ctx, point)
			return nil
		})
	}

	// No goroutine returns an error, but Wait is still the barrier.
	_ = g.Wait()

	if len(vectors) != len(points) {
		return nil, fmt.Errorf("internal error: %d vectors for %d points", len(vectors), len(points))
	}

	table := &ResultTable{
		Rows: make([]ResultRow, len(points)),
	}
	for i, point := range points {
		table.Rows[i] = ResultRow{
			Name:       point.Name,
			Longitude:  point.Coordinates.Longitude,
			Latitude:   point.Coordinates.Latitude,
			Variables:  vectors[i].Values,
			FetchError: vectors[i].FetchError,
		}
		if vectors[i].FetchError != "" {
			table.Warnings = append(table.Warnings,
				fmt.Sprintf("%s: %s", point.Name, vectors[i].FetchError))
		}
	}

	metrics.TablesBuiltTotal.Inc()

	return table, nil
}

// fetchOne queries the provider for a single point under the configured
// per-fetch deadline. Any failure, including deadline expiry, degrades to an
// all-missing vector with the reason recorded.
func (s *bioclimService) fetchOne(ctx context.Context, point types.Point) VariableVector {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout())
	defer cancel()

	start := time.Now()
	resp, err := s.provider.GetBioPoint(fetchCtx, point.Coordinates.Latitude, point.Coordinates.Longitude)
	metrics.BioFetchLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.BioFetchesTotal.WithLabelValues("error").Inc()
		s.logger.Warn("bioclim fetch failed",
			"point", point.Name,
			"latitude", point.Coordinates.Latitude,
			"longitude", point.Coordinates.Longitude,
			"error", err,
		)
		return NewMissingVector(err.Error())
	}

	metrics.BioFetchesTotal.WithLabelValues("ok").Inc()

	return translateBioPoint(resp)
}

// translateBioPoint converts a sampler response to a vector keyed by the
// canonical 19 codes. Codes the sampler omitted, and null readings, both
// become missing values.
func translateBioPoint(resp *worldclim.BioPointAPIResponse) VariableVector {
	if resp == nil {
		return NewMissingVector("sampler response is nil")
	}

	values := make(map[string]*float64, len(types.BioVariables))
	for _, v := range types.BioVariables {
		values[v.Code] = resp.Values[v.Code]
	}

	return VariableVector{Values: values}
}
