package services

import (
	"context"
	"sort"

	"github.com/mrsingh-rishi/job-outreach/internal/domain/models"
	"github.com/mrsingh-rishi/job-outreach/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// CandidateSource is one discovery backend. Discover returns lowercased,
// syntactically valid addresses; a disabled source returns an empty slice and
// a nil error.
type CandidateSource interface {
	Name() string
	Discover(ctx context.Context, profile models.JobProfile) ([]string, error)
}

// Aggregator unions the output of every source. One failing source is logged
// and skipped, never propagated: an all-sources-failed run simply yields an
// empty set, which the caller reports as "no candidates found".
type Aggregator struct {
	sources []CandidateSource
}

func NewAggregator(sources ...CandidateSource) *Aggregator {
	return &Aggregator{sources: sources}
}

func (a *Aggregator) Collect(ctx context.Context, profile models.JobProfile) []string {

	seen := map[string]struct{}{}

	for _, source := range a.sources {
		candidates, err := source.Discover(ctx, profile)
		if err != nil {
			log.WithField("source", source.Name()).
				Errorf("candidate source failed: %v", err)
			continue
		}

		metrics.CandidatesDiscoveredCounter.WithLabelValues(source.Name()).
			Add(float64(len(candidates)))

		for _, candidate := range candidates {
			seen[candidate] = struct{}{}
		}
	}

	merged := make([]string, 0, len(seen))
	for candidate := range seen {
		merged = append(merged, candidate)
	}
	sort.Strings(merged)
	return merged
}
