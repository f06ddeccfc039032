package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Candidate is a pool item that cleared the validity gate, with its
// score breakdown.
type Candidate struct {
	Item      Item
	Breakdown Breakdown
}

const scoreWorkers = 8

// FindMatches scores newItem against every opposite-type item in pool
// and returns the valid candidates sorted by descending total score.
// Equal scores keep their pool order.
//
// Candidates whose GPS distance exceeds cfg.PrefilterRadiusKm are
// skipped before scoring, but only when both sides carry coordinates.
// Pool assembly (community scoping, self-match and blacklist exclusion)
// is the caller's responsibility.
func FindMatches(ctx context.Context, newItem Item, pool []Item, cfg Config) ([]Candidate, error) {
	results := make([]*Candidate, len(pool))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, cand := range pool {
		i, cand := i, cand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !WithinRadius(newItem, cand, cfg.PrefilterRadiusKm) {
				return nil
			}

			lost, found := orientPair(newItem, cand)
			b := ScoreMatch(lost, found, cfg)
			if IsValidMatch(b, cfg) {
				results[i] = &Candidate{Item: cand, Breakdown: b}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(pool))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Breakdown.TotalScore > out[j].Breakdown.TotalScore
	})
	return out, nil
}

// orientPair fixes the scoring argument order to lost-then-found no
// matter which side triggered the search.
func orientPair(a, b Item) (lost, found Item) {
	if a.Type == ItemTypeFound {
		return b, a
	}
	return a, b
}
