package rank

import (
	"math"

	"github.com/pkg/errors"

	"github.com/alishahwee/pagerank/corpus"
)

const defaultTolerance = 0.001

// Config holds the tunables of the iterative estimator.
type Config struct {
	// Damping is the probability of following a link over teleporting.
	Damping float64

	// Tolerance is the maximum allowed per-page change between two
	// passes before the fixed point is considered reached. Zero means
	// the default of 0.001.
	Tolerance float64

	// MaxIterations caps the number of passes; zero means unbounded,
	// matching the classical formulation. With a positive cap, a run
	// that has not settled by then fails with ErrNoConvergence.
	MaxIterations int
}

// Iterate solves the PageRank fixed point by power iteration with the
// default tolerance and no iteration cap.
func Iterate(g corpus.Graph, damping float64) (Distribution, error) {
	return IterateWithConfig(g, Config{Damping: damping})
}

// IterateWithConfig repeatedly applies the PageRank recurrence
//
//	rank(p) = (1-d)/N + d * sum over in-neighbors i of rank(i)/|out(i)|
//
// until every page's rank moves by no more than the tolerance in a
// full pass. It operates on its own copy of the graph: dangling pages
// are repaired in the copy to link to every page in the corpus, so
// the caller's graph is never mutated and concurrent calls sharing
// one graph never observe each other's repairs.
func IterateWithConfig(g corpus.Graph, cfg Config) (Distribution, error) {
	n := len(g)
	if n == 0 {
		return nil, errors.Wrap(ErrEmptyCorpus, "iterative estimator")
	}

	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	work := g.Clone()
	pages := work.Pages()

	// repair sinks once: a dangling page is treated as linking to
	// every page in the corpus, itself included
	for _, p := range pages {
		if len(work[p]) == 0 {
			all := make(map[corpus.Page]struct{}, n)
			for _, q := range pages {
				all[q] = struct{}{}
			}
			work[p] = all
		}
	}

	ranks := make(Distribution, n)
	for _, p := range pages {
		ranks[p] = 1 / float64(n)
	}

	base := (1 - cfg.Damping) / float64(n)
	for pass := 1; ; pass++ {
		next := make(Distribution, n)
		for _, p := range pages {
			var mass float64
			for _, in := range pages {
				if _, ok := work[in][p]; ok {
					mass += ranks[in] / float64(len(work[in]))
				}
			}
			next[p] = base + cfg.Damping*mass
		}

		converged := true
		for _, p := range pages {
			if math.Abs(next[p]-ranks[p]) > tolerance {
				converged = false
				break
			}
		}

		ranks = next
		if converged {
			return ranks, nil
		}
		if cfg.MaxIterations > 0 && pass >= cfg.MaxIterations {
			return nil, errors.Wrapf(ErrNoConvergence, "after %d passes", pass)
		}
	}
}
