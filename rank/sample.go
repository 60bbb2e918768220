package rank

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/alishahwee/pagerank/corpus"
)

// Sampler estimates PageRank by simulating a random surfer and
// counting how often each page is visited. Estimates from repeated
// runs differ; they converge to the analytic ranks as the sample
// count grows.
type Sampler struct {
	damping float64
	n       int
	rng     *rand.Rand
}

// NewSampler returns a Sampler drawing its randomness from src, so
// callers can pin the walk for reproducibility.
func NewSampler(damping float64, n int, src rand.Source) *Sampler {
	return &Sampler{
		damping: damping,
		n:       n,
		rng:     rand.New(src),
	}
}

// Sample runs a time-seeded surfer simulation over g.
func Sample(g corpus.Graph, damping float64, n int) (Distribution, error) {
	return NewSampler(damping, n, rand.NewSource(time.Now().UnixNano())).Run(g)
}

// Run walks the graph for exactly n steps and returns the visit
// frequency of every page. Hit counts sum to n, so the result is a
// valid distribution regardless of graph topology.
func (s *Sampler) Run(g corpus.Graph) (Distribution, error) {
	if s.n < 1 {
		return nil, errors.Wrapf(ErrBadSampleCount, "got %d", s.n)
	}
	if len(g) == 0 {
		return nil, errors.Wrap(ErrEmptyCorpus, "sampling estimator")
	}

	pages := g.Pages()
	hits := make(map[corpus.Page]int, len(pages))

	current := pages[s.rng.Intn(len(pages))]
	hits[current]++

	for i := 1; i < s.n; i++ {
		model, err := Transition(g, current, s.damping)
		if err != nil {
			return nil, err
		}
		current = weightedChoice(pages, model, s.rng)
		hits[current]++
	}

	dist := make(Distribution, len(pages))
	for _, p := range pages {
		dist[p] = float64(hits[p]) / float64(s.n)
	}
	return dist, nil
}
