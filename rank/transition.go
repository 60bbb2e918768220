// Package rank estimates the relative importance of pages in a corpus
// with two independent PageRank estimators: a Monte-Carlo random
// surfer and a deterministic power iteration. Both model a surfer who
// follows an outgoing link with probability equal to the damping
// factor and otherwise teleports to a page chosen uniformly at random.
package rank

import (
	"github.com/pkg/errors"

	"github.com/alishahwee/pagerank/corpus"
)

var (
	ErrEmptyCorpus    = errors.New("corpus has no pages")
	ErrUnknownPage    = errors.New("page is not in the corpus")
	ErrBadSampleCount = errors.New("sample count must be at least 1")
	ErrNoConvergence  = errors.New("did not converge within iteration limit")
)

// Distribution assigns every page a probability. Values sum to 1.
type Distribution map[corpus.Page]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var sum float64
	for _, v := range d {
		sum += v
	}
	return sum
}

// Transition returns the one-step distribution over which page the
// surfer visits next, given the current page. A dangling page yields
// the uniform distribution: with nothing to follow, the teleport
// branch is all there is.
func Transition(g corpus.Graph, page corpus.Page, damping float64) (Distribution, error) {
	n := len(g)
	if n == 0 {
		return nil, errors.Wrap(ErrEmptyCorpus, "transition model")
	}
	if !g.Has(page) {
		return nil, errors.Wrapf(ErrUnknownPage, "transition model: %q", page)
	}

	dist := make(Distribution, n)
	links := g.Links(page)

	if len(links) == 0 {
		uniform := 1 / float64(n)
		for p := range g {
			dist[p] = uniform
		}
		return dist, nil
	}

	base := (1 - damping) / float64(n)
	follow := damping / float64(len(links))
	for p := range g {
		dist[p] = base
		if _, ok := links[p]; ok {
			dist[p] += follow
		}
	}
	return dist, nil
}
