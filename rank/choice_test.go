package rank

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gotest.tools/assert"

	"github.com/alishahwee/pagerank/corpus"
)

func TestWeightedChoice_singleEntry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pages := []corpus.Page{"only"}
	dist := Distribution{"only": 1.0}

	for i := 0; i < 100; i++ {
		assert.Equal(t, corpus.Page("only"), weightedChoice(pages, dist, rng))
	}
}

func TestWeightedChoice_zeroWeightNeverChosen(t *testing.T) {
	cases := []Distribution{
		{"a": 0, "b": 1},
		{"a": 0.5, "b": 0, "c": 0.5},
		{"a": 1, "b": 0},
	}

	for i, cc := range cases {
		c := cc
		t.Run(fmt.Sprintf("%d-th case", i), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(i)))
			pages := make([]corpus.Page, 0, len(c))
			for p := range c {
				pages = append(pages, p)
			}

			for n := 0; n < 5000; n++ {
				picked := weightedChoice(pages, c, rng)
				assert.Assert(t, c[picked] > 0, "picked zero-weight page %s", picked)
			}
		})
	}
}

func TestWeightedChoice_frequencies(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pages := []corpus.Page{"a", "b", "c"}
	dist := Distribution{"a": 0.5, "b": 0.3, "c": 0.2}

	const draws = 100000
	counts := map[corpus.Page]int{}
	for i := 0; i < draws; i++ {
		counts[weightedChoice(pages, dist, rng)]++
	}

	for _, p := range pages {
		freq := float64(counts[p]) / draws
		assert.Assert(t, math.Abs(freq-dist[p]) < 0.01,
			"page %s: frequency %v vs weight %v", p, freq, dist[p])
	}
}
