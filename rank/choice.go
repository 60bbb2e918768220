package rank

import (
	"math/rand"
	"sort"

	"github.com/alishahwee/pagerank/corpus"
)

// weightedChoice draws one page from a categorical distribution by
// building a prefix-sum table over the given page ordering, drawing a
// uniform real below the total mass and binary-searching for the
// bucket it lands in. Zero-weight pages are never chosen.
func weightedChoice(pages []corpus.Page, dist Distribution, rng *rand.Rand) corpus.Page {
	prefix := make([]float64, len(pages))
	var total float64
	for i, p := range pages {
		total += dist[p]
		prefix[i] = total
	}

	x := rng.Float64() * total
	i := sort.SearchFloat64s(prefix, x)
	if i == len(pages) {
		i = len(pages) - 1
	}

	// a draw landing exactly on a bucket boundary resolves to the
	// earlier bucket; skip forward past empty ones
	for i < len(pages)-1 && dist[pages[i]] == 0 {
		i++
	}
	return pages[i]
}
