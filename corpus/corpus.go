package corpus

import "sort"

// Page names a single document in the corpus.
type Page string

// Graph maps every page in the corpus to the set of pages it links to.
// Keys are exactly the node set; a page with an empty set is a sink.
type Graph map[Page]map[Page]struct{}

// New builds a Graph from raw link candidates. Self-links and links to
// pages outside the corpus are dropped, duplicates collapse.
func New(links map[Page][]Page) Graph {
	g := make(Graph, len(links))
	for p := range links {
		g[p] = make(map[Page]struct{})
	}

	for p, targets := range links {
		for _, t := range targets {
			if t == p {
				continue
			}
			if _, ok := g[t]; !ok {
				continue
			}
			g[p][t] = struct{}{}
		}
	}
	return g
}

// Pages returns every page in the corpus in sorted order.
func (g Graph) Pages() []Page {
	pages := make([]Page, 0, len(g))
	for p := range g {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })
	return pages
}

// Links returns the outgoing set of p, nil if p is not in the corpus.
func (g Graph) Links(p Page) map[Page]struct{} {
	return g[p]
}

func (g Graph) Has(p Page) bool {
	_, ok := g[p]
	return ok
}

// Clone deep-copies the graph so that callers mutating their copy
// never affect the original.
func (g Graph) Clone() Graph {
	clone := make(Graph, len(g))
	for p, targets := range g {
		set := make(map[Page]struct{}, len(targets))
		for t := range targets {
			set[t] = struct{}{}
		}
		clone[p] = set
	}
	return clone
}
