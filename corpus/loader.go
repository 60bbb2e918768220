package corpus

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Loader reads a directory of HTML documents and turns the hyperlinks
// between them into a Graph. Pages are identified by their bare
// filename, so only links that name another file in the same directory
// survive the corpus filter.
type Loader struct {
	logger *logrus.Logger
}

func NewLoader(logger *logrus.Logger) *Loader {
	if logger == nil {
		logger = logrus.New()
	}
	return &Loader{logger: logger}
}

// Load parses every .html file directly under dir and returns the
// filtered link graph.
func (l *Loader) Load(dir string) (Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read corpus directory %s", dir)
	}

	links := map[Page][]Page{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		f, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", entry.Name())
		}

		edges := extractLinks(f)
		f.Close()

		l.logger.Infof("loaded %s: %d raw links", entry.Name(), len(edges))
		links[Page(entry.Name())] = edges
	}

	return New(links), nil
}

// extractLinks walks the token stream and collects the href attribute
// of every anchor element.
func extractLinks(f *os.File) []Page {
	doc := html.NewTokenizer(f)
	var edges []Page

	for tokenType := doc.Next(); tokenType != html.ErrorToken; tokenType = doc.Next() {
		if tokenType != html.StartTagToken && tokenType != html.SelfClosingTagToken {
			continue
		}

		token := doc.Token()
		if token.DataAtom != atom.A {
			continue
		}

		for _, attr := range token.Attr {
			if attr.Key == "href" && attr.Val != "" {
				edges = append(edges, Page(attr.Val))
			}
		}
	}
	return edges
}
