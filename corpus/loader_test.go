package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"1.html": `
<!DOCTYPE html><html>
	<header>
		<title>page one</title>
	</header>
	<body>
		<a href="2.html">two</a>
		<a href="1.html">self</a>
		<a href="https://www.google.com">external</a>
	</body>
</html>`,
		"2.html": `
<!DOCTYPE html><html>
	<body>
		<a href="1.html">one</a>
		<a href="3.html">three</a>
	</body>
</html>`,
		"3.html":    `<!DOCTYPE html><html><body>no links here</body></html>`,
		"notes.txt": `<a href="1.html">not part of the corpus</a>`,
	})

	g, err := NewLoader(logrus.New()).Load(dir)
	assert.NoError(t, err)

	assert.Equal(t, []Page{"1.html", "2.html", "3.html"}, g.Pages())

	// self-link and external link filtered out
	assert.Equal(t, 1, len(g.Links("1.html")))
	_, ok := g.Links("1.html")["2.html"]
	assert.True(t, ok)

	assert.Equal(t, 2, len(g.Links("2.html")))

	// 3.html is a sink
	assert.Equal(t, 0, len(g.Links("3.html")))
}

func TestLoader_emptyDirectory(t *testing.T) {
	g, err := NewLoader(nil).Load(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(g))
}

func TestLoader_missingDirectory(t *testing.T) {
	_, err := NewLoader(nil).Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
