package visualizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGolden(t *testing.T) {
	chart := Render("Article 1", map[string]int{
		"NOUN":  12,
		"VERB":  7,
		"ADJ":   7,
		"PUNCT": 15,
	})

	g := goldie.New(t)
	g.Assert(t, "pos_chart", []byte(chart))
}

func TestRenderIsDeterministic(t *testing.T) {
	freq := map[string]int{"NOUN": 3, "VERB": 3, "ADV": 1}
	assert.Equal(t, Render("t", freq), Render("t", freq))
}

func TestRenderEscapesMarkup(t *testing.T) {
	chart := Render("<script>", map[string]int{"X<Y": 1})
	assert.NotContains(t, chart, "<script>")
	assert.Contains(t, chart, "&lt;script&gt;")
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1_image.svg")
	require.NoError(t, RenderToFile("Article 1", map[string]int{"NOUN": 2}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<svg")
}
