package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/conllu"
	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
)

// stubAnalyzer returns canned CoNLL-U markup and round-trips artifacts
// through the filesystem like the real analyzer does.
type stubAnalyzer struct {
	pipes  map[string]string
	markup string
}

func (s *stubAnalyzer) Analyze(_ context.Context, texts []string) ([]string, error) {
	docs := make([]string, len(texts))
	for i := range texts {
		docs[i] = s.markup
	}
	return docs, nil
}

func (s *stubAnalyzer) ToConllu(a *article.Article, base string) error {
	return os.WriteFile(a.ArtifactPath(base, s.ArtifactType()), []byte(a.Conllu()), 0o644)
}

func (s *stubAnalyzer) FromConllu(a *article.Article, base string) (*conllu.Document, error) {
	content, err := os.ReadFile(a.ArtifactPath(base, s.ArtifactType()))
	if err != nil {
		return nil, err
	}
	return conllu.Parse(string(content))
}

func (s *stubAnalyzer) ArtifactType() article.ArtifactType {
	return article.ArtifactUDPipeConllu
}

func (s *stubAnalyzer) AnalyzePipes() (map[string]string, bool) {
	return s.pipes, s.pipes != nil
}

// silentAnalyzer satisfies Analyzer but not Language.
type silentAnalyzer struct{ stubAnalyzer }

func (s *silentAnalyzer) AnalyzePipes() {} // wrong shape on purpose

const annotated = `# text = Мама мыла красивую раму
1	Мама	мама	NOUN	_	_	2	nsubj	_	_
2	мыла	мыть	VERB	_	_	0	root	_	_
3	красивую	красивый	ADJ	_	_	4	amod	_	_
4	раму	рама	NOUN	_	_	2	obj	_	_
`

func newDataset(t *testing.T, texts ...string) *corpus.Manager {
	t.Helper()
	base := t.TempDir()
	for i, text := range texts {
		id := i + 1
		raw := filepath.Join(base, fmt.Sprintf("%d_raw.txt", id))
		require.NoError(t, os.WriteFile(raw, []byte(text), 0o644))
		meta := filepath.Join(base, fmt.Sprintf("%d_meta.json", id))
		content := fmt.Sprintf(`{"id": %d, "url": "https://example.org/%d/"}`, id, id)
		require.NoError(t, os.WriteFile(meta, []byte(content), 0o644))
	}

	manager, err := corpus.NewManager(base)
	require.NoError(t, err)
	return manager
}

func TestLanguageCapabilityCheck(t *testing.T) {
	var withPipes any = &stubAnalyzer{pipes: map[string]string{"tokenize": "model"}}
	var withoutPipes any = &silentAnalyzer{}

	lang, ok := withPipes.(Language)
	require.True(t, ok)
	pipes, ok := lang.AnalyzePipes()
	require.True(t, ok)
	assert.Equal(t, map[string]string{"tokenize": "model"}, pipes)

	_, ok = withoutPipes.(Language)
	assert.False(t, ok)
}

func TestLanguageAbsenceValue(t *testing.T) {
	var analyzer Language = &stubAnalyzer{pipes: nil}

	pipes, ok := analyzer.AnalyzePipes()
	assert.False(t, ok)
	assert.Nil(t, pipes)
}

func TestTextProcessingWithAnalyzer(t *testing.T) {
	manager := newDataset(t, "Мама мыла, красивую раму!", "Второй текст.")
	analyzer := &stubAnalyzer{markup: annotated}

	require.NoError(t, NewTextProcessing(manager, analyzer).Run(context.Background()))

	for _, id := range []int{1, 2} {
		art := manager.Articles()[id]
		cleaned, err := os.ReadFile(art.ArtifactPath(manager.Base(), article.ArtifactCleaned))
		require.NoError(t, err)
		assert.NotEmpty(t, cleaned)

		markup, err := os.ReadFile(art.ArtifactPath(manager.Base(), article.ArtifactUDPipeConllu))
		require.NoError(t, err)
		assert.Equal(t, annotated, string(markup))
	}
	assert.Equal(t, "мама мыла красивую раму",
		manager.Articles()[1].CleanedText())
}

func TestTextProcessingWithoutAnalyzer(t *testing.T) {
	manager := newDataset(t, "Какой-то текст.")

	require.NoError(t, NewTextProcessing(manager, nil).Run(context.Background()))

	art := manager.Articles()[1]
	_, err := os.Stat(art.ArtifactPath(manager.Base(), article.ArtifactCleaned))
	assert.NoError(t, err)
	_, err = os.Stat(art.ArtifactPath(manager.Base(), article.ArtifactUDPipeConllu))
	assert.True(t, os.IsNotExist(err))
}

func TestPOSFrequency(t *testing.T) {
	manager := newDataset(t, "Мама мыла красивую раму.")
	analyzer := &stubAnalyzer{markup: annotated}
	require.NoError(t, NewTextProcessing(manager, analyzer).Run(context.Background()))

	require.NoError(t, NewPOSFrequency(manager, analyzer).Run(context.Background()))

	art := manager.Articles()[1]
	assert.Equal(t, map[string]int{"NOUN": 2, "VERB": 1, "ADJ": 1}, art.POSFrequencies())

	loaded, err := article.FromMeta(art.ArtifactPath(manager.Base(), article.ArtifactMeta))
	require.NoError(t, err)
	assert.Equal(t, art.POSFrequencies(), loaded.POSFrequencies())

	chart, err := os.ReadFile(art.ArtifactPath(manager.Base(), article.ArtifactImage))
	require.NoError(t, err)
	assert.Contains(t, string(chart), "<svg")
}

func TestPOSFrequencyEmptyConlluFails(t *testing.T) {
	manager := newDataset(t, "Текст.")
	analyzer := &stubAnalyzer{markup: annotated}

	art := manager.Articles()[1]
	path := art.ArtifactPath(manager.Base(), article.ArtifactUDPipeConllu)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	err := NewPOSFrequency(manager, analyzer).Run(context.Background())
	assert.ErrorIs(t, err, conllu.ErrEmptyDocument)
}

func TestPatternSearch(t *testing.T) {
	manager := newDataset(t, "Мама мыла красивую раму.")
	analyzer := &stubAnalyzer{markup: annotated}
	require.NoError(t, NewTextProcessing(manager, analyzer).Run(context.Background()))

	search, err := NewPatternSearch(manager, analyzer, []string{"VERB", "NOUN", "ADJ"})
	require.NoError(t, err)
	require.NoError(t, search.Run(context.Background()))

	art := manager.Articles()[1]
	content, err := os.ReadFile(art.ArtifactPath(manager.Base(), article.ArtifactPattern))
	require.NoError(t, err)

	assert.JSONEq(t, `{
	  "0": [{
	    "upos": "VERB",
	    "text": "мыла",
	    "children": [{
	      "upos": "NOUN",
	      "text": "раму",
	      "children": [{"upos": "ADJ", "text": "красивую", "children": null}]
	    }]
	  }]
	}`, string(content))
}

func TestPatternSearchNoMatches(t *testing.T) {
	manager := newDataset(t, "Мама мыла красивую раму.")
	analyzer := &stubAnalyzer{markup: annotated}
	require.NoError(t, NewTextProcessing(manager, analyzer).Run(context.Background()))

	search, err := NewPatternSearch(manager, analyzer, []string{"ADV", "NOUN", "ADJ"})
	require.NoError(t, err)
	require.NoError(t, search.Run(context.Background()))

	art := manager.Articles()[1]
	content, err := os.ReadFile(art.ArtifactPath(manager.Base(), article.ArtifactPattern))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(content))
}

func TestPatternSearchRequiresThreeTags(t *testing.T) {
	manager := newDataset(t, "Текст.")
	_, err := NewPatternSearch(manager, &stubAnalyzer{}, []string{"VERB", "NOUN"})
	assert.Error(t, err)
}
