// Package pipeline defines the processing contracts of the toolchain and the
// pipelines that clean, annotate and analyze a scraped corpus.
package pipeline

import (
	"context"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/conllu"
)

// Pipeline is one runnable processing stage over a corpus.
type Pipeline interface {
	Run(ctx context.Context) error
}

// Language is the capability of reporting the processing pipes a component
// runs text through. The second result is false when the component has
// nothing to report; an empty non-nil map means "pipes exist, none named".
type Language interface {
	AnalyzePipes() (map[string]string, bool)
}

// Analyzer annotates plain text into CoNLL-U markup and moves that markup
// between articles and their on-disk artifacts.
type Analyzer interface {
	// Analyze produces one CoNLL-U document per input text.
	Analyze(ctx context.Context, texts []string) ([]string, error)
	// ToConllu writes the article's attached markup to its artifact.
	ToConllu(a *article.Article, base string) error
	// FromConllu loads and parses the article's markup artifact.
	FromConllu(a *article.Article, base string) (*conllu.Document, error)
	// ArtifactType names the artifact kind this analyzer produces.
	ArtifactType() article.ArtifactType
}

// TreeNode is one node of a matched syntactic subtree, as dumped to the
// pattern artifact.
type TreeNode struct {
	UPOS     string      `json:"upos"`
	Text     string      `json:"text"`
	Children []*TreeNode `json:"children"`
}
