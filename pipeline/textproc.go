package pipeline

import (
	"context"
	"fmt"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

// TextProcessing writes cleaned text for every article and, when an analyzer
// is attached, annotates the texts into CoNLL-U artifacts.
type TextProcessing struct {
	corpus   *corpus.Manager
	analyzer Analyzer
}

// NewTextProcessing returns the pipeline. analyzer may be nil, in which case
// only cleaned text is produced.
func NewTextProcessing(manager *corpus.Manager, analyzer Analyzer) *TextProcessing {
	return &TextProcessing{corpus: manager, analyzer: analyzer}
}

// Run processes every registered article in ID order.
func (p *TextProcessing) Run(ctx context.Context) error {
	log := logging.Child("pipeline")

	if lang, ok := p.analyzer.(Language); ok {
		if pipes, ok := lang.AnalyzePipes(); ok {
			log.Info("analyzer pipes", "pipes", pipes)
		}
	}

	ids := p.corpus.IDs()
	articles := p.corpus.Articles()

	var annotations []string
	if p.analyzer != nil {
		texts := make([]string, 0, len(ids))
		for _, id := range ids {
			texts = append(texts, articles[id].Text)
		}
		var err error
		annotations, err = p.analyzer.Analyze(ctx, texts)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		if len(annotations) != len(ids) {
			return fmt.Errorf("analyzer returned %d documents for %d texts",
				len(annotations), len(ids))
		}
	}

	for i, id := range ids {
		art := articles[id]
		if err := article.ToCleaned(art, p.corpus.Base()); err != nil {
			return err
		}
		if annotations != nil {
			art.SetConllu(annotations[i])
			if err := p.analyzer.ToConllu(art, p.corpus.Base()); err != nil {
				return err
			}
		}
		log.Info("article processed", "id", id)
	}
	return nil
}
