package pipeline

import (
	"context"
	"fmt"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
	"github.com/fipl-hse/2024-2-level-ctlr/visualizer"
)

// POSFrequency counts part-of-speech tags per article, stores the counts in
// the article metadata and renders a frequency chart artifact.
type POSFrequency struct {
	corpus   *corpus.Manager
	analyzer Analyzer
}

// NewPOSFrequency returns the pipeline. The analyzer is required here: it
// loads the CoNLL-U artifacts produced by the processing stage.
func NewPOSFrequency(manager *corpus.Manager, analyzer Analyzer) *POSFrequency {
	return &POSFrequency{corpus: manager, analyzer: analyzer}
}

// Run updates metadata and charts for every registered article.
func (p *POSFrequency) Run(_ context.Context) error {
	log := logging.Child("posfreq")
	base := p.corpus.Base()

	for _, id := range p.corpus.IDs() {
		art := p.corpus.Articles()[id]

		doc, err := p.analyzer.FromConllu(art, base)
		if err != nil {
			return fmt.Errorf("article %d: %w", id, err)
		}
		art.SetConllu(doc.Serialize())
		art.SetPOSFrequencies(doc.POSFrequencies())

		if err := article.ToMeta(art, base); err != nil {
			return err
		}

		title := fmt.Sprintf("Article %d", id)
		chartPath := art.ArtifactPath(base, article.ArtifactImage)
		if err := visualizer.RenderToFile(title, art.POSFrequencies(), chartPath); err != nil {
			return err
		}
		log.Info("pos frequencies recorded", "id", id, "tags", len(art.POSFrequencies()))
	}
	return nil
}
