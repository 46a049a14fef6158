package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dominikbraun/graph"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/conllu"
	"github.com/fipl-hse/2024-2-level-ctlr/corpus"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

// PatternSearch looks for a three-level part-of-speech chain (root,
// dependent, child of the dependent) in every sentence's dependency tree and
// dumps the matched subtrees to the article's pattern artifact.
type PatternSearch struct {
	corpus   *corpus.Manager
	analyzer Analyzer
	pos      [3]string
}

// NewPatternSearch returns the pipeline. pos must name exactly three
// universal POS tags: root, dependent and child.
func NewPatternSearch(manager *corpus.Manager, analyzer Analyzer, pos []string) (*PatternSearch, error) {
	if len(pos) != 3 {
		return nil, fmt.Errorf("pattern needs exactly 3 POS tags, got %d", len(pos))
	}
	return &PatternSearch{
		corpus:   manager,
		analyzer: analyzer,
		pos:      [3]string{pos[0], pos[1], pos[2]},
	}, nil
}

// Run writes a pattern artifact for every registered article.
func (p *PatternSearch) Run(_ context.Context) error {
	log := logging.Child("patterns")
	base := p.corpus.Base()

	for _, id := range p.corpus.IDs() {
		art := p.corpus.Articles()[id]

		doc, err := p.analyzer.FromConllu(art, base)
		if err != nil {
			return fmt.Errorf("article %d: %w", id, err)
		}

		matches, err := p.findMatches(doc)
		if err != nil {
			return fmt.Errorf("article %d: %w", id, err)
		}

		encoded, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return fmt.Errorf("article %d: failed to encode matches: %w", id, err)
		}

		path := art.ArtifactPath(base, article.ArtifactPattern)
		if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
			return fmt.Errorf("article %d: failed to write pattern artifact: %w", id, err)
		}
		log.Info("patterns searched", "id", id, "sentences_with_matches", len(matches))
	}
	return nil
}

// findMatches returns matched subtrees keyed by sentence index.
func (p *PatternSearch) findMatches(doc *conllu.Document) (map[int][]*TreeNode, error) {
	matches := make(map[int][]*TreeNode)

	for idx, sentence := range doc.Sentences {
		adjacency, tokens, err := sentenceGraph(sentence)
		if err != nil {
			return nil, err
		}

		for _, token := range sentence.Tokens {
			if token.UPOS != p.pos[0] {
				continue
			}
			root := p.matchSubtree(token, adjacency, tokens)
			if root != nil {
				matches[idx] = append(matches[idx], root)
			}
		}
	}
	return matches, nil
}

// matchSubtree checks whether the token heads a full pos[0]->pos[1]->pos[2]
// chain and returns the matched nodes, or nil.
func (p *PatternSearch) matchSubtree(
	token conllu.Token,
	adjacency map[int][]int,
	tokens map[int]conllu.Token,
) *TreeNode {
	root := &TreeNode{UPOS: token.UPOS, Text: token.Form}

	for _, childID := range adjacency[token.ID] {
		child := tokens[childID]
		if child.UPOS != p.pos[1] {
			continue
		}
		childNode := &TreeNode{UPOS: child.UPOS, Text: child.Form}
		for _, grandchildID := range adjacency[childID] {
			grandchild := tokens[grandchildID]
			if grandchild.UPOS == p.pos[2] {
				childNode.Children = append(childNode.Children,
					&TreeNode{UPOS: grandchild.UPOS, Text: grandchild.Form})
			}
		}
		if len(childNode.Children) > 0 {
			root.Children = append(root.Children, childNode)
		}
	}

	if len(root.Children) == 0 {
		return nil
	}
	return root
}

// sentenceGraph builds the head -> dependent digraph of one sentence and
// returns its adjacency lists (dependents sorted by ID) plus a token index.
func sentenceGraph(sentence conllu.Sentence) (map[int][]int, map[int]conllu.Token, error) {
	g := graph.New(graph.IntHash, graph.Directed())
	tokens := make(map[int]conllu.Token, len(sentence.Tokens))

	for _, token := range sentence.Tokens {
		if err := g.AddVertex(token.ID); err != nil {
			return nil, nil, fmt.Errorf("sentence graph vertex %d: %w", token.ID, err)
		}
		tokens[token.ID] = token
	}
	for _, token := range sentence.Tokens {
		if token.Head == 0 {
			continue
		}
		if _, ok := tokens[token.Head]; !ok {
			continue
		}
		if err := g.AddEdge(token.Head, token.ID); err != nil {
			return nil, nil, fmt.Errorf("sentence graph edge %d->%d: %w", token.Head, token.ID, err)
		}
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return nil, nil, fmt.Errorf("sentence graph adjacency: %w", err)
	}

	adjacency := make(map[int][]int, len(adjacencyMap))
	for id, neighbors := range adjacencyMap {
		ids := make([]int, 0, len(neighbors))
		for neighbor := range neighbors {
			ids = append(ids, neighbor)
		}
		sort.Ints(ids)
		adjacency[id] = ids
	}
	return adjacency, tokens, nil
}
