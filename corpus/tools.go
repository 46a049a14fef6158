package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fipl-hse/2024-2-level-ctlr/conllu"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

// DefaultTokenBudget is how many non-punctuation tokens each author
// contributes to the gold corpus.
const DefaultTokenBudget = 2500

// TextAnalyzer annotates plain texts into CoNLL-U markup.
type TextAnalyzer interface {
	Analyze(ctx context.Context, texts []string) ([]string, error)
}

// Convert copies each author's source texts into a gold directory of plain
// .txt files, stopping once the author's running non-punctuation token count
// exceeds budget. Tokens are counted by annotating every text with analyzer.
func Convert(ctx context.Context, analyzer TextAnalyzer, sourceDir, goldDir string, budget int) error {
	log := logging.Child("corpus")

	authors, err := authorDirs(sourceDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(goldDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", goldDir, err)
	}

	for _, author := range authors {
		sources, err := sortedFiles(filepath.Join(sourceDir, author), ".xml")
		if err != nil {
			return err
		}
		log.Info("converting author", "author", author, "texts", len(sources))

		authorDir := filepath.Join(goldDir, author)
		if err := os.MkdirAll(authorDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", authorDir, err)
		}

		total := 0
		for _, source := range sources {
			content, err := os.ReadFile(source)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", source, err)
			}
			text := strings.TrimSpace(string(content))

			count, err := countTokens(ctx, analyzer, text)
			if err != nil {
				return fmt.Errorf("%s: %w", source, err)
			}
			total += count

			stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
			target := filepath.Join(authorDir, stem+".txt")
			if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", target, err)
			}
			log.Info("converted", "text", filepath.Base(source), "tokens", total)

			if total > budget {
				break
			}
		}
	}
	return nil
}

// Join concatenates each author's gold .txt files, sorted by name and
// separated by blank lines, into resultDir/<author>/total.txt.
func Join(goldDir, resultDir string) error {
	log := logging.Child("corpus")

	authors, err := authorDirs(goldDir)
	if err != nil {
		return err
	}

	for _, author := range authors {
		texts, err := sortedFiles(filepath.Join(goldDir, author), ".txt")
		if err != nil {
			return err
		}

		contents := make([]string, 0, len(texts))
		for _, text := range texts {
			content, err := os.ReadFile(text)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", text, err)
			}
			contents = append(contents, string(content))
		}

		authorDir := filepath.Join(resultDir, author)
		if err := os.MkdirAll(authorDir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", authorDir, err)
		}
		target := filepath.Join(authorDir, "total.txt")
		if err := os.WriteFile(target, []byte(strings.Join(contents, "\n\n")), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		log.Info("joined", "author", author, "texts", len(texts))
	}
	return nil
}

// Annotate runs analyzer over each author's total.txt in resultDir and
// writes the markup next to it as total.conllu.
func Annotate(ctx context.Context, analyzer TextAnalyzer, resultDir string) error {
	log := logging.Child("corpus")

	authors, err := authorDirs(resultDir)
	if err != nil {
		return err
	}

	for _, author := range authors {
		source := filepath.Join(resultDir, author, "total.txt")
		content, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}

		annotated, err := analyzer.Analyze(ctx, []string{string(content)})
		if err != nil {
			return fmt.Errorf("author %s: %w", author, err)
		}
		markup := annotated[0]
		if !strings.HasSuffix(markup, "\n") {
			markup += "\n"
		}

		target := filepath.Join(resultDir, author, "total.conllu")
		if err := os.WriteFile(target, []byte(markup), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		log.Info("annotated", "author", author)
	}
	return nil
}

// countTokens annotates one text and counts its non-punctuation tokens.
func countTokens(ctx context.Context, analyzer TextAnalyzer, text string) (int, error) {
	annotated, err := analyzer.Analyze(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	doc, err := conllu.Parse(annotated[0])
	if err != nil {
		return 0, err
	}

	count := 0
	for _, sentence := range doc.Sentences {
		for _, token := range sentence.Tokens {
			if token.UPOS != "PUNCT" {
				count++
			}
		}
	}
	return count, nil
}

// authorDirs lists the sub-directories of root, sorted by name.
func authorDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", root, err)
	}

	var authors []string
	for _, entry := range entries {
		if entry.IsDir() {
			authors = append(authors, entry.Name())
		}
	}
	sort.Strings(authors)
	return authors, nil
}

// sortedFiles lists the files in dir with the given extension, sorted.
func sortedFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ext {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
