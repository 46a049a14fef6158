// Package udpipe annotates text into CoNLL-U by driving the udpipe
// command-line tool with a pretrained model.
package udpipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/conllu"
)

const commandTimeout = 2 * time.Minute

// pipes are the processing stages every udpipe invocation runs.
var pipes = []string{"tokenize", "tag", "parse"}

// Analyzer shells out to the udpipe binary for every batch of texts.
type Analyzer struct {
	binary string
	model  string
}

// New verifies that the binary is runnable and the model file exists.
func New(binary, model string) (*Analyzer, error) {
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("udpipe binary not found: %w", err)
	}
	if _, err := os.Stat(model); err != nil {
		return nil, fmt.Errorf("udpipe model not found: %w", err)
	}
	return &Analyzer{binary: resolved, model: model}, nil
}

// Analyze runs every text through the tokenize, tag and parse pipes.
func (a *Analyzer) Analyze(ctx context.Context, texts []string) ([]string, error) {
	annotated := make([]string, 0, len(texts))
	for i, text := range texts {
		markup, err := a.run(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i+1, err)
		}
		annotated = append(annotated, markup)
	}
	return annotated, nil
}

func (a *Analyzer) run(ctx context.Context, input string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, a.binary, "--tokenize", "--tag", "--parse", a.model)
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("udpipe timed out after %s", commandTimeout)
		}
		if text := strings.TrimSpace(stderr.String()); text != "" {
			return "", fmt.Errorf("udpipe failed: %s", text)
		}
		return "", fmt.Errorf("udpipe failed: %w", err)
	}
	return stdout.String(), nil
}

// ToConllu writes the article's attached markup to its artifact.
func (a *Analyzer) ToConllu(art *article.Article, base string) error {
	markup := art.Conllu()
	if markup == "" {
		return fmt.Errorf("article %d has no CoNLL-U markup attached", art.ID)
	}
	if !strings.HasSuffix(markup, "\n") {
		markup += "\n"
	}
	path := art.ArtifactPath(base, a.ArtifactType())
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FromConllu loads and parses the article's markup artifact.
func (a *Analyzer) FromConllu(art *article.Article, base string) (*conllu.Document, error) {
	path := art.ArtifactPath(base, a.ArtifactType())
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := conllu.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ArtifactType names the artifact kind this analyzer produces.
func (a *Analyzer) ArtifactType() article.ArtifactType {
	return article.ArtifactUDPipeConllu
}

// AnalyzePipes reports the udpipe processing pipes and the model each one
// runs with.
func (a *Analyzer) AnalyzePipes() (map[string]string, bool) {
	model := filepath.Base(a.model)
	report := make(map[string]string, len(pipes))
	for _, pipe := range pipes {
		report[pipe] = model
	}
	return report, true
}
