// Package article models a single corpus entry and the on-disk artifacts
// derived from it during processing.
package article

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the canonical timestamp format used in article metadata.
const DateLayout = "2006-01-02 15:04:05"

// ArtifactType names one derived file kind stored next to the raw text.
type ArtifactType string

const (
	ArtifactRaw          ArtifactType = "raw.txt"
	ArtifactMeta         ArtifactType = "meta.json"
	ArtifactCleaned      ArtifactType = "cleaned.txt"
	ArtifactUDPipeConllu ArtifactType = "udpipe_conllu.conllu"
	ArtifactStanzaConllu ArtifactType = "stanza_conllu.conllu"
	ArtifactPattern      ArtifactType = "pattern.json"
	ArtifactImage        ArtifactType = "image.svg"
)

// Article is one scraped text together with its metadata and
// analysis results.
type Article struct {
	ID      int
	URL     string
	Title   string
	Authors []string
	Date    time.Time
	Topics  []string
	Text    string

	conllu         string
	posFrequencies map[string]int
}

// New returns an article shell for the given URL and identifier.
func New(url string, id int) *Article {
	return &Article{ID: id, URL: url}
}

// ArtifactPath resolves the path of one derived artifact inside base.
func (a *Article) ArtifactPath(base string, artifact ArtifactType) string {
	return filepath.Join(base, fmt.Sprintf("%d_%s", a.ID, artifact))
}

// SetConllu attaches CoNLL-U markup produced by an analyzer.
func (a *Article) SetConllu(markup string) {
	a.conllu = markup
}

// Conllu returns the attached CoNLL-U markup, if any.
func (a *Article) Conllu() string {
	return a.conllu
}

// SetPOSFrequencies records the part-of-speech distribution of the article.
func (a *Article) SetPOSFrequencies(freq map[string]int) {
	a.posFrequencies = freq
}

// POSFrequencies returns the recorded part-of-speech distribution.
func (a *Article) POSFrequencies() map[string]int {
	return a.posFrequencies
}

// CleanedText lowercases the article text and strips punctuation,
// collapsing runs of whitespace to single spaces.
func (a *Article) CleanedText() string {
	var b strings.Builder
	b.Grow(len(a.Text))
	for _, r := range strings.ToLower(a.Text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
