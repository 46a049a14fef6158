package article

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// meta is the JSON shape of the N_meta.json artifact.
type meta struct {
	ID             int            `json:"id"`
	URL            string         `json:"url"`
	Title          string         `json:"title"`
	Date           string         `json:"date"`
	Authors        []string       `json:"author"`
	Topics         []string       `json:"topics"`
	POSFrequencies map[string]int `json:"pos_frequencies,omitempty"`
}

// ToRaw writes the article text as the N_raw.txt artifact.
func ToRaw(a *Article, base string) error {
	return writeFile(a.ArtifactPath(base, ArtifactRaw), a.Text)
}

// FromRaw reads the raw text artifact into the article.
func FromRaw(path string, a *Article) (*Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw text: %w", err)
	}
	a.Text = string(content)
	return a, nil
}

// ToCleaned writes the cleaned text as the N_cleaned.txt artifact.
func ToCleaned(a *Article, base string) error {
	return writeFile(a.ArtifactPath(base, ArtifactCleaned), a.CleanedText())
}

// ToMeta writes article metadata as the N_meta.json artifact.
func ToMeta(a *Article, base string) error {
	m := meta{
		ID:             a.ID,
		URL:            a.URL,
		Title:          a.Title,
		Date:           a.Date.Format(DateLayout),
		Authors:        a.Authors,
		Topics:         a.Topics,
		POSFrequencies: a.POSFrequencies(),
	}

	encoded, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	return writeFile(a.ArtifactPath(base, ArtifactMeta), string(encoded)+"\n")
}

// FromMeta loads article metadata from an N_meta.json file.
func FromMeta(path string) (*Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var m meta
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("failed to decode metadata %s: %w", path, err)
	}

	a := New(m.URL, m.ID)
	a.Title = m.Title
	a.Authors = m.Authors
	a.Topics = m.Topics
	if m.Date != "" {
		date, err := time.Parse(DateLayout, m.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata date %q: %w", m.Date, err)
		}
		a.Date = date
	}
	if m.POSFrequencies != nil {
		a.SetPOSFrequencies(m.POSFrequencies)
	}
	return a, nil
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
