// Package conllu reads and writes the CoNLL-U annotation format.
package conllu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the number of tab-separated columns in a token line.
const fieldCount = 10

// ErrEmptyDocument indicates that the input contained no sentences.
var ErrEmptyDocument = errors.New("conllu document contains no sentences")

// Token is one annotated word line.
type Token struct {
	ID     int
	Form   string
	Lemma  string
	UPOS   string
	XPOS   string
	Feats  string
	Head   int
	Deprel string
	Deps   string
	Misc   string
}

// Sentence is a block of token lines with its preceding comments.
type Sentence struct {
	Comments []string
	Tokens   []Token
}

// Text reconstructs the sentence surface form from token forms.
func (s Sentence) Text() string {
	forms := make([]string, 0, len(s.Tokens))
	for _, token := range s.Tokens {
		forms = append(forms, token.Form)
	}
	return strings.Join(forms, " ")
}

// Document is a parsed CoNLL-U file.
type Document struct {
	Sentences []Sentence
}

// Parse decodes CoNLL-U text. Multiword-token ranges (1-2) and empty
// nodes (1.1) are not part of the dependency tree and are skipped.
func Parse(text string) (*Document, error) {
	doc := &Document{}
	current := Sentence{}

	flush := func() {
		if len(current.Tokens) > 0 || len(current.Comments) > 0 {
			doc.Sentences = append(doc.Sentences, current)
			current = Sentence{}
		}
	}

	for lineNo, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case strings.HasPrefix(line, "#"):
			current.Comments = append(current.Comments, line)
		default:
			fields := strings.Split(line, "\t")
			if len(fields) != fieldCount {
				return nil, fmt.Errorf("line %d: expected %d columns, got %d",
					lineNo+1, fieldCount, len(fields))
			}
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				// Range or empty-node line.
				continue
			}
			head, err := strconv.Atoi(fields[6])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid head %q", lineNo+1, fields[6])
			}
			current.Tokens = append(current.Tokens, Token{
				ID:     id,
				Form:   fields[1],
				Lemma:  fields[2],
				UPOS:   fields[3],
				XPOS:   fields[4],
				Feats:  fields[5],
				Head:   head,
				Deprel: fields[7],
				Deps:   fields[8],
				Misc:   fields[9],
			})
		}
	}
	flush()

	if len(doc.Sentences) == 0 {
		return nil, ErrEmptyDocument
	}
	return doc, nil
}

// Serialize encodes the document back to CoNLL-U text, one blank line
// after each sentence.
func (d *Document) Serialize() string {
	var b strings.Builder
	for _, sentence := range d.Sentences {
		for _, comment := range sentence.Comments {
			b.WriteString(comment)
			b.WriteByte('\n')
		}
		for _, token := range sentence.Tokens {
			fmt.Fprintf(&b, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
				token.ID,
				orUnderscore(token.Form),
				orUnderscore(token.Lemma),
				orUnderscore(token.UPOS),
				orUnderscore(token.XPOS),
				orUnderscore(token.Feats),
				token.Head,
				orUnderscore(token.Deprel),
				orUnderscore(token.Deps),
				orUnderscore(token.Misc))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// POSFrequencies counts universal part-of-speech tags across the document.
func (d *Document) POSFrequencies() map[string]int {
	freq := make(map[string]int)
	for _, sentence := range d.Sentences {
		for _, token := range sentence.Tokens {
			freq[token.UPOS]++
		}
	}
	return freq
}

func orUnderscore(field string) string {
	if field == "" {
		return "_"
	}
	return field
}
