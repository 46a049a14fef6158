package scraper

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
)

// notFound marks metadata the page did not provide.
const notFound = "NOT FOUND"

// russianMonths maps genitive month names to their numbers for dates like
// "12 апреля 2024".
var russianMonths = map[string]time.Month{
	"января":   time.January,
	"февраля":  time.February,
	"марта":    time.March,
	"апреля":   time.April,
	"мая":      time.May,
	"июня":     time.June,
	"июля":     time.July,
	"августа":  time.August,
	"сентября": time.September,
	"октября":  time.October,
	"ноября":   time.November,
	"декабря":  time.December,
}

var dateLayouts = []string{
	article.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02.01.2006 15:04",
	"02.01.2006",
}

// Parser turns one article page into a corpus entry.
type Parser struct {
	fullURL   string
	articleID int
	config    *Config
}

// NewParser returns a parser for the article page at fullURL.
func NewParser(fullURL string, articleID int, config *Config) *Parser {
	return &Parser{fullURL: fullURL, articleID: articleID, config: config}
}

// Parse fetches the page and fills an article with its text and metadata.
func (p *Parser) Parse(ctx context.Context) (*article.Article, error) {
	body, err := MakeRequest(ctx, p.fullURL, p.config)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse article page %s: %w", p.fullURL, err)
	}

	art := article.New(p.fullURL, p.articleID)
	p.fillText(root, art)
	p.fillMeta(root, art)

	if art.Text == "" {
		return nil, fmt.Errorf("article page %s has no text content", p.fullURL)
	}
	return art, nil
}

// fillText gathers paragraph text, preferring the <article> element when the
// page has one.
func (p *Parser) fillText(root *html.Node, art *article.Article) {
	scope := root
	for node := range root.Descendants() {
		if node.Type == html.ElementNode && node.Data == "article" {
			scope = node
			break
		}
	}

	var paragraphs []string
	for node := range scope.Descendants() {
		if node.Type == html.ElementNode && node.Data == "p" {
			if text := nodeText(node); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
	}
	art.Text = strings.Join(paragraphs, "\n")
}

// fillMeta extracts title, date, authors and topics. Absent values stay at
// their NOT FOUND placeholders so downstream tooling sees a complete record.
func (p *Parser) fillMeta(root *html.Node, art *article.Article) {
	art.Title = notFound
	art.Authors = []string{notFound}

	for node := range root.Descendants() {
		if node.Type != html.ElementNode {
			continue
		}
		switch node.Data {
		case "h1":
			if art.Title == notFound {
				if text := nodeText(node); text != "" {
					art.Title = text
				}
			}
		case "time":
			if !art.Date.IsZero() {
				continue
			}
			raw := attrValue(node, "datetime")
			if raw == "" {
				raw = nodeText(node)
			}
			if date, err := UnifyDateFormat(raw); err == nil {
				art.Date = date
			}
		case "meta":
			if attrValue(node, "name") == "author" && art.Authors[0] == notFound {
				if content := attrValue(node, "content"); content != "" {
					art.Authors = []string{content}
				}
			}
		case "a":
			if strings.Contains(attrValue(node, "rel"), "tag") {
				if topic := nodeText(node); topic != "" {
					art.Topics = append(art.Topics, topic)
				}
			}
		}
	}
}

// UnifyDateFormat normalizes the date strings news pages use into a single
// time value. Russian month-name dates are accepted alongside numeric
// layouts.
func UnifyDateFormat(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, raw); err == nil {
			return date, nil
		}
	}

	if date, ok := parseRussianDate(raw); ok {
		return date, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", raw)
}

// parseRussianDate handles "2 января 2024" and "2 января 2024 15:04".
func parseRussianDate(raw string) (time.Time, bool) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) != 3 && len(fields) != 4 {
		return time.Time{}, false
	}

	month, ok := russianMonths[fields[1]]
	if !ok {
		return time.Time{}, false
	}

	var day, year int
	if _, err := fmt.Sscanf(fields[0], "%d", &day); err != nil {
		return time.Time{}, false
	}
	if _, err := fmt.Sscanf(fields[2], "%d", &year); err != nil {
		return time.Time{}, false
	}

	var hour, minute int
	if len(fields) == 4 {
		if _, err := fmt.Sscanf(fields[3], "%d:%d", &hour, &minute); err != nil {
			return time.Time{}, false
		}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC), true
}

func nodeText(node *html.Node) string {
	var b strings.Builder
	for child := range node.Descendants() {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
