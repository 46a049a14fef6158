package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
)

// Crawler walks seed pages and collects in-domain article URLs until the
// configured total is reached.
type Crawler struct {
	config *Config
	urls   []string
}

// NewCrawler returns a crawler for the given configuration.
func NewCrawler(config *Config) *Crawler {
	return &Crawler{config: config}
}

// SearchURLs returns the seed pages the crawl starts from.
func (c *Crawler) SearchURLs() []string {
	return c.config.SeedURLs()
}

// URLs returns the article URLs found so far, in discovery order.
func (c *Crawler) URLs() []string {
	return c.urls
}

// FindArticles visits every seed page and extracts article links. Seed pages
// that fail to load are logged and skipped; the crawl itself fails only when
// no seed produced any link.
func (c *Crawler) FindArticles(ctx context.Context) error {
	log := logging.Child("crawler")
	seen := make(map[string]bool)

	for _, seed := range c.SearchURLs() {
		if len(c.urls) >= c.config.NumArticles() {
			break
		}

		body, err := MakeRequest(ctx, seed, c.config)
		if err != nil {
			log.Warn("seed page skipped", "url", seed, "error", err)
			continue
		}

		links, err := extractArticleLinks(seed, body)
		if err != nil {
			log.Warn("seed page not parseable", "url", seed, "error", err)
			continue
		}

		for _, link := range links {
			if seen[link] {
				continue
			}
			seen[link] = true
			c.urls = append(c.urls, link)
			if len(c.urls) >= c.config.NumArticles() {
				break
			}
		}
		log.Info("seed page crawled", "url", seed, "collected", len(c.urls))
	}

	if len(c.urls) == 0 {
		return fmt.Errorf("no article URLs found on %d seed pages", len(c.SearchURLs()))
	}
	return nil
}

// extractArticleLinks pulls same-host anchor targets out of a seed page.
func extractArticleLinks(seed string, body []byte) ([]string, error) {
	base, err := url.Parse(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed URL %s: %w", seed, err)
	}

	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var links []string
	for node := range root.Descendants() {
		if node.Type != html.ElementNode || node.Data != "a" {
			continue
		}
		href := attrValue(node, "href")
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}
		resolved, err := base.Parse(href)
		if err != nil {
			continue
		}
		if !isArticleURL(base, resolved) {
			continue
		}
		resolved.Fragment = ""
		links = append(links, resolved.String())
	}
	return links, nil
}

// isArticleURL keeps same-host links that lead away from the seed page
// itself.
func isArticleURL(base, candidate *url.URL) bool {
	if candidate.Scheme != "http" && candidate.Scheme != "https" {
		return false
	}
	if candidate.Host != base.Host {
		return false
	}
	path := strings.Trim(candidate.Path, "/")
	return path != "" && path != strings.Trim(base.Path, "/")
}

func attrValue(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}
