// Package scraper collects raw articles from a news site: it validates the
// crawl configuration, walks seed pages for article links and turns article
// pages into corpus entries.
package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"time"
)

// NumArticlesUpperLimit caps how many articles one crawl may collect.
const NumArticlesUpperLimit = 150

// Timeout bounds, in seconds.
const (
	TimeoutLowerLimit = 0
	TimeoutUpperLimit = 60
)

var seedURLPattern = regexp.MustCompile(`^https?://(www\.)?\S+$`)

// configDTO mirrors the scraper_config.json layout.
type configDTO struct {
	SeedURLs                []string          `json:"seed_urls"`
	TotalArticles           int               `json:"total_articles_to_find_and_parse"`
	Headers                 map[string]string `json:"headers"`
	Encoding                string            `json:"encoding"`
	Timeout                 int               `json:"timeout"`
	ShouldVerifyCertificate bool              `json:"should_verify_certificate"`
	HeadlessMode            bool              `json:"headless_mode"`
}

// Config is a validated crawl configuration.
type Config struct {
	path string
	dto  configDTO
}

// LoadConfig reads and validates a scraper configuration file. Invalid
// fields are reported through the package sentinel errors.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	dto, err := decodeFields(raw)
	if err != nil {
		return nil, err
	}

	return &Config{path: path, dto: dto}, nil
}

// decodeFields decodes and validates one field at a time, in a fixed order,
// so the first defective field determines the reported error even when a
// later field would not decode at all.
func decodeFields(raw map[string]json.RawMessage) (configDTO, error) {
	var dto configDTO

	if err := decodeField(raw, "seed_urls", &dto.SeedURLs, ErrIncorrectSeedURL); err != nil {
		return dto, err
	}
	if len(dto.SeedURLs) == 0 {
		return dto, ErrIncorrectSeedURL
	}
	for _, seed := range dto.SeedURLs {
		if !seedURLPattern.MatchString(seed) {
			return dto, ErrIncorrectSeedURL
		}
	}

	if err := decodeField(raw, "total_articles_to_find_and_parse", &dto.TotalArticles, ErrIncorrectNumberOfArticles); err != nil {
		return dto, err
	}
	if dto.TotalArticles < 0 {
		return dto, ErrIncorrectNumberOfArticles
	}
	if dto.TotalArticles < 1 || dto.TotalArticles > NumArticlesUpperLimit {
		return dto, ErrNumberOfArticlesOutOfRange
	}

	if err := decodeField(raw, "headers", &dto.Headers, ErrIncorrectHeaders); err != nil {
		return dto, err
	}
	if len(dto.Headers) == 0 {
		return dto, ErrIncorrectHeaders
	}

	if err := decodeField(raw, "encoding", &dto.Encoding, ErrIncorrectEncoding); err != nil {
		return dto, err
	}
	if dto.Encoding == "" {
		return dto, ErrIncorrectEncoding
	}

	if err := decodeField(raw, "timeout", &dto.Timeout, ErrIncorrectTimeout); err != nil {
		return dto, err
	}
	if dto.Timeout <= TimeoutLowerLimit || dto.Timeout > TimeoutUpperLimit {
		return dto, ErrIncorrectTimeout
	}

	if err := decodeField(raw, "should_verify_certificate", &dto.ShouldVerifyCertificate, ErrIncorrectVerify); err != nil {
		return dto, err
	}
	if err := decodeField(raw, "headless_mode", &dto.HeadlessMode, ErrIncorrectHeadless); err != nil {
		return dto, err
	}

	return dto, nil
}

// decodeField unmarshals one field into dst, mapping any decode failure to
// the field's sentinel error. A missing field keeps dst's zero value.
func decodeField(raw map[string]json.RawMessage, name string, dst any, fieldErr error) error {
	value, ok := raw[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fieldErr
	}
	return nil
}

// SeedURLs returns the entry pages the crawler starts from.
func (c *Config) SeedURLs() []string {
	return c.dto.SeedURLs
}

// NumArticles returns how many articles to find and parse.
func (c *Config) NumArticles() int {
	return c.dto.TotalArticles
}

// Headers returns the HTTP headers sent with every request.
func (c *Config) Headers() map[string]string {
	return c.dto.Headers
}

// Encoding returns the expected page encoding.
func (c *Config) Encoding() string {
	return c.dto.Encoding
}

// Timeout returns how long to wait for one response.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.dto.Timeout) * time.Second
}

// VerifyCertificate reports whether TLS certificates are verified.
func (c *Config) VerifyCertificate() bool {
	return c.dto.ShouldVerifyCertificate
}

// HeadlessMode reports whether pages are fetched through a headless browser.
func (c *Config) HeadlessMode() bool {
	return c.dto.HeadlessMode
}
