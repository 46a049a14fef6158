package scraper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scraper_config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `{
  "seed_urls": ["https://example.org/news/"],
  "total_articles_to_find_and_parse": 5,
  "headers": {"User-Agent": "ctlr-test"},
  "encoding": "utf-8",
  "timeout": 10,
  "should_verify_certificate": true,
  "headless_mode": false
}`

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org/news/"}, config.SeedURLs())
	assert.Equal(t, 5, config.NumArticles())
	assert.Equal(t, map[string]string{"User-Agent": "ctlr-test"}, config.Headers())
	assert.Equal(t, "utf-8", config.Encoding())
	assert.Equal(t, 10*time.Second, config.Timeout())
	assert.True(t, config.VerifyCertificate())
	assert.False(t, config.HeadlessMode())
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"empty seed urls",
			`{"seed_urls": [], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectSeedURL,
		},
		{
			"seed url without scheme",
			`{"seed_urls": ["example.org/news"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectSeedURL,
		},
		{
			"seed url wrong type",
			`{"seed_urls": [1], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectSeedURL,
		},
		{
			"articles not a number",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": "many",
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectNumberOfArticles,
		},
		{
			"zero articles",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 0,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrNumberOfArticlesOutOfRange,
		},
		{
			"too many articles",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 151,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrNumberOfArticlesOutOfRange,
		},
		{
			"headers wrong type",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": ["a"], "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectHeaders,
		},
		{
			"empty headers",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectHeaders,
		},
		{
			"empty encoding",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectEncoding,
		},
		{
			"timeout zero",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 0,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectTimeout,
		},
		{
			"timeout above limit",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 61,
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectTimeout,
		},
		{
			"verify not boolean",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": "yes", "headless_mode": false}`,
			ErrIncorrectVerify,
		},
		{
			"headless not boolean",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": 1}`,
			ErrIncorrectHeadless,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigFieldErrorPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			"bad seed url value beats later decode failure",
			`{"seed_urls": ["example.org/news"], "total_articles_to_find_and_parse": 5,
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": 10,
			  "should_verify_certificate": true, "headless_mode": 1}`,
			ErrIncorrectSeedURL,
		},
		{
			"articles decode failure beats later timeout defect",
			`{"seed_urls": ["https://example.org/"], "total_articles_to_find_and_parse": "many",
			  "headers": {"a": "b"}, "encoding": "utf-8", "timeout": "soon",
			  "should_verify_certificate": true, "headless_mode": false}`,
			ErrIncorrectNumberOfArticles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
