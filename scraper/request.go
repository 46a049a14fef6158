package scraper

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
)

// MakeRequest fetches one page honoring the configured headers, timeout and
// certificate policy. In headless mode the page is rendered in a browser
// instead of fetched directly.
func MakeRequest(ctx context.Context, url string, config *Config) ([]byte, error) {
	if config.HeadlessMode() {
		html, err := fetchRendered(ctx, url, config)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	for name, value := range config.Headers() {
		req.Header.Set(name, value)
	}

	client := &http.Client{}
	if !config.VerifyCertificate() {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request to %s returned status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	return body, nil
}
