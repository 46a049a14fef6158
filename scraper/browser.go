package scraper

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

// fetchRendered loads the page in a headless Chrome session and returns the
// rendered document. Used for sites that assemble articles client-side.
func fetchRendered(ctx context.Context, url string, config *Config) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
	)
	if !config.VerifyCertificate() {
		opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	runCtx, cancel := context.WithTimeout(browserCtx, config.Timeout())
	defer cancel()

	var rendered string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &rendered),
	)
	if err != nil {
		return "", fmt.Errorf("headless fetch of %s failed: %w", url, err)
	}
	return rendered, nil
}
