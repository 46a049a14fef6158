// Package scrape implements the scrape command: crawl the configured news
// site and persist raw articles with their metadata.
package scrape

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fipl-hse/2024-2-level-ctlr/article"
	"github.com/fipl-hse/2024-2-level-ctlr/internal/logging"
	"github.com/fipl-hse/2024-2-level-ctlr/scraper"
)

type scrapeOptions struct {
	configPath string
	assetsPath string
}

// Cmd represents the scrape command.
var Cmd = NewCommand()

// NewCommand returns a new scrape command instance.
func NewCommand() *cobra.Command {
	opts := &scrapeOptions{}

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Crawl the configured site and store raw articles.",
		Long: `Crawl the seed pages from the scraper configuration, collect article
URLs and store each article as N_raw.txt plus N_meta.json under the assets
directory. The assets directory is wiped first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrape(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "scraper_config.json", "Scraper configuration file")
	cmd.Flags().StringVarP(&opts.assetsPath, "assets", "a", "tmp/articles", "Dataset directory")

	return cmd
}

func runScrape(cmd *cobra.Command, opts *scrapeOptions) error {
	log := logging.Child("scraper")

	config, err := scraper.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	if err := scraper.PrepareEnvironment(opts.assetsPath); err != nil {
		return err
	}

	crawler := scraper.NewCrawler(config)
	if err := crawler.FindArticles(cmd.Context()); err != nil {
		return err
	}

	// Articles get consecutive IDs starting at 1; failed pages are skipped
	// so the dataset stays gap-free.
	nextID := 1
	for _, url := range crawler.URLs() {
		parser := scraper.NewParser(url, nextID, config)
		art, err := parser.Parse(cmd.Context())
		if err != nil {
			log.Warn("article skipped", "url", url, "error", err)
			continue
		}

		if err := article.ToRaw(art, opts.assetsPath); err != nil {
			return err
		}
		if err := article.ToMeta(art, opts.assetsPath); err != nil {
			return err
		}
		log.Info("article stored", "id", nextID, "url", url)
		nextID++
	}

	if nextID == 1 {
		return fmt.Errorf("no articles could be parsed")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d articles in %s\n", nextID-1, opts.assetsPath)
	return nil
}
