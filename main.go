package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"grailed-scraper/config"
	"grailed-scraper/models"
	"grailed-scraper/scraper/grailed"
	"grailed-scraper/services"
	"grailed-scraper/storage"
	"grailed-scraper/utils"

	"github.com/spf13/cobra"
)

// QueryProvider supplies the search query when the -s flag is omitted.
// Injected so the interactive prompt can be stubbed out in tests.
type QueryProvider func() (string, error)

func promptQuery() (string, error) {
	fmt.Print("Enter your search query: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

var opts struct {
	search      string
	json        bool
	csv         bool
	yaml        bool
	output      string
	headless    bool
	postgresDSN string
}

var rootCmd = &cobra.Command{
	Use:   "grailed-scraper",
	Short: "Scrapes Grailed search results into a console table, JSON, CSV or YAML.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return run(promptQuery)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search query to scrape for")
	rootCmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output as JSON")
	rootCmd.Flags().BoolVarP(&opts.csv, "csv", "c", false, "Output as CSV")
	rootCmd.Flags().BoolVarP(&opts.yaml, "yaml", "y", false, "Output as YAML")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file name")
	rootCmd.Flags().BoolVar(&opts.headless, "headless", false, "Run Chrome in headless mode")
	rootCmd.Flags().StringVar(&opts.postgresDSN, "postgres-dsn", "", "Also save listings to this PostgreSQL database")
}

func run(provider QueryProvider) error {
	cfg := config.DefaultConfig()
	cfg.Headless = opts.headless
	cfg.PostgresDSN = opts.postgresDSN

	query := opts.search
	if query == "" {
		q, err := provider()
		if err != nil {
			return fmt.Errorf("could not read search query: %w", err)
		}
		query = q
	}

	session, err := grailed.NewSession(cfg)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Search(query); err != nil {
		return err
	}

	doc, err := session.Snapshot()
	if err != nil {
		return err
	}

	listings, err := grailed.ExtractListings(doc)
	if err != nil {
		return err
	}
	utils.Success("Scraped %d listings", len(listings))

	format := storage.SelectFormat(opts.json, opts.csv, opts.yaml)
	base := opts.output
	if base == "" {
		base = strings.ReplaceAll(query, " ", "_")
	}

	writer := storage.NewWriter(format, base)
	filename, err := writer.Write(listings)
	if err != nil {
		return err
	}
	if filename != "" {
		utils.Success("Saved %d listings → %s", len(listings), filename)
	} else {
		services.PrintReport(services.GenerateReport(listings))
	}

	if cfg.PostgresDSN != "" {
		if err := saveToPostgres(cfg.PostgresDSN, listings); err != nil {
			return err
		}
		utils.Success("Saved %d listings to PostgreSQL", len(listings))
	}

	return nil
}

func saveToPostgres(dsn string, listings []models.Listing) error {
	pg, err := storage.NewPostgresWriter(dsn)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.EnsureSchema(); err != nil {
		return err
	}
	return pg.WriteBatch(listings)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
}
