package services

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"grailed-scraper/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report summarizes one scrape of the search feed.
type Report struct {
	TotalListings      int
	AveragePrice       float64
	MinPrice           float64
	MaxPrice           float64
	MostExpensive      models.Listing
	ListingsByDesigner map[string]int
}

// GenerateReport computes price statistics and per-designer counts over
// the scraped feed. Listings whose price does not parse are counted but
// excluded from the price statistics.
func GenerateReport(listings []models.Listing) Report {
	report := Report{
		TotalListings:      len(listings),
		ListingsByDesigner: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	var (
		priceSum   float64
		priceCount int
		maxPrice   = -1.0
		minPrice   = math.MaxFloat64
	)

	for _, l := range listings {
		report.ListingsByDesigner[normalizeDesigner(l.Designer)]++

		price, ok := ParsePrice(l.Price)
		if !ok {
			continue
		}

		priceSum += price
		priceCount++

		if price > maxPrice {
			maxPrice = price
			report.MostExpensive = l
		}
		if price < minPrice {
			minPrice = price
		}
	}

	if priceCount > 0 {
		report.AveragePrice = priceSum / float64(priceCount)
		report.MinPrice = minPrice
		report.MaxPrice = maxPrice
	}

	return report
}

// PrintReport renders the report tables to stdout.
func PrintReport(report Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Search Feed Summary")
	t.AppendRows([]table.Row{
		{"Total Listings", report.TotalListings},
		{"Average Price", formatPrice(report.AveragePrice)},
		{"Minimum Price", formatPrice(report.MinPrice)},
		{"Maximum Price", formatPrice(report.MaxPrice)},
	})
	if report.MostExpensive.Title != "" {
		t.AppendSeparator()
		t.AppendRow(table.Row{"Most Expensive", report.MostExpensive.Title})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	d := table.NewWriter()
	d.SetOutputMirror(os.Stdout)
	d.AppendHeader(table.Row{"Designer", "Listings"})
	for _, designer := range sortedDesigners(report.ListingsByDesigner) {
		d.AppendRow(table.Row{designer, report.ListingsByDesigner[designer]})
	}
	d.SetStyle(table.StyleRounded)
	d.Render()
}

// ParsePrice reads the leading amount out of a raw price string such as
// "$1,250" or "$45". The second return is false when nothing parses.
func ParsePrice(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", "€", "", "£", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if fields := strings.Fields(cleaned); len(fields) > 0 {
		cleaned = fields[0]
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func formatPrice(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 2, 64)
}

func normalizeDesigner(designer string) string {
	designer = strings.TrimSpace(designer)
	if designer == "" {
		return "Unknown"
	}
	return designer
}

func sortedDesigners(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
