package services

import (
	"testing"

	"grailed-scraper/models"

	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"$420", 420, true},
		{"$1,250", 1250, true},
		{"$89.99", 89.99, true},
		{"€300", 300, true},
		{"", 0, false},
		{"SOLD", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParsePrice(tt.raw)
			require.Equal(t, tt.ok, ok)
			require.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestGenerateReport(t *testing.T) {
	listings := []models.Listing{
		{Title: "Hoodie", Designer: "Raf Simons", Price: "$400"},
		{Title: "Sneakers", Designer: "Visvim", Price: "$800"},
		{Title: "Tee", Designer: "Raf Simons", Price: "$120"},
		{Title: "Mystery", Designer: "", Price: "not listed"},
	}

	report := GenerateReport(listings)

	require.Equal(t, 4, report.TotalListings)
	require.InDelta(t, 440.0, report.AveragePrice, 0.001)
	require.InDelta(t, 120.0, report.MinPrice, 0.001)
	require.InDelta(t, 800.0, report.MaxPrice, 0.001)
	require.Equal(t, "Sneakers", report.MostExpensive.Title)
	require.Equal(t, 2, report.ListingsByDesigner["Raf Simons"])
	require.Equal(t, 1, report.ListingsByDesigner["Unknown"])
}

func TestGenerateReportEmpty(t *testing.T) {
	report := GenerateReport(nil)

	require.Zero(t, report.TotalListings)
	require.Zero(t, report.AveragePrice)
	require.Empty(t, report.ListingsByDesigner)
}
