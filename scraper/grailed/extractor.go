package grailed

import (
	"errors"
	"fmt"
	"strings"

	"grailed-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// ErrRaggedColumns is returned when the per-field selectors match a
// different number of nodes, e.g. a feed item rendered without a price.
// The mismatch is surfaced instead of silently truncating or padding.
var ErrRaggedColumns = errors.New("field selectors matched differing counts")

// ExtractPostedTimes returns the listing ages with the trailing
// non-breaking-space "ago" marker stripped ("3 days ago" → "3 days").
func ExtractPostedTimes(doc *goquery.Document) []string {
	return doc.Find(PostedTimeCell).Map(func(_ int, s *goquery.Selection) string {
		age, _, _ := strings.Cut(s.Text(), postedAgoSuffix)
		return age
	})
}

func ExtractTitles(doc *goquery.Document) []string {
	return doc.Find(TitleCell).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func ExtractDesigners(doc *goquery.Document) []string {
	return doc.Find(DesignerCell).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func ExtractSizes(doc *goquery.Document) []string {
	return doc.Find(SizeCell).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

func ExtractPrices(doc *goquery.Document) []string {
	return doc.Find(PriceCell).Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
}

// ExtractListingLinks resolves every listing href against the site origin.
// A link node without an href is an extraction failure, not a skipped row.
func ExtractListingLinks(doc *goquery.Document) ([]string, error) {
	var links []string
	var err error

	doc.Find(ListingLinkCell).EachWithBreak(func(i int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			err = fmt.Errorf("listing link %d has no href attribute", i)
			return false
		}
		if !strings.HasPrefix(href, "http") {
			href = SiteOrigin + href
		}
		links = append(links, href)
		return true
	})

	return links, err
}

// ExtractListings runs the six field extractors over the document and zips
// the parallel columns into one record per feed row. Field correspondence
// relies on shared DOM order, so the column lengths must agree.
func ExtractListings(doc *goquery.Document) ([]models.Listing, error) {
	links, err := ExtractListingLinks(doc)
	if err != nil {
		return nil, err
	}

	posted := ExtractPostedTimes(doc)
	titles := ExtractTitles(doc)
	designers := ExtractDesigners(doc)
	sizes := ExtractSizes(doc)
	prices := ExtractPrices(doc)

	n := len(posted)
	for _, count := range []int{len(titles), len(designers), len(sizes), len(prices), len(links)} {
		if count != n {
			return nil, fmt.Errorf(
				"%w: posted=%d titles=%d designers=%d sizes=%d prices=%d links=%d",
				ErrRaggedColumns, len(posted), len(titles), len(designers), len(sizes), len(prices), len(links),
			)
		}
	}

	listings := make([]models.Listing, n)
	for i := 0; i < n; i++ {
		listings[i] = models.Listing{
			PostedTime:  posted[i],
			Title:       titles[i],
			Designer:    designers[i],
			Size:        sizes[i],
			Price:       prices[i],
			ListingLink: links[i],
		}
	}
	return listings, nil
}
