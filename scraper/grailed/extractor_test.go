package grailed

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const feedFixture = `
<html><body>
<div class="feed-row-wrapper">
  <div class="feed-item">
    <a class="listing-item-link" href="/listings/111-raf-simons-hoodie">
      <span class="ListingAge-module__dateAgo___xmM8y">3 days&nbsp;ago</span>
      <p class="ListingMetadata-module__title___Rsj55">Bomber Hoodie</p>
      <div class="ListingMetadata-module__designerAndSize___lbEdw">
        <p>Raf Simons</p>
        <p class="ListingMetadata-module__size___e9naE">M</p>
      </div>
      <span data-testid="Current">$420</span>
    </a>
  </div>
  <div class="feed-item">
    <a class="listing-item-link" href="/listings/222-margiela-gats">
      <span class="ListingAge-module__dateAgo___xmM8y">about 1 hour&nbsp;ago</span>
      <p class="ListingMetadata-module__title___Rsj55">GAT Sneakers</p>
      <div class="ListingMetadata-module__designerAndSize___lbEdw">
        <p>Maison Margiela</p>
        <p class="ListingMetadata-module__size___e9naE">US 10</p>
      </div>
      <span data-testid="Current">$310</span>
    </a>
  </div>
  <div class="feed-item">
    <a class="listing-item-link" href="https://grailed.com/listings/333-visvim-fbt">
      <span class="ListingAge-module__dateAgo___xmM8y">14 days&nbsp;ago</span>
      <p class="ListingMetadata-module__title___Rsj55">FBT Shaman</p>
      <div class="ListingMetadata-module__designerAndSize___lbEdw">
        <p>Visvim</p>
        <p class="ListingMetadata-module__size___e9naE">US 9</p>
      </div>
      <span data-testid="Current">$850</span>
    </a>
  </div>
</div>
</body></html>`

func parseFixture(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractListings(t *testing.T) {
	doc := parseFixture(t, feedFixture)

	listings, err := ExtractListings(doc)
	require.NoError(t, err)
	require.Len(t, listings, 3)

	require.Equal(t, "Bomber Hoodie", listings[0].Title)
	require.Equal(t, "Raf Simons", listings[0].Designer)
	require.Equal(t, "M", listings[0].Size)
	require.Equal(t, "$420", listings[0].Price)

	require.Equal(t, "GAT Sneakers", listings[1].Title)
	require.Equal(t, "Maison Margiela", listings[1].Designer)

	require.Equal(t, "FBT Shaman", listings[2].Title)
	require.Equal(t, "US 9", listings[2].Size)
}

func TestExtractPostedTimesStripsAgoSuffix(t *testing.T) {
	doc := parseFixture(t, feedFixture)

	posted := ExtractPostedTimes(doc)
	require.Equal(t, []string{"3 days", "about 1 hour", "14 days"}, posted)
}

func TestExtractListingLinksResolvesOrigin(t *testing.T) {
	doc := parseFixture(t, feedFixture)

	links, err := ExtractListingLinks(doc)
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://grailed.com/listings/111-raf-simons-hoodie",
		"https://grailed.com/listings/222-margiela-gats",
		"https://grailed.com/listings/333-visvim-fbt",
	}, links)
}

func TestExtractListingLinksMissingHref(t *testing.T) {
	doc := parseFixture(t, `
		<div class="feed-item">
			<a class="listing-item-link">no href here</a>
		</div>`)

	_, err := ExtractListingLinks(doc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "href")
}

func TestExtractListingsRaggedColumns(t *testing.T) {
	// Second row renders without a price; the mismatch must surface as an
	// explicit error instead of a silently truncated record set.
	doc := parseFixture(t, `
	<div class="feed-item">
		<a class="listing-item-link" href="/listings/1">
			<span class="ListingAge-module__dateAgo___xmM8y">2 days&nbsp;ago</span>
			<p class="ListingMetadata-module__title___Rsj55">One</p>
			<div class="ListingMetadata-module__designerAndSize___lbEdw">
				<p>Designer A</p>
				<p class="ListingMetadata-module__size___e9naE">S</p>
			</div>
			<span data-testid="Current">$100</span>
		</a>
	</div>
	<div class="feed-item">
		<a class="listing-item-link" href="/listings/2">
			<span class="ListingAge-module__dateAgo___xmM8y">5 days&nbsp;ago</span>
			<p class="ListingMetadata-module__title___Rsj55">Two</p>
			<div class="ListingMetadata-module__designerAndSize___lbEdw">
				<p>Designer B</p>
				<p class="ListingMetadata-module__size___e9naE">L</p>
			</div>
		</a>
	</div>`)

	_, err := ExtractListings(doc)
	require.ErrorIs(t, err, ErrRaggedColumns)
}

func TestExtractListingsEmptyFeed(t *testing.T) {
	doc := parseFixture(t, `<html><body><div class="feed"></div></body></html>`)

	listings, err := ExtractListings(doc)
	require.NoError(t, err)
	require.Empty(t, listings)
}
