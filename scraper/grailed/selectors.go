package grailed

// CSS selectors used across the scraper. Centralising them makes future
// updates trivial — every one of these is unversioned coupling to Grailed's
// current front-end markup and breaks when the site ships new class names.
const (
	SiteOrigin = "https://grailed.com"

	// Navigation
	CookieAcceptButton = `#onetrust-accept-btn-handler`
	SearchInput        = `#header_search-input`
	SubmitButton       = `button[title='Submit']`

	// Interstitial login modal
	LoginModal = `.ReactModal__Content.ReactModal__Content--after-open.modal.Modal-module__authenticationModal___g7Ufu._hasHeader`

	// The dismiss affordance has no stable class of its own; try the
	// clickable descendants of the modal chrome before falling back to
	// the pointer-offset gesture.
	LoginModalDismiss = LoginModal + ` button[aria-label='Close'], ` + LoginModal + ` header button`

	LoginOverlay = `.ReactModal__Overlay.ReactModal__Overlay--after-open.modal-overlay`

	// Search results feed
	ResultRow       = `.feed-item`
	PostedTimeCell  = `.ListingAge-module__dateAgo___xmM8y`
	TitleCell       = `.ListingMetadata-module__title___Rsj55`
	DesignerCell    = `div.ListingMetadata-module__designerAndSize___lbEdw > p:first-child`
	SizeCell        = `.ListingMetadata-module__size___e9naE`
	PriceCell       = `[data-testid="Current"]`
	ListingLinkCell = `a.listing-item-link`
)

// postedAgoSuffix is the non-breaking-space "ago" marker Grailed appends
// to every listing age ("3 days ago").
const postedAgoSuffix = "\u00a0ago"

// dismissOffsetX is the empirical pixel delta that lands the pointer on
// the modal's dismiss affordance when no stable handle can be found.
const dismissOffsetX = 250
