package grailed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"grailed-scraper/config"
	"grailed-scraper/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"
)

var (
	// ErrSearchBarUnavailable is the one fatal navigation failure: if the
	// search input cannot be focused there is nothing left to scrape.
	ErrSearchBarUnavailable = errors.New("could not interact with the search bar")

	// ErrOverlayStillPresent means a dismissal attempt ran its full
	// gesture but the login overlay never went away.
	ErrOverlayStillPresent = errors.New("login overlay still present after dismissal")
)

// Session owns one browser for the lifetime of a run. All interaction is
// synchronous; every wait is bounded by a fixed timeout from the config.
//
// The navigation steps are held as func fields so the swallow-or-abort
// policy in Search can be exercised without a browser; NewSession wires
// them to the chromedp-backed implementations.
type Session struct {
	cfg         *config.Config
	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	closeOnce   sync.Once

	open    func() error
	cookies func() error
	focus   func() error
	dismiss func() error
	submit  func(query string) error
	results func() error
}

func NewSession(cfg *config.Config) (*Session, error) {
	utils.Info("Launching Chrome browser...")
	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.StealthOpts(cfg.Headless)...,
	)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	s := &Session{
		cfg:         cfg,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
	}
	s.open = s.openSite
	s.cookies = s.acceptCookies
	s.focus = s.focusSearchBar
	s.dismiss = s.dismissLoginModal
	s.submit = s.submitSearch
	s.results = s.waitForResults

	utils.Success("Browser ready")
	return s, nil
}

// Close tears the browser session down. Safe to call more than once; the
// teardown itself runs exactly once regardless of which path got here.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		utils.Info("Closing browser...")
		if s.tabCancel != nil {
			s.tabCancel()
		}
		if s.allocCancel != nil {
			s.allocCancel()
		}
	})
}

// Search drives the page from the site root to rendered search results:
//
//	Opened → CookieHandled → SearchFocused → {ModalAbsent | ModalDismissed}
//	       → Submitted → ResultsReady
//
// Cookie, modal and results-wait failures are logged and swallowed; only
// a failure to focus the search bar (or submit through it) aborts the run.
func (s *Session) Search(query string) error {
	if err := s.open(); err != nil {
		return err
	}

	if err := s.cookies(); err != nil {
		utils.Warn("Cookie banner did not appear within the timeout")
	}

	if err := s.focus(); err != nil {
		return err
	}

	if err := utils.Attempt(s.cfg.ModalAttempts, s.dismiss); err != nil {
		utils.Warn("Login modal could not be dismissed: %v", err)
	}

	if err := s.submit(query); err != nil {
		return err
	}

	if err := s.results(); err != nil {
		utils.Warn("Timed out waiting for more than %d results; extracting what loaded", s.cfg.MinResults)
	}
	return nil
}

func (s *Session) openSite() error {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Navigate(s.cfg.BaseURL),
		utils.HideWebDriver(),
	)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", s.cfg.BaseURL, err)
	}

	utils.RandomDelay(s.cfg.MinDelay, s.cfg.MaxDelay)
	return nil
}

// acceptCookies clicks the consent banner away. Best-effort: the caller
// swallows a banner that never shows up within the timeout.
func (s *Session) acceptCookies() error {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.CookieTimeout)
	defer cancel()

	return chromedp.Run(ctx,
		chromedp.WaitVisible(CookieAcceptButton, chromedp.ByQuery),
		chromedp.DoubleClick(CookieAcceptButton, chromedp.ByQuery),
	)
}

// focusSearchBar activates the header search input. This is the one fatal
// precondition: any failure here ends the run.
func (s *Session) focusSearchBar() error {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.SearchTimeout)
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.WaitVisible(SearchInput, chromedp.ByQuery),
		chromedp.Click(SearchInput, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchBarUnavailable, err)
	}
	return nil
}

// dismissLoginModal is one dismissal attempt. Modal absence within the
// probe timeout counts as success, so the happy path returns on the first
// attempt without exhausting the loop.
func (s *Session) dismissLoginModal() error {
	probeCtx, cancel := context.WithTimeout(s.tabCtx, s.cfg.ModalTimeout)
	defer cancel()

	if err := chromedp.Run(probeCtx, chromedp.WaitReady(LoginModal, chromedp.ByQuery)); err != nil {
		utils.Info("Login modal did not appear within the timeout")
		return nil
	}

	if err := s.clickModalDismiss(); err != nil {
		// No stable handle on the close control; fall back to the
		// empirical pointer-offset gesture.
		s.offsetClickModal()
	}

	// Escape chases off any residual overlay the click left behind.
	escCtx, cancelEsc := context.WithTimeout(s.tabCtx, s.cfg.ModalTimeout)
	defer cancelEsc()
	if err := chromedp.Run(escCtx, chromedp.KeyEvent(kb.Escape)); err != nil {
		utils.Warn("Could not send escape key: %v", err)
	}

	waitCtx, cancelWait := context.WithTimeout(s.tabCtx, s.cfg.OverlayTimeout)
	defer cancelWait()

	if err := chromedp.Run(waitCtx, chromedp.WaitNotPresent(LoginOverlay, chromedp.ByQuery)); err != nil {
		return ErrOverlayStillPresent
	}
	return nil
}

func (s *Session) clickModalDismiss() error {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.ModalTimeout)
	defer cancel()

	return chromedp.Run(ctx, chromedp.Click(LoginModalDismiss, chromedp.ByQuery))
}

// offsetClickModal replays the gesture the site tolerates when the dismiss
// control cannot be addressed directly: move the pointer onto the modal,
// pause, slide it a fixed delta to the right, pause, click.
func (s *Session) offsetClickModal() {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.OverlayTimeout)
	defer cancel()

	var rect struct {
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}

	err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (!el) return {x: 0, y: 0, width: 0, height: 0};
		const r = el.getBoundingClientRect();
		return {x: r.x, y: r.y, width: r.width, height: r.height};
	})()`, LoginModal), &rect))
	if err != nil || rect.Width == 0 {
		utils.Warn("Could not locate login modal for offset click")
		return
	}

	centerX := rect.X + rect.Width/2
	centerY := rect.Y + rect.Height/2

	err = chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MouseMoved, centerX, centerY).Do(ctx)
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return input.DispatchMouseEvent(input.MouseMoved, centerX+dismissOffsetX, centerY).Do(ctx)
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.MouseClickXY(centerX+dismissOffsetX, centerY),
	)
	if err != nil {
		utils.Warn("Offset click on login modal failed: %v", err)
	}
}

// submitSearch performs click → type → submit as one action sequence so
// intermediate re-renders cannot desynchronize the search widget.
func (s *Session) submitSearch(query string) error {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Click(SearchInput, chromedp.ByQuery),
		chromedp.SendKeys(SearchInput, query, chromedp.ByQuery),
		chromedp.Click(SubmitButton, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSearchBarUnavailable, err)
	}
	return nil
}

// waitForResults polls until the feed holds more than MinResults rows.
// On timeout the caller extracts however many rows loaded.
func (s *Session) waitForResults() error {
	var ready bool
	expr := fmt.Sprintf(`document.querySelectorAll(%q).length > %d`, ResultRow, s.cfg.MinResults)

	err := chromedp.Run(s.tabCtx,
		chromedp.Poll(expr, &ready, chromedp.WithPollingTimeout(s.cfg.ResultsTimeout)),
	)
	if err != nil {
		return err
	}
	utils.Success("Result feed exceeded %d rows", s.cfg.MinResults)
	return nil
}

// Snapshot parses the rendered page into a document for extraction. The
// document outlives the session; the browser can be closed afterwards.
func (s *Session) Snapshot() (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(s.tabCtx, s.cfg.RequestTimeout)
	defer cancel()

	var html string
	if err := chromedp.Run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("could not read page source: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("could not parse page source: %w", err)
	}
	return doc, nil
}
