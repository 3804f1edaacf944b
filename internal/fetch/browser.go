// Package fetch - browser.go renders JavaScript-driven job boards in a
// headless browser. Workday-style boards serve a near-empty shell to plain
// HTTP clients; rendering the page first recovers the posting body.
package fetch

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// minPostingLength is the shortest extracted text accepted as a real
	// posting. Anything shorter is treated as an unrendered SPA shell.
	minPostingLength = 500

	// renderSettle gives client-side code time to inject the posting body
	// after the document is ready.
	renderSettle = 3 * time.Second

	// bannerSettle waits out the layout shift after a consent banner is
	// dismissed.
	bannerSettle = time.Second
)

// consentButtons matches the accept buttons job boards put in front of
// the posting.
const consentButtons = `button[id*="accept"], button[class*="accept"], button:contains("OK"), button:contains("Accept")`

// ShouldUseBrowser reports whether extracted posting text looks like an
// unrendered SPA shell rather than a real job description.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minPostingLength
}

// WithBrowser renders a posting URL in headless Chrome and returns the
// rendered HTML. Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, urlStr string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[BROWSER] Rendering job posting: %s", urlStr)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Consent banners sit above the posting on most boards; a
			// missing button is not an error.
			_ = chromedp.Click(consentButtons, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(bannerSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	if verbose {
		log.Printf("[BROWSER] Rendered %d bytes of HTML", len(html))
	}
	return html, nil
}
