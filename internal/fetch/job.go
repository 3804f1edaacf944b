// Package fetch - job.go turns a job posting URL into plain text,
// using board-specific selectors and an optional headless-browser
// fallback for JavaScript-rendered pages.
package fetch

import (
	"context"
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	}
	return PlatformUnknown
}

// JobPostingSelectors returns content selectors for the given platform,
// most specific first, ending with generic fallbacks.
func JobPostingSelectors(platform Platform) []string {
	var selectors []string
	switch platform {
	case PlatformGreenhouse:
		selectors = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		selectors = []string{".posting-page", ".posting", ".content"}
	case PlatformWorkday:
		selectors = []string{"[data-automation-id='jobPostingDescription']", ".job-description"}
	}
	return append(selectors, []string{
		".job-description",
		".job-content",
		"#job-description",
		".posting-content",
		".job-details",
		"[data-testid='job-description']",
		"main",
		"article",
		".content",
		"#content",
	}...)
}

// JobText fetches a posting URL and extracts its text. When the plain
// HTTP result looks like an unrendered SPA shell and useBrowser is set,
// the page is re-rendered in a headless browser.
func JobText(ctx context.Context, urlStr string, opts *Options, useBrowser, verbose bool) (string, error) {
	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	selectors := JobPostingSelectors(DetectPlatform(urlStr))
	text, err := ExtractMainText(result.HTML, selectors)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
	}

	if useBrowser && ShouldUseBrowser(text) {
		timeout := DefaultTimeout
		if opts != nil && opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		// WithBrowser already reports a typed error carrying the URL.
		html, err := WithBrowser(ctx, urlStr, timeout, verbose)
		if err != nil {
			return "", err
		}
		if text, err = ExtractMainText(html, selectors); err != nil {
			return "", &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
		}
	}

	return text, nil
}
