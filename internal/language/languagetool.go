package language

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/jonathan/cv-quality/internal/types"
)

const (
	// DefaultEndpoint is the public LanguageTool check endpoint. Self-hosted
	// instances expose the same path.
	DefaultEndpoint = "https://api.languagetool.org/v2/check"
	// DefaultLanguage asks the service to auto-detect the document language.
	DefaultLanguage = "auto"

	checkTimeout = 60 * time.Second
)

// LanguageToolChecker calls a LanguageTool-compatible HTTP endpoint.
type LanguageToolChecker struct {
	client   *resty.Client
	endpoint string
	language string
}

// NewLanguageToolChecker creates a checker for the given endpoint and
// language code. Empty arguments select the public endpoint and language
// auto-detection.
func NewLanguageToolChecker(endpoint, language string) *LanguageToolChecker {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &LanguageToolChecker{
		client:   resty.New().SetTimeout(checkTimeout),
		endpoint: endpoint,
		language: language,
	}
}

// Check submits the text and maps the response onto IssueMatch values.
func (c *LanguageToolChecker) Check(ctx context.Context, text string) ([]types.IssueMatch, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"text":     text,
			"language": c.language,
		}).
		Post(c.endpoint)
	if err != nil {
		return nil, &CheckError{Message: "request failed", Cause: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &CheckError{Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), resp.String())}
	}
	return ParseMatches(resp.String())
}

// ParseMatches maps a LanguageTool JSON response body onto IssueMatch
// values. Only the offset is required per match; every other field is
// probed individually so a sparse response still parses.
func ParseMatches(body string) ([]types.IssueMatch, error) {
	matchesJSON := gjson.Get(body, "matches")
	if !matchesJSON.Exists() {
		return nil, &CheckError{Message: "response has no matches field"}
	}

	var matches []types.IssueMatch
	matchesJSON.ForEach(func(_, m gjson.Result) bool {
		issue := types.IssueMatch{Offset: int(m.Get("offset").Int())}

		if v := m.Get("length"); v.Exists() {
			length := int(v.Int())
			issue.Length = &length
		}
		if v := m.Get("rule.id"); v.Exists() {
			ruleID := v.String()
			issue.RuleID = &ruleID
		}
		if v := m.Get("message"); v.Exists() {
			message := v.String()
			issue.Message = &message
		}
		m.Get("replacements").ForEach(func(_, r gjson.Result) bool {
			issue.Replacements = append(issue.Replacements, r.Get("value").String())
			return true
		})
		if v := m.Get("rule.issueType"); v.Exists() {
			issueType := v.String()
			issue.IssueType = &issueType
		}
		if v := m.Get("context.text"); v.Exists() {
			context := v.String()
			issue.Context = &context
		}

		matches = append(matches, issue)
		return true
	})
	return matches, nil
}
