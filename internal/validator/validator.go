// Package validator decides whether a content unit qualifies for the index
// and maps qualifying units to index records.
// A unit qualifies when its front matter holds non-empty string values for
// every required field and it is not marked as a draft.
package validator

import (
	"strings"

	"github.com/f4ah6o/postindex-go/internal/content"
)

// DefaultURLPrefix is prepended to a unit's slug to form its record URL.
const DefaultURLPrefix = "/blog/"

// requiredField pairs a front matter key with the reasons reported when it is
// absent or has the wrong type.
type requiredField struct {
	key       string
	missing   content.SkipReason
	notString content.SkipReason
}

var requiredFields = []requiredField{
	{key: "title", missing: content.ReasonMissingTitle, notString: content.ReasonTitleNotString},
	{key: "summary", missing: content.ReasonMissingSummary, notString: content.ReasonSummaryNotString},
}

// Validator maps content units to index records.
type Validator struct {
	urlPrefix     string
	includeDrafts bool
}

// Option configures a Validator.
type Option func(*Validator)

// WithURLPrefix overrides DefaultURLPrefix.
func WithURLPrefix(prefix string) Option {
	return func(v *Validator) {
		v.urlPrefix = prefix
	}
}

// WithDrafts makes units with `draft: true` eligible for the index.
func WithDrafts(include bool) Option {
	return func(v *Validator) {
		v.includeDrafts = include
	}
}

// New creates a new Validator instance.
func New(opts ...Option) *Validator {
	v := &Validator{urlPrefix: DefaultURLPrefix}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate returns Included with a record, or Skipped with the first reason
// the unit fails. Title and summary are copied verbatim. The URL is always
// the prefix joined with the slug; a `url` key in the front matter is ignored.
func (v *Validator) Validate(unit content.ContentUnit) content.Outcome {
	if unit.ExtractIssue != "" {
		return content.Exclude(unit.Slug, unit.ExtractIssue)
	}

	if !v.includeDrafts && isDraft(unit.FrontMatter) {
		return content.Exclude(unit.Slug, content.ReasonDraft)
	}

	values := make(map[string]string, len(requiredFields))
	for _, field := range requiredFields {
		raw, ok := unit.FrontMatter[field.key]
		if !ok || raw == nil {
			return content.Exclude(unit.Slug, field.missing)
		}
		s, ok := raw.(string)
		if !ok {
			return content.Exclude(unit.Slug, field.notString)
		}
		if strings.TrimSpace(s) == "" {
			return content.Exclude(unit.Slug, field.missing)
		}
		values[field.key] = s
	}

	return content.Include(content.IndexRecord{
		Title:   values["title"],
		Summary: values["summary"],
		URL:     v.URL(unit.Slug),
	})
}

// URL returns the record URL for a slug.
func (v *Validator) URL(slug string) string {
	return v.urlPrefix + slug
}

// isDraft only honours a boolean true; strings such as "yes" are not coerced.
func isDraft(fields map[string]any) bool {
	draft, ok := fields["draft"].(bool)
	return ok && draft
}
