package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f4ah6o/postindex-go/internal/content"
)

func unit(slug string, fields map[string]any) content.ContentUnit {
	return content.ContentUnit{Slug: slug, FrontMatter: fields}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		unit       content.ContentUnit
		wantRecord *content.IndexRecord
		wantReason content.SkipReason
	}{
		{
			name:       "valid",
			unit:       unit("01-post", map[string]any{"title": "A", "summary": "B"}),
			wantRecord: &content.IndexRecord{Title: "A", Summary: "B", URL: "/blog/01-post"},
		},
		{
			name: "url field in front matter is ignored",
			unit: unit("real-slug", map[string]any{"title": "A", "summary": "B", "url": "/elsewhere"}),
			wantRecord: &content.IndexRecord{
				Title: "A", Summary: "B", URL: "/blog/real-slug",
			},
		},
		{
			name: "markup passes through verbatim",
			unit: unit("p", map[string]any{"title": "<b>C#</b> & .NET", "summary": "`Span<T>` *fast*"}),
			wantRecord: &content.IndexRecord{
				Title: "<b>C#</b> & .NET", Summary: "`Span<T>` *fast*", URL: "/blog/p",
			},
		},
		{
			name:       "draft false is indexed",
			unit:       unit("p", map[string]any{"title": "A", "summary": "B", "draft": false}),
			wantRecord: &content.IndexRecord{Title: "A", Summary: "B", URL: "/blog/p"},
		},
		{
			name:       "draft as string is not coerced",
			unit:       unit("p", map[string]any{"title": "A", "summary": "B", "draft": "true"}),
			wantRecord: &content.IndexRecord{Title: "A", Summary: "B", URL: "/blog/p"},
		},
		{
			name:       "missing summary",
			unit:       unit("02-draft", map[string]any{"title": "C"}),
			wantReason: content.ReasonMissingSummary,
		},
		{
			name:       "missing title",
			unit:       unit("p", map[string]any{"summary": "B"}),
			wantReason: content.ReasonMissingTitle,
		},
		{
			name:       "empty title",
			unit:       unit("p", map[string]any{"title": "", "summary": "B"}),
			wantReason: content.ReasonMissingTitle,
		},
		{
			name:       "whitespace summary",
			unit:       unit("p", map[string]any{"title": "A", "summary": "  \n"}),
			wantReason: content.ReasonMissingSummary,
		},
		{
			name:       "null title",
			unit:       unit("p", map[string]any{"title": nil, "summary": "B"}),
			wantReason: content.ReasonMissingTitle,
		},
		{
			name:       "numeric title",
			unit:       unit("p", map[string]any{"title": 42, "summary": "B"}),
			wantReason: content.ReasonTitleNotString,
		},
		{
			name:       "list summary",
			unit:       unit("p", map[string]any{"title": "A", "summary": []any{"B"}}),
			wantReason: content.ReasonSummaryNotString,
		},
		{
			name:       "draft true",
			unit:       unit("p", map[string]any{"title": "A", "summary": "B", "draft": true}),
			wantReason: content.ReasonDraft,
		},
		{
			name: "extract issue wins",
			unit: content.ContentUnit{
				Slug:         "p",
				FrontMatter:  map[string]any{},
				ExtractIssue: content.ReasonMalformed,
			},
			wantReason: content.ReasonMalformed,
		},
		{
			name:       "empty front matter",
			unit:       unit("p", map[string]any{}),
			wantReason: content.ReasonMissingTitle,
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.unit)
			if tt.wantRecord != nil {
				require.True(t, got.Included())
				assert.Nil(t, got.Skipped)
				assert.Equal(t, *tt.wantRecord, *got.Record)
				return
			}
			require.False(t, got.Included())
			require.NotNil(t, got.Skipped)
			assert.Equal(t, tt.unit.Slug, got.Skipped.Slug)
			assert.Equal(t, tt.wantReason, got.Skipped.Reason)
		})
	}
}

func TestValidate_Options(t *testing.T) {
	draft := unit("wip", map[string]any{"title": "A", "summary": "B", "draft": true})

	got := New(WithDrafts(true), WithURLPrefix("/posts/")).Validate(draft)
	require.True(t, got.Included())
	assert.Equal(t, "/posts/wip", got.Record.URL)
}

func TestURL(t *testing.T) {
	v := New()
	for _, slug := range []string{"a", "01-post", "with space", "ünïcode"} {
		assert.Equal(t, DefaultURLPrefix+slug, v.URL(slug))
	}
}
