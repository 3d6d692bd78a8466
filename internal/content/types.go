// Package content defines the values that flow through the indexing pipeline:
// content units discovered on disk, the records written to the index artifact,
// and the per-unit outcome of validation.
package content

// ContentUnit is one discoverable post: a subdirectory of the content root
// that holds a primary document. It only lives for the duration of a run.
type ContentUnit struct {
	// Slug is the name of the containing directory.
	Slug string
	// DocumentPath is the path to the unit's primary document.
	DocumentPath string
	// FrontMatter holds the parsed header fields. Empty when the document has
	// no header block or could not be read.
	FrontMatter map[string]any
	// Body is the document text after the header block.
	Body string
	// ExtractIssue is set when the document could not be read, decoded or
	// parsed, or had no front matter. The unit still goes to validation,
	// which reports this reason instead of a missing field.
	ExtractIssue SkipReason
}

// IndexRecord is the unit of output consumed by the site's search widget.
// Field order here is the field order in the JSON artifact.
type IndexRecord struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// SkipReason explains why a unit produced no record.
type SkipReason string

const (
	ReasonNoDocument       SkipReason = "no primary document"
	ReasonUnreadable       SkipReason = "unreadable document"
	ReasonMalformed        SkipReason = "malformed front matter"
	ReasonNoFrontMatter    SkipReason = "no front matter"
	ReasonMissingTitle     SkipReason = "missing title"
	ReasonMissingSummary   SkipReason = "missing summary"
	ReasonTitleNotString   SkipReason = "title is not a string"
	ReasonSummaryNotString SkipReason = "summary is not a string"
	ReasonDraft            SkipReason = "draft"
)

// Skip names a unit that was excluded from the index and why.
type Skip struct {
	Slug   string     `json:"slug"`
	Reason SkipReason `json:"reason"`
}

// Outcome is the result of validating one unit: exactly one of Record or
// Skipped is set.
type Outcome struct {
	Record  *IndexRecord
	Skipped *Skip
}

// Included reports whether the outcome carries a record.
func (o Outcome) Included() bool {
	return o.Record != nil
}

// Include wraps a record in an Outcome.
func Include(r IndexRecord) Outcome {
	return Outcome{Record: &r}
}

// Exclude wraps a skip in an Outcome.
func Exclude(slug string, reason SkipReason) Outcome {
	return Outcome{Skipped: &Skip{Slug: slug, Reason: reason}}
}
