// Package extractor reads a content unit's primary document and splits it into
// front matter fields and body text. YAML (---) and TOML (+++) headers are
// recognised; documents without a header yield an empty field map.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/f4ah6o/postindex-go/internal/content"
)

// ErrInvalidEncoding is returned by Decode for bytes that are neither UTF-8
// nor BOM-marked UTF-16.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// ParseError reports a front matter block that was found but could not be
// decoded.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed front matter: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed primary document.
type Document struct {
	// Fields holds the top-level front matter keys. Never nil.
	Fields map[string]any
	// Body is the text after the front matter block.
	Body string
	// HasFrontMatter is false when the document had no header block.
	HasFrontMatter bool
}

var formats = []*frontmatter.Format{
	{Start: "---", End: "---", Unmarshal: yaml.Unmarshal},
	{Start: "+++", End: "+++", Unmarshal: toml.Unmarshal},
}

// Parse splits document text into front matter and body. It does not touch
// the filesystem. A document with no header block is not an error.
func Parse(text string) (*Document, error) {
	var fields map[string]any
	body, err := frontmatter.MustParse(strings.NewReader(text), &fields, formats...)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return &Document{Fields: map[string]any{}, Body: text}, nil
	}
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	if fields == nil {
		fields = map[string]any{}
	}
	return &Document{Fields: fields, Body: string(body), HasFrontMatter: true}, nil
}

// Decode converts raw document bytes to text. A UTF-8 byte order mark is
// stripped and UTF-16 documents with a byte order mark are transcoded.
func Decode(raw []byte) (string, error) {
	utf16 := bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) || bytes.HasPrefix(raw, []byte{0xFF, 0xFE})
	if !utf16 && !utf8.Valid(raw) {
		return "", ErrInvalidEncoding
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}
	return string(decoded), nil
}

// Extractor fills in front matter for scanned units.
type Extractor struct{}

// New creates a new Extractor instance.
func New() *Extractor {
	return &Extractor{}
}

// Extract reads the unit's document and returns the unit with FrontMatter and
// Body populated. Read, decode and parse failures are recorded as
// ExtractIssue with an empty field map; they never abort the run.
func (e *Extractor) Extract(unit content.ContentUnit) content.ContentUnit {
	unit.FrontMatter = map[string]any{}

	raw, err := os.ReadFile(unit.DocumentPath)
	if err != nil {
		unit.ExtractIssue = content.ReasonUnreadable
		return unit
	}

	text, err := Decode(raw)
	if err != nil {
		unit.ExtractIssue = content.ReasonUnreadable
		return unit
	}

	doc, err := Parse(text)
	if err != nil {
		unit.ExtractIssue = content.ReasonMalformed
		unit.Body = text
		return unit
	}

	if !doc.HasFrontMatter {
		unit.ExtractIssue = content.ReasonNoFrontMatter
	}
	unit.FrontMatter = doc.Fields
	unit.Body = doc.Body
	return unit
}
