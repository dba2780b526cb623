package extraction

import (
	"strings"
	"unicode"
)

// MinReadableChars is the minimum number of non-whitespace characters an
// extraction result must contain before it may be forwarded to the analyzer.
const MinReadableChars = 10

// KeywordHits groups the categorized keyword matches the collaborator reports.
type KeywordHits struct {
	Technical    []string `json:"technical"`
	Professional []string `json:"professional"`
	Education    []string `json:"education"`
	Experience   []string `json:"experience"`
	All          []string `json:"all"`
}

// Result is the extraction collaborator's response contract: extracted plain
// text, a confidence value, and categorized keyword hits.
type Result struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Keywords   KeywordHits `json:"keywords"`
}

// CheckReadable validates the readable-text minimum on a result. It returns a
// NoReadableTextError when the trimmed text has fewer than MinReadableChars
// non-whitespace characters.
func (r *Result) CheckReadable() error {
	n := 0
	for _, c := range strings.TrimSpace(r.Text) {
		if !unicode.IsSpace(c) {
			n++
		}
	}
	if n < MinReadableChars {
		return &NoReadableTextError{Length: n}
	}
	return nil
}

// Document identifies an uploaded document to extract text from. The
// marketplace's upload flow stores files externally and passes a reference.
type Document struct {
	URL         string `json:"url" validate:"required,url"`
	ContentType string `json:"content_type,omitempty"`
}
