package extract

import (
	"unicode/utf8"

	"github.com/matzehuels/orgchart/pkg/company"
)

// SampleLoadedText is reported as extracted text when sample data stands in
// for a document.
const SampleLoadedText = "Professional sample data loaded"

// PreviewLimit is how many characters of extracted text are returned.
const PreviewLimit = 500

// Response is the /upload success body.
type Response struct {
	Success       bool             `json:"success"`
	Companies     []company.Record `json:"companies"`
	ExtractedText string           `json:"extracted_text,omitempty"`
}

// ErrorResponse is the /upload failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Preview shortens text to PreviewLimit characters followed by "...".
// Empty text becomes [SampleLoadedText].
func Preview(text string) string {
	if text == "" {
		return SampleLoadedText
	}
	if utf8.RuneCountInString(text) <= PreviewLimit {
		return text
	}
	return string([]rune(text)[:PreviewLimit]) + "..."
}
