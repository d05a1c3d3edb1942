package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	pdflib "github.com/ledongthuc/pdf"
)

// Text returns the plain text of a PDF document, one line break between
// pages. Images have no local text and return "".
func (d *Document) Text() (string, error) {
	if d.Kind != KindPDF {
		return "", nil
	}

	// ledongthuc/pdf opens by path, so the upload is spooled to a temp file.
	path := filepath.Join(os.TempDir(), "orgchart-"+uuid.NewString()+".pdf")
	if err := os.WriteFile(path, d.Data, 0o600); err != nil {
		return "", fmt.Errorf("write temp file: %w", err)
	}
	defer os.Remove(path)

	text, err := extractPDFText(path)
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	return text, nil
}

func extractPDFText(path string) (text string, err error) {
	// the reader panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		s, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(s)
		buf.WriteString("\n")
	}
	return buf.String(), nil
}
