package document

import (
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/matzehuels/orgchart/pkg/errors"
)

// MaxSize is the largest accepted upload, 16 MiB.
const MaxSize = 16 << 20

// Kind is the coarse document category.
type Kind string

const (
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// Document is an uploaded file with its detected type.
type Document struct {
	Name string
	Kind Kind
	MIME string
	Data []byte
}

// allowed maps upload extensions to the MIME types their content may sniff as.
var allowed = map[string][]string{
	".pdf":  {"application/pdf"},
	".png":  {"image/png"},
	".jpg":  {"image/jpeg"},
	".jpeg": {"image/jpeg"},
}

// Open validates name and data and classifies the document. name is reduced
// to its base name first.
func Open(name string, data []byte) (*Document, error) {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) {
		name = ""
	}
	if err := errors.ValidateFilename(name); err != nil {
		return nil, err
	}
	if err := errors.ValidateUploadExtension(name); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeNoFile, "No file provided")
	}
	if len(data) > MaxSize {
		return nil, errors.New(errors.ErrCodeFileTooLarge, "File exceeds %d MB", MaxSize>>20)
	}

	mt := mimetype.Detect(data)
	ext := strings.ToLower(filepath.Ext(name))
	if !mimeAllowed(mt, allowed[ext]) {
		return nil, errors.New(errors.ErrCodeUnsupportedFile, "File content %s does not match extension %s", mt.String(), ext)
	}

	kind := KindImage
	if ext == ".pdf" {
		kind = KindPDF
	}
	return &Document{Name: name, Kind: kind, MIME: baseMIME(mt), Data: data}, nil
}

func mimeAllowed(mt *mimetype.MIME, want []string) bool {
	for _, w := range want {
		if mt.Is(w) {
			return true
		}
	}
	return false
}

// baseMIME drops parameters such as "; charset=binary".
func baseMIME(mt *mimetype.MIME) string {
	s, _, _ := strings.Cut(mt.String(), ";")
	return strings.TrimSpace(s)
}

// IsImage reports whether the document is a raster image.
func (d *Document) IsImage() bool { return d.Kind == KindImage }

// DataURL returns the content as a base64 data URL, e.g.
// "data:image/png;base64,iVBOR...".
func (d *Document) DataURL() string {
	return "data:" + d.MIME + ";base64," + base64.StdEncoding.EncodeToString(d.Data)
}
