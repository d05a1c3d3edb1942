package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// UploadExtensions are the document types accepted for extraction.
var UploadExtensions = []string{".pdf", ".png", ".jpg", ".jpeg"}

// ValidateFilename validates an uploaded filename for safety.
// Only the base name is kept by callers, so separators are rejected outright.
//
// Validation rules:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 255 bytes
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeNoFile, "No file selected")
	}
	if len(name) > 255 {
		return New(ErrCodeInvalidFilename, "filename too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "filename contains invalid control characters")
		}
	}
	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidFilename, "filename cannot contain path separators")
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidFilename, "invalid filename: %q", name)
	}
	return nil
}

// ValidateUploadExtension checks that name has one of [UploadExtensions],
// ignoring case.
func ValidateUploadExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range UploadExtensions {
		if ext == allowed {
			return nil
		}
	}
	return New(ErrCodeUnsupportedFile, "Invalid file type")
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
