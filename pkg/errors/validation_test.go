package errors

import (
	"strings"
	"testing"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		code    Code
	}{
		{"pdf", "structure.pdf", false, ""},
		{"spaces", "Org Chart 2024.png", false, ""},
		{"unicode", "organigramm-übersicht.jpg", false, ""},

		{"empty", "", true, ErrCodeNoFile},
		{"too long", strings.Repeat("a", 300) + ".pdf", true, ErrCodeInvalidFilename},
		{"slash", "../etc/passwd", true, ErrCodeInvalidFilename},
		{"backslash", "dir\\file.pdf", true, ErrCodeInvalidFilename},
		{"null byte", "a\x00.pdf", true, ErrCodeInvalidFilename},
		{"newline", "a\n.pdf", true, ErrCodeInvalidFilename},
		{"dotdot", "..", true, ErrCodeInvalidFilename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != tt.code {
				t.Errorf("code = %s, want %s", GetCode(err), tt.code)
			}
		})
	}
}

func TestValidateUploadExtension(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"a.pdf", false},
		{"a.PNG", false},
		{"a.jpg", false},
		{"scan.JPEG", false},
		{"a.gif", true},
		{"a.pdf.exe", true},
		{"noext", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateUploadExtension(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUploadExtension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && UserMessage(err) != "Invalid file type" {
				t.Errorf("message = %q", UserMessage(err))
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"https", "https://example.com/path", false},
		{"http", "http://localhost:5000", false},

		{"empty", "", true},
		{"ftp", "ftp://example.com", true},
		{"file", "file:///etc/passwd", true},
		{"javascript", "javascript:alert(1)", true},
		{"no scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidRecord,
		ErrCodeInvalidFormat,
		ErrCodeInvalidFilename,
		ErrCodeDuplicateName,
		ErrCodeNoFile,
		ErrCodeUnsupportedFile,
		ErrCodeFileTooLarge,
		ErrCodeNotFound,
		ErrCodeRecordNotFound,
		ErrCodeFileNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeRateLimited,
		ErrCodeExtraction,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
