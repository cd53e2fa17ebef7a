package contract

import (
	"strings"
	"unicode/utf8"
)

// ExtractText decodes the upload bytes as UTF-8, replacing invalid sequences.
//
// PDF uploads are decoded the same way; no PDF parsing happens here, so binary
// PDF content comes out garbled. Callers log that case instead of hiding it.
func ExtractText(u *Upload) (string, error) {
	if u == nil {
		return "", ErrNoFile
	}
	if utf8.Valid(u.Data) {
		return string(u.Data), nil
	}
	return strings.ToValidUTF8(string(u.Data), "�"), nil
}

// IsBlank reports whether text is empty after trimming whitespace.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
