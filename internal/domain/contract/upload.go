package contract

import "strings"

// MaxUploadBytes is the largest contract file accepted (5 MiB).
const MaxUploadBytes int64 = 5 * 1024 * 1024

const (
	ContentTypePDF   = "application/pdf"
	ContentTypePlain = "text/plain"
)

// AllowedContentTypes is matched exactly against the lowercased declared MIME type.
// Parameters such as "; charset=utf-8" are not stripped.
var AllowedContentTypes = map[string]bool{
	ContentTypePDF:   true,
	ContentTypePlain: true,
}

// Upload is a caller-supplied file as received from the multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

func (u *Upload) IsPDF() bool { return u != nil && strings.EqualFold(u.ContentType, ContentTypePDF) }

// AllowedContentType reports whether a declared MIME type is accepted.
func AllowedContentType(ct string) bool {
	return AllowedContentTypes[strings.ToLower(ct)]
}

// ValidateUpload runs the presence, type and size checks in that order.
// The blank-content check needs the decoded text and lives in the service.
func ValidateUpload(u *Upload, maxBytes int64) error {
	if u == nil {
		return ErrNoFile
	}
	if !AllowedContentType(u.ContentType) {
		return ErrInvalidType
	}
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}
	if u.Size > maxBytes {
		return ErrTooLarge
	}
	return nil
}
