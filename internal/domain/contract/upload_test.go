package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name   string
		upload *Upload
		want   error
	}{
		{"missing", nil, ErrNoFile},
		{"plain text", &Upload{ContentType: ContentTypePlain, Size: 11}, nil},
		{"pdf", &Upload{ContentType: ContentTypePDF, Size: 11}, nil},
		{"mixed case plain", &Upload{ContentType: "Text/Plain", Size: 11}, nil},
		{"upper case pdf", &Upload{ContentType: "APPLICATION/PDF", Size: 11}, nil},
		{"json rejected", &Upload{ContentType: "application/json", Size: 11}, ErrInvalidType},
		{"charset suffix rejected", &Upload{ContentType: "text/plain; charset=utf-8", Size: 11}, ErrInvalidType},
		{"mixed case charset suffix rejected", &Upload{ContentType: "Text/Plain; Charset=UTF-8", Size: 11}, ErrInvalidType},
		{"empty type rejected", &Upload{Size: 11}, ErrInvalidType},
		{"at limit", &Upload{ContentType: ContentTypePlain, Size: MaxUploadBytes}, nil},
		{"over limit", &Upload{ContentType: ContentTypePlain, Size: MaxUploadBytes + 1}, ErrTooLarge},
		{"type checked before size", &Upload{ContentType: "image/png", Size: MaxUploadBytes + 1}, ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.upload, MaxUploadBytes)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpload_IsPDF(t *testing.T) {
	assert.True(t, (&Upload{ContentType: "Application/PDF"}).IsPDF())
	assert.False(t, (&Upload{ContentType: ContentTypePlain}).IsPDF())
	assert.False(t, (*Upload)(nil).IsPDF())
}

func TestValidateUpload_DefaultLimit(t *testing.T) {
	err := ValidateUpload(&Upload{ContentType: ContentTypePlain, Size: MaxUploadBytes + 1}, 0)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestAsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", ErrEmptyContent)

	ve, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "Empty file content", ve.Reason)

	_, ok = AsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText(&Upload{Data: []byte("Hello World")})
	require.NoError(t, err)
	assert.Equal(t, "Hello World", text)

	text, err = ExtractText(&Upload{Data: []byte{'a', 0xff, 'b'}})
	require.NoError(t, err)
	assert.Equal(t, "a�b", text)

	_, err = ExtractText(nil)
	assert.ErrorIs(t, err, ErrNoFile)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \n\t\r "))
	assert.False(t, IsBlank("  clause 1 "))
}
