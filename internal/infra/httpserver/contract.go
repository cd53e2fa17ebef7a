package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bryanwahyu/contract-review/internal/domain/contract"
	"github.com/bryanwahyu/contract-review/internal/middleware"
)

// FileField is the multipart form field carrying the contract.
const FileField = "File"

type analysisResponse struct {
	Analysis string `json:"analysis"`
}

// POST /api/contract
// Body: multipart/form-data with a single file field "File" (application/pdf or text/plain).
func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) error {
	req.Body = http.MaxBytesReader(w, req.Body, r.maxRequestBytes)

	upload, err := r.readUpload(req)
	if err == nil {
		var analysis string
		analysis, err = r.contracts.Submit(req.Context(), upload)
		if err == nil {
			r.metrics.ObserveAnalysis(middleware.OutcomeSuccess)
			writeJSON(w, http.StatusOK, analysisResponse{Analysis: analysis})
			return nil
		}
	}

	if _, ok := contract.AsValidationError(err); ok {
		r.metrics.ObserveAnalysis(middleware.OutcomeValidation)
	} else {
		r.metrics.ObserveAnalysis(middleware.OutcomeError)
	}
	return err
}

// readUpload streams the multipart body up to the File part. It returns a nil
// upload when the request carries no file field, leaving the "no file"
// decision to contract validation. The part's declared type is known before
// any of its data is read, so an unacceptable type is returned without reading
// the content, and an acceptable one is read only up to one byte past the limit.
func (r *Router) readUpload(req *http.Request) (*contract.Upload, error) {
	mr, err := req.MultipartReader()
	if errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read multipart body: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			// The body cap was hit before any file field appeared.
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart body: %w", err)
		}
		if part.FormName() != FileField {
			continue
		}
		return readFilePart(part, r.maxFileBytes)
	}
}

// readFilePart leaves unread data in the body; the server discards it.
func readFilePart(part *multipart.Part, maxFileBytes int64) (*contract.Upload, error) {
	// A plain form value under the file field has no declared file type.
	if part.FileName() == "" {
		return &contract.Upload{}, nil
	}

	upload := &contract.Upload{
		Filename:    middleware.SanitizeFilename(part.FileName()),
		ContentType: part.Header.Get("Content-Type"),
	}
	if !contract.AllowedContentType(upload.ContentType) {
		return upload, nil
	}

	data, err := io.ReadAll(io.LimitReader(part, maxFileBytes+1))
	if err != nil {
		return nil, bodyError(err)
	}
	upload.Data = data
	upload.Size = int64(len(data))
	return upload, nil
}

// bodyError maps the request body cap to "File too large"; anything else is a
// malformed or interrupted body.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return contract.ErrTooLarge
	}
	return fmt.Errorf("read multipart body: %w", err)
}

// GET and DELETE /api/contract are reserved. They accept a JSON body and do nothing with it.
func (r *Router) handleUnimplemented(w http.ResponseWriter, req *http.Request) error {
	var body any
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return errInvalidBody
	}
	return errNotImplemented
}
