package contracts

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/contract-review/internal/application"
	"github.com/bryanwahyu/contract-review/internal/domain/ai"
	"github.com/bryanwahyu/contract-review/internal/domain/contract"
)

// ResultChecker reports whether raw analysis output matches the advisory schema.
type ResultChecker interface {
	Check(raw string) error
}

// Service runs the intake pipeline: validate, extract, analyze.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	Analyzer       ai.Analyzer
	MaxUploadBytes int64
	Log            logrus.FieldLogger
	Clock          application.Clock
	// Checker is optional. A mismatch is logged and never changes the result.
	Checker ResultChecker
}

// Submit validates the upload and returns the raw analysis text.
// Validation failures are *contract.ValidationError; any other error is internal.
func (s *Service) Submit(ctx context.Context, upload *contract.Upload) (string, error) {
	if err := contract.ValidateUpload(upload, s.MaxUploadBytes); err != nil {
		return "", err
	}

	text, err := contract.ExtractText(upload)
	if err != nil {
		return "", err
	}
	if contract.IsBlank(text) {
		return "", contract.ErrEmptyContent
	}

	log := s.logger().WithFields(logrus.Fields{
		"filename":     upload.Filename,
		"content_type": upload.ContentType,
		"size":         upload.Size,
	})
	if upload.IsPDF() {
		log.Warn("pdf upload decoded as plain text; binary pdf content is not parsed")
	}

	start := s.clock().Now()
	analysis, err := s.Analyzer.AnalyzeContract(ctx, text)
	if err != nil {
		return "", err
	}
	log.WithField("duration", s.clock().Now().Sub(start)).Debug("contract analyzed")

	if s.Checker != nil {
		if err := s.Checker.Check(analysis); err != nil {
			log.WithError(err).Warn("analysis does not match result schema")
		}
	}

	return analysis, nil
}

func (s *Service) logger() logrus.FieldLogger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

func (s *Service) clock() application.Clock {
	if s.Clock == nil {
		return application.SystemClock{}
	}
	return s.Clock
}
