package contracts

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/contract-review/internal/domain/contract"
)

type fakeAnalyzer struct {
	out   string
	err   error
	calls int
	got   string
}

func (f *fakeAnalyzer) AnalyzeContract(_ context.Context, text string) (string, error) {
	f.calls++
	f.got = text
	return f.out, f.err
}

type fakeChecker struct{ err error }

func (f fakeChecker) Check(string) error { return f.err }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newService(a *fakeAnalyzer) (*Service, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return &Service{
		Analyzer:       a,
		MaxUploadBytes: contract.MaxUploadBytes,
		Log:            log,
		Clock:          fixedClock{t: time.Unix(0, 0)},
	}, hook
}

func textUpload(body string) *contract.Upload {
	return &contract.Upload{
		Filename:    "contract.txt",
		ContentType: contract.ContentTypePlain,
		Size:        int64(len(body)),
		Data:        []byte(body),
	}
}

func TestSubmit_Success(t *testing.T) {
	a := &fakeAnalyzer{out: `{"riskLevel":"low"}`}
	svc, _ := newService(a)

	out, err := svc.Submit(context.Background(), textUpload("  Hello World\n"))
	require.NoError(t, err)

	assert.Equal(t, `{"riskLevel":"low"}`, out)
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, "  Hello World\n", a.got, "text is forwarded as decoded")
}

func TestSubmit_ValidationFailuresSkipAnalyzer(t *testing.T) {
	tests := []struct {
		name   string
		upload *contract.Upload
		want   error
	}{
		{"no file", nil, contract.ErrNoFile},
		{"bad type", &contract.Upload{ContentType: "image/png", Size: 3, Data: []byte("abc")}, contract.ErrInvalidType},
		{"too large", &contract.Upload{ContentType: contract.ContentTypePlain, Size: contract.MaxUploadBytes + 1}, contract.ErrTooLarge},
		{"empty", textUpload(""), contract.ErrEmptyContent},
		{"whitespace", textUpload(" \n\t "), contract.ErrEmptyContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAnalyzer{out: "{}"}
			svc, _ := newService(a)

			_, err := svc.Submit(context.Background(), tt.upload)
			assert.ErrorIs(t, err, tt.want)
			_, ok := contract.AsValidationError(err)
			assert.True(t, ok)
			assert.Zero(t, a.calls)
		})
	}
}

func TestSubmit_AnalyzerErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")
	a := &fakeAnalyzer{err: boom}
	svc, _ := newService(a)

	_, err := svc.Submit(context.Background(), textUpload("Hello World"))
	assert.ErrorIs(t, err, boom)
	_, ok := contract.AsValidationError(err)
	assert.False(t, ok)
	assert.Equal(t, 1, a.calls)
}

func TestSubmit_PDFIsFlagged(t *testing.T) {
	a := &fakeAnalyzer{out: "{}"}
	svc, hook := newService(a)

	up := &contract.Upload{Filename: "c.pdf", ContentType: contract.ContentTypePDF, Size: 9, Data: []byte("%PDF-1.7\n")}
	_, err := svc.Submit(context.Background(), up)
	require.NoError(t, err)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, "pdf") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestSubmit_SchemaMismatchIsOnlyLogged(t *testing.T) {
	a := &fakeAnalyzer{out: "not json"}
	svc, hook := newService(a)
	svc.Checker = fakeChecker{err: errors.New("invalid")}

	out, err := svc.Submit(context.Background(), textUpload("Hello World"))
	require.NoError(t, err)
	assert.Equal(t, "not json", out)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "analysis does not match result schema", hook.LastEntry().Message)
}

func TestSubmit_DefaultsWithoutLoggerOrClock(t *testing.T) {
	svc := &Service{Analyzer: &fakeAnalyzer{out: "ok"}}

	out, err := svc.Submit(context.Background(), textUpload("Hello World"))
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}
