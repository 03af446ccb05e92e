package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/internal/textacq"
)

// TextAcquirer is the upstream stage: document on disk -> flat text.
type TextAcquirer interface {
	Acquire(ctx context.Context, path string) (textacq.Result, error)
}

// Engine runs the rule table over acquired text. It is stateless and safe
// for concurrent use.
type Engine struct {
	acquirer TextAcquirer
	logger   *slog.Logger
}

func NewEngine(acquirer TextAcquirer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{acquirer: acquirer, logger: logger}
}

// ExtractFile acquires the text of the document at path and extracts
// fields from it. Acquisition failure is the only way to get
// status=error; a readable document that matches nothing still succeeds
// with defaulted fields.
func (e *Engine) ExtractFile(ctx context.Context, path, sourceName string) Result {
	acq, err := e.acquirer.Acquire(ctx, path)
	if err != nil {
		e.logger.Warn("text acquisition failed", "source", sourceName, "error", err)
		return Result{
			Status:      constants.ExtractionError,
			SourceName:  sourceName,
			ErrorDetail: err.Error(),
		}
	}
	res := e.ExtractText(acq.Text, sourceName)
	for _, w := range acq.Warnings {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Level: "warn", Field: "acquisition", Message: w})
	}
	return res
}

// ExtractText applies every rule to the given text, independently. The
// same text always yields an identical Result.
func (e *Engine) ExtractText(text, sourceName string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{
			Status:      constants.ExtractionError,
			SourceName:  sourceName,
			ErrorDetail: "no text could be extracted from the document",
		}
	}

	res := Result{Status: constants.ExtractionSuccess, SourceName: sourceName}
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if !r.apply(m, &res.Fields) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Level:   "warn",
				Field:   r.field,
				Message: fmt.Sprintf("matched %q but the capture did not normalize", firstLine(m[0])),
			})
		}
	}
	res.Fields.applyDefaults()
	return res
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 80 {
		s = s[:80] + "…"
	}
	return s
}
