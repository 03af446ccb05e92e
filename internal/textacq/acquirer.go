// Package textacq turns a PDF document into a flat text blob. Each page
// is read from the text layer first; pages without one are rasterized and
// run through tesseract. The external binaries are the poppler/tesseract
// toolchain, invoked through a stubbable Runner.
package textacq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for container-level failures. Per-page problems are
// warnings, never errors.
var (
	ErrAcquisition = errors.New("document could not be read")
	ErrTimeout     = errors.New("text acquisition timed out")
)

type Config struct {
	Pdfinfo   string // binary name or absolute path; if empty -> "pdfinfo"
	Pdftotext string // if empty -> "pdftotext"
	Pdftoppm  string // if empty -> "pdftoppm"
	Tesseract string // if empty -> "tesseract"

	Language string // OCR language, default "por"
	DPI      int    // rasterization DPI for scanned pages, default 300
	MaxPages int    // 0 = no limit

	TessdataDir string
}

// Result is the acquisition summary for one document.
type Result struct {
	Text     string
	Pages    int
	OCRPages int // pages that went through the OCR fallback
	Duration time.Duration
	Warnings []string
}

type Acquirer struct {
	cfg          Config
	runner       Runner
	ocrAvailable bool
	logger       *slog.Logger
}

func NewAcquirer(cfg Config, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdfinfo == "" {
		cfg.Pdfinfo = "pdfinfo"
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "por"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	a := &Acquirer{cfg: cfg, runner: execRunner{}, logger: logger}
	a.detectOCR()
	return a
}

// detectOCR probes for tesseract once. When it is missing the OCR path is
// skipped entirely; pages without a text layer contribute no text.
func (a *Acquirer) detectOCR() {
	if _, err := a.runner.LookPath(a.cfg.Tesseract); err != nil {
		a.logger.Warn("tesseract not found; ocr fallback disabled", "binary", a.cfg.Tesseract)
		a.ocrAvailable = false
		return
	}
	a.ocrAvailable = true
}

var rePageCount = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

// Acquire extracts the text of every page of the document at path, in
// document order. It fails only when the container itself cannot be
// opened, or when ctx expires.
func (a *Acquirer) Acquire(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	pages, err := a.pageCount(ctx, path)
	if err != nil {
		if ctxErr := timeoutErr(ctx); ctxErr != nil {
			return Result{}, ctxErr
		}
		return Result{}, fmt.Errorf("%w: %s: %v", ErrAcquisition, filepath.Base(path), err)
	}
	if a.cfg.MaxPages > 0 && pages > a.cfg.MaxPages {
		pages = a.cfg.MaxPages
	}

	res := Result{Pages: pages}
	var b strings.Builder
	for p := 1; p <= pages; p++ {
		if ctxErr := timeoutErr(ctx); ctxErr != nil {
			return res, ctxErr
		}

		txt, warn := a.pageText(ctx, path, p)
		res.Warnings = append(res.Warnings, warn...)
		if strings.TrimSpace(txt) == "" && a.ocrAvailable {
			ocrTxt, warn := a.pageOCR(ctx, path, p)
			res.Warnings = append(res.Warnings, warn...)
			if ocrTxt != "" {
				res.OCRPages++
				txt = ocrTxt
			}
		}
		b.WriteString(txt)
	}

	res.Text = b.String()
	res.Duration = time.Since(start)
	a.logger.Debug("text acquisition done",
		"path", path, "pages", res.Pages, "ocr_pages", res.OCRPages,
		"bytes", len(res.Text), "warnings", len(res.Warnings),
	)
	return res, nil
}

// OCRAvailable reports whether the OCR fallback is usable in this
// environment.
func (a *Acquirer) OCRAvailable() bool { return a.ocrAvailable }

func (a *Acquirer) pageCount(ctx context.Context, path string) (int, error) {
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdfinfo, path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %v: %s", err, truncate(string(errb), 512))
	}
	m := rePageCount.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("pdfinfo: no page count in output")
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("pdfinfo: bad page count %q", m[1])
	}
	return n, nil
}

func (a *Acquirer) pageText(ctx context.Context, path string, page int) (string, []string) {
	ps := strconv.Itoa(page)
	// pdftotext -f N -l N -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdftotext,
		"-f", ps, "-l", ps, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		// A broken page is "no text from this page", not a failure.
		return "", []string{fmt.Sprintf("page %d: pdftotext: %s", page, truncate(string(errb), 512))}
	}
	return string(out), nil
}

// pageOCR rasterizes one page and runs tesseract over it. Any failure is
// reported as a warning so the remaining pages keep processing.
func (a *Acquirer) pageOCR(ctx context.Context, path string, page int) (string, []string) {
	tmpDir, err := os.MkdirTemp("", "fh-ocr-*")
	if err != nil {
		return "", []string{fmt.Sprintf("page %d: mktemp: %v", page, err)}
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			a.logger.Warn("failed to remove temp dir", "dir", tmpDir, "error", err)
		}
	}()

	ps := strconv.Itoa(page)
	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -f N -l N -r 300 -png <in.pdf> <tmp/page>
	if _, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm,
		"-f", ps, "-l", ps, "-r", strconv.Itoa(a.cfg.DPI), "-png", path, prefix); err != nil {
		return "", []string{fmt.Sprintf("page %d: pdftoppm: %s", page, truncate(string(errb), 512))}
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if len(matches) == 0 {
		return "", []string{fmt.Sprintf("page %d: pdftoppm produced no image", page)}
	}

	args := []string{matches[0], "stdout", "-l", a.cfg.Language}
	if a.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", a.cfg.TessdataDir)
	}
	// tesseract <page.png> stdout -l por
	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return "", []string{fmt.Sprintf("page %d: tesseract: %s", page, truncate(string(errb), 512))}
	}
	return string(out), nil
}

func timeoutErr(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
	}
	return nil
}
