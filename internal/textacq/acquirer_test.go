package textacq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts the external toolchain. Pages are keyed 1..N; a page
// with empty layer text falls through to the OCR path.
type fakeRunner struct {
	pages     map[int]string // page -> text layer content
	ocrText   map[int]string // page -> tesseract output
	ocrErr    map[int]error  // page -> tesseract failure
	noPdfinfo bool
	haveTess  bool
	calls     []string

	// page pdftoppm rendered last, so the following tesseract call can
	// answer for the right page
	lastOCRPage int
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if name == "tesseract" && !f.haveTess {
		return "", errors.New("not found")
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	switch name {
	case "pdfinfo":
		if f.noPdfinfo {
			return nil, []byte("Syntax Error: file is damaged"), errors.New("exit status 1")
		}
		return []byte(fmt.Sprintf("Title: x\nPages:          %d\n", len(f.pages))), nil, nil
	case "pdftotext":
		p := pageArg(args)
		return []byte(f.pages[p]), nil, nil
	case "pdftoppm":
		f.lastOCRPage = pageArg(args)
		// emit the png the acquirer globs for
		prefix := args[len(args)-1]
		_ = os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)
		return nil, nil, nil
	case "tesseract":
		p := f.lastOCRPage
		if err := f.ocrErr[p]; err != nil {
			return nil, []byte(err.Error()), err
		}
		return []byte(f.ocrText[p]), nil, nil
	}
	return nil, nil, fmt.Errorf("unexpected command %q", name)
}

var _ Runner = (*fakeRunner)(nil)

func pageArg(args []string) int {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "-f" {
			var p int
			fmt.Sscanf(args[i+1], "%d", &p)
			return p
		}
	}
	return 0
}

func newTestAcquirer(t *testing.T, r *fakeRunner) *Acquirer {
	t.Helper()
	a := NewAcquirer(Config{}, testLogger())
	a.runner = r
	a.detectOCR()
	return a
}

func TestAcquireTextLayerOnly(t *testing.T) {
	r := &fakeRunner{haveTess: true, pages: map[int]string{1: "page one\n", 2: "page two\n"}}
	a := newTestAcquirer(t, r)

	res, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 0, res.OCRPages)
	assert.Equal(t, "page one\npage two\n", res.Text)
}

func TestAcquireOCRFallbackPerPage(t *testing.T) {
	r := &fakeRunner{
		haveTess: true,
		pages:    map[int]string{1: "typed text\n", 2: "   \n"},
		ocrText:  map[int]string{2: "scanned text\n"},
	}
	a := newTestAcquirer(t, r)

	res, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, res.OCRPages)
	assert.Contains(t, res.Text, "typed text")
	assert.Contains(t, res.Text, "scanned text")
}

func TestAcquireOCRFailureDoesNotAbortRemainingPages(t *testing.T) {
	r := &fakeRunner{
		haveTess: true,
		pages:    map[int]string{1: "", 2: "page two\n"},
		ocrErr:   map[int]error{1: errors.New("tesseract crashed")},
	}
	a := newTestAcquirer(t, r)

	res, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "page two")
	assert.NotEmpty(t, res.Warnings)
}

func TestAcquireWithoutTesseractSkipsOCR(t *testing.T) {
	r := &fakeRunner{haveTess: false, pages: map[int]string{1: "", 2: "typed\n"}}
	a := newTestAcquirer(t, r)

	require.False(t, a.OCRAvailable())
	res, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	assert.Equal(t, "typed\n", res.Text)
	for _, c := range r.calls {
		assert.NotEqual(t, "tesseract", c)
		assert.NotEqual(t, "pdftoppm", c)
	}
}

func TestAcquireCorruptContainer(t *testing.T) {
	r := &fakeRunner{haveTess: true, noPdfinfo: true}
	a := newTestAcquirer(t, r)

	_, err := a.Acquire(context.Background(), filepath.Join("x", "broken.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAcquisition))
}

func TestAcquireTimeout(t *testing.T) {
	r := &fakeRunner{haveTess: true, pages: map[int]string{1: "p1", 2: "p2"}}
	a := newTestAcquirer(t, r)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err := a.Acquire(ctx, "bill.pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
}

func TestAcquireIdempotentText(t *testing.T) {
	r := &fakeRunner{haveTess: true, pages: map[int]string{1: "same text\n"}}
	a := newTestAcquirer(t, r)

	r1, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	r2, err := a.Acquire(context.Background(), "bill.pdf")
	require.NoError(t, err)
	assert.True(t, strings.Compare(r1.Text, r2.Text) == 0)
}
