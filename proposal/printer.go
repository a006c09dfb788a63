package proposal

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds one headless Chrome print
const DefaultPDFTimeout = 30 * time.Second

// ErrPDFTimeout is returned when the browser does not finish printing in time
var ErrPDFTimeout = errors.New("pdf rendering timed out")

// PDFPrinter turns a complete HTML page into PDF bytes
type PDFPrinter interface {
	PrintPDF(ctx context.Context, page string, footerLabel string) ([]byte, error)
}

// ChromePrinter prints through a headless Chrome/Chromium process started per call
type ChromePrinter struct {
	chromePath string
	timeout    time.Duration
}

var _ PDFPrinter = (*ChromePrinter)(nil)

// NewChromePrinter creates a printer. An empty chromePath falls back to
// DetectChromePath and a non-positive timeout to DefaultPDFTimeout.
func NewChromePrinter(chromePath string, timeout time.Duration) *ChromePrinter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &ChromePrinter{
		chromePath: DetectChromePath(chromePath),
		timeout:    timeout,
	}
}

// DetectChromePath returns the configured path when it exists, otherwise
// the first common Chrome/Chromium install found. "" lets chromedp search.
func DetectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
		log.Printf("⚠️  Chrome not found at %s, searching common paths", configured)
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FooterTemplate is the running footer Chrome stamps on every page
func FooterTemplate(label string) string {
	return `<div style="font-size:8px;width:100%;text-align:center;color:#555;">` +
		html.EscapeString(label) +
		` — Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
}

// PrintPDF loads the page into a blank tab and prints it on US Letter.
// Cancelling ctx or hitting the timeout kills the browser process.
func (p *ChromePrinter) PrintPDF(ctx context.Context, content string, footerLabel string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.DisableGPU,
	)
	if p.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.chromePath))
	} else {
		log.Printf("⚠️  Chrome path not detected, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, content).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate("<span></span>").
				WithFooterTemplate(FooterTemplate(footerLabel)).
				WithPaperWidth(8.5). // US Letter
				WithPaperHeight(11).
				WithMarginTop(0.6).
				WithMarginBottom(0.7).
				WithMarginLeft(0.6).
				WithMarginRight(0.6).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s: %v", ErrPDFTimeout, p.timeout, err)
		}
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("📄 PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
