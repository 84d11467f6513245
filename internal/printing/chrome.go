// Package printing provides a Chrome window as the display surface for
// print-ready resume exports.
package printing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/inspector"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog"

	"github.com/TanyaIgnatenko/Resume-Parser/internal/rendering"
)

// DefaultTimeout bounds how long a window waits for the user to finish printing.
const DefaultTimeout = 5 * time.Minute

const afterPrintBinding = "__resumeAfterPrint"

// afterPrintScript reports the afterprint event back over the CDP binding.
// window.print() blocks until the dialog closes, so the event fires after the
// user prints or cancels.
var afterPrintScript = fmt.Sprintf(
	`window.addEventListener("afterprint", function () { window.%s("done"); });`,
	afterPrintBinding,
)

// ChromeOpener opens Chrome windows. It implements rendering.SurfaceOpener.
type ChromeOpener struct {
	// ExecPath is the Chrome binary; empty means look it up on PATH.
	ExecPath string
	// Headless runs Chrome without a window. Only useful together with PDFPath.
	Headless bool
	// PDFPath, when set, saves the page as a PDF instead of waiting for the
	// interactive print dialog.
	PDFPath string
	// Timeout bounds one Display call; zero means DefaultTimeout.
	Timeout time.Duration
	Logger  *zerolog.Logger
}

var _ rendering.SurfaceOpener = (*ChromeOpener)(nil)

// Open starts a browser. Failure to launch Chrome is returned as is; the
// exporter reports it as a capability error.
func (o *ChromeOpener) Open(ctx context.Context) (rendering.Surface, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// An empty Run launches the browser and its first tab.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to launch chrome: %w", err)
	}

	logger := zerolog.Nop()
	if o.Logger != nil {
		logger = o.Logger.With().Str("component", "printing").Logger()
	}

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &chromeSurface{
		ctx:     browserCtx,
		cancel:  func() { cancelBrowser(); cancelAlloc() },
		pdfPath: o.PDFPath,
		timeout: timeout,
		logger:  logger,
	}, nil
}

type chromeSurface struct {
	ctx     context.Context
	cancel  context.CancelFunc
	pdfPath string
	timeout time.Duration
	logger  zerolog.Logger

	closeOnce sync.Once
}

// Display loads markup in the browser tab and blocks until printing is done,
// the tab goes away, or ctx is cancelled. The browser is shut down on return.
func (s *chromeSurface) Display(ctx context.Context, markup string) error {
	defer s.close()

	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(markup), 0o600); err != nil {
		return fmt.Errorf("failed to write print document: %w", err)
	}
	htmlURL := "file://" + filepath.ToSlash(htmlPath)

	runCtx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if s.pdfPath != "" {
		return s.savePDF(runCtx, htmlURL)
	}

	done := make(chan string, 1)
	signal := func(reason string) {
		select {
		case done <- reason:
		default:
		}
	}
	chromedp.ListenTarget(runCtx, func(ev any) {
		switch e := ev.(type) {
		case *runtime.EventBindingCalled:
			if e.Name == afterPrintBinding {
				signal("afterprint")
			}
		case *inspector.EventDetached:
			signal("detached")
		}
	})

	err = chromedp.Run(runCtx,
		runtime.AddBinding(afterPrintBinding),
		chromedp.ActionFunc(func(ctx context.Context) error {
			_, err := page.AddScriptToEvaluateOnNewDocument(afterPrintScript).Do(ctx)
			return err
		}),
		chromedp.Navigate(htmlURL),
	)
	if err != nil {
		return fmt.Errorf("failed to load print document: %w", err)
	}
	s.logger.Debug().Str("url", htmlURL).Msg("print document loaded")

	select {
	case reason := <-done:
		s.logger.Debug().Str("reason", reason).Msg("print window finished")
		return nil
	case <-runCtx.Done():
		if ctx.Err() != nil {
			// Cancelled by the caller: the window is discarded, not an error.
			return nil
		}
		return fmt.Errorf("print window timed out after %s", s.timeout)
	}
}

func (s *chromeSurface) savePDF(ctx context.Context, htmlURL string) error {
	var pdf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(htmlURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to print to PDF: %w", err)
	}
	if err := os.WriteFile(s.pdfPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	s.logger.Debug().Str("path", s.pdfPath).Int("bytes", len(pdf)).Msg("saved PDF")
	return nil
}

func (s *chromeSurface) close() {
	s.closeOnce.Do(func() {
		_ = chromedp.Cancel(s.ctx)
		s.cancel()
	})
}
