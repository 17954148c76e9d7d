// Package window opens the native window that renders tracy's front-end.
//
// The window knows nothing about the server beyond the URL it loads. Its script bridge
// exposes a single "invoke" function that accepts anything and always succeeds.
package window

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/shared"
)

// WindowsNotice is printed when the degraded Windows layout is used.
const WindowsNotice = "web view support on windows is bad enough to go play with the browser"

// Spec describes the window to open.
type Spec struct {
	Title  string
	URL    string
	Width  int
	Height int
	Debug  bool
	Notice string
}

// Opener shows a window for spec and blocks until it is closed or ctx is done.
type Opener interface {
	Open(ctx context.Context, spec Spec) error
}

// Invoke is the script bridge handler. It accepts any number of arguments of any JSON type,
// ignores them and always reports success.
func Invoke(args ...json.RawMessage) error {
	return nil
}

// Layout computes the window spec for the platform goos.
//
// On windows the page is swapped for the "windows" notice page in a small window; elsewhere
// the configured size is used.
func Layout(goos, baseURL string, cfg shared.WindowConfig) Spec {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	spec := Spec{
		Title:  cfg.Title,
		URL:    baseURL,
		Width:  cfg.Width,
		Height: cfg.Height,
		Debug:  cfg.Debug,
	}

	if goos == "windows" {
		spec.URL = baseURL + "windows"
		spec.Width, spec.Height = 250, 200
		spec.Notice = WindowsNotice
	}

	return spec
}

// Shell runs one window through an [Opener].
type Shell struct {
	opener Opener
	logger *log.Logger
	out    io.Writer
}

// NewShell creates a [Shell]. A nil out writes notices to stdout.
func NewShell(opener Opener, logger *log.Logger, out io.Writer) *Shell {
	if out == nil {
		out = os.Stdout
	}
	return &Shell{opener: opener, logger: logger, out: out}
}

// Run prints the platform notice, if any, then blocks on the window.
func (s *Shell) Run(ctx context.Context, spec Spec) error {
	if spec.Notice != "" {
		fmt.Fprintln(s.out, spec.Notice)
	}

	s.logger.Info("opening window", "url", spec.URL, "width", spec.Width, "height", spec.Height)
	if err := s.opener.Open(ctx, spec); err != nil {
		return fmt.Errorf("window failed: %w", err)
	}
	s.logger.Info("window closed")
	return nil
}

// BrowserOpener shows the page in the system browser and waits for ctx to be done.
type BrowserOpener struct {
	open func(url string) error
}

// NewBrowserOpener creates a [BrowserOpener] using [shared.OpenBrowser].
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{open: shared.OpenBrowser}
}

func (b *BrowserOpener) Open(ctx context.Context, spec Spec) error {
	if err := b.open(spec.URL); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}
