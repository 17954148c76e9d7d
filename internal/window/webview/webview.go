// Package webview implements [window.Opener] with a native embedded browser view.
package webview

import (
	"context"
	"fmt"

	"github.com/desertthunder/tracy/internal/window"
	webview "github.com/webview/webview_go"
)

// Opener opens a native webview window. It must be used from the main goroutine.
type Opener struct{}

// New creates an [Opener].
func New() *Opener {
	return &Opener{}
}

// Open shows the window and blocks until it is closed. Cancelling ctx closes the window.
func (o *Opener) Open(ctx context.Context, spec window.Spec) error {
	w := webview.New(spec.Debug)
	if w == nil {
		return fmt.Errorf("could not create web view")
	}
	defer w.Destroy()

	w.SetTitle(spec.Title)
	w.SetSize(spec.Width, spec.Height, webview.HintNone)
	if err := w.Bind("invoke", window.Invoke); err != nil {
		return fmt.Errorf("could not bind script bridge: %w", err)
	}
	w.Navigate(spec.URL)

	stop := context.AfterFunc(ctx, func() {
		w.Dispatch(w.Terminate)
	})
	defer stop()

	w.Run()
	return nil
}
