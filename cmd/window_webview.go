//go:build !nowebview

package main

import (
	"runtime"

	"github.com/desertthunder/tracy/internal/window"
	"github.com/desertthunder/tracy/internal/window/webview"
)

// The native window's event loop must own the main thread.
func init() {
	runtime.LockOSThread()
}

func newOpener() window.Opener {
	return webview.New()
}
