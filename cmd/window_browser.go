//go:build nowebview

package main

import "github.com/desertthunder/tracy/internal/window"

func newOpener() window.Opener {
	return window.NewBrowserOpener()
}
