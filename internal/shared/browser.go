package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

var getRuntime = func() string { return runtime.GOOS }

// startCommand launches a process without waiting for it.
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// browserCommands maps a platform to the program that hands a URL to the desktop's default browser.
var browserCommands = map[string][]string{
	"darwin":  {"open"},
	"linux":   {"xdg-open"},
	"freebsd": {"xdg-open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

// OpenBrowser opens url in the default system browser. It does not wait for the browser to exit.
func OpenBrowser(url string) error {
	rt := getRuntime()
	argv, ok := browserCommands[rt]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", rt)
	}

	args := append(append([]string{}, argv[1:]...), url)
	if err := startCommand(argv[0], args...); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
