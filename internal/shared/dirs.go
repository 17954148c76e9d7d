package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProjectDirs names an application the way desktop platforms qualify per-user directories.
type ProjectDirs struct {
	Qualifier    string
	Organization string
	Application  string
}

// TracyDirs is the project identity used for tracy's configuration directory.
var TracyDirs = ProjectDirs{Qualifier: "inc", Organization: "othelarian", Application: "tracy"}

// ConfigDir resolves the per-user configuration directory for the project.
//
//   - darwin:  ~/Library/Application Support/<qualifier>.<organization>.<application>
//   - windows: %AppData%\<organization>\<application>\config
//   - others:  $XDG_CONFIG_HOME/<application>
func (p ProjectDirs) ConfigDir() (string, error) {
	if p.Application == "" {
		return "", fmt.Errorf("%w: empty application name", ErrConfigDir)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConfigDir, err)
	}

	switch getRuntime() {
	case "darwin":
		parts := []string{}
		for _, s := range []string{p.Qualifier, p.Organization, p.Application} {
			if s != "" {
				parts = append(parts, strings.ReplaceAll(s, " ", "-"))
			}
		}
		return filepath.Join(base, strings.Join(parts, ".")), nil
	case "windows":
		return filepath.Join(base, p.Organization, p.Application, "config"), nil
	default:
		return filepath.Join(base, strings.ToLower(strings.ReplaceAll(p.Application, " ", ""))), nil
	}
}
