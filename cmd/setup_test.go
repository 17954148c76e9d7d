package main

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/tracy/internal/shared"
	tu "github.com/desertthunder/tracy/internal/testing"
	"github.com/desertthunder/tracy/internal/token"
)

func TestSetup(t *testing.T) {
	t.Run("creates config and token file", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.toml")
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", dir)
		t.Setenv("AppData", dir)
		runner, output := newTestRunner(&fakeOpener{}, nil)

		if err := runner.command().Run(context.Background(), []string{"tracy", "-c", configPath, "setup"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tu.AssertFileExists(t, configPath)
		if !strings.HasPrefix(output.String(), "token file: "+dir) {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("keeps an existing config", func(t *testing.T) {
		dir := t.TempDir()
		configPath, tokenPath := writeConfig(t, dir)
		before := tu.MustReadFile(t, configPath)
		runner, output := newTestRunner(&fakeOpener{}, nil)

		if err := runner.command().Run(context.Background(), []string{"tracy", "-c", configPath, "setup"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tu.MustReadFile(t, configPath) != before {
			t.Error("expected config to be left untouched")
		}
		tu.AssertFileExists(t, tokenPath)
		if output.String() != "token file: "+tokenPath+"\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}

func TestTokenCommands(t *testing.T) {
	run := func(t *testing.T, configPath string, args ...string) (string, error) {
		t.Helper()
		runner, output := newTestRunner(&fakeOpener{}, nil)
		argv := append([]string{"tracy", "-c", configPath, "token"}, args...)
		err := runner.command().Run(context.Background(), argv)
		return output.String(), err
	}

	t.Run("path", func(t *testing.T) {
		configPath, tokenPath := writeConfig(t, t.TempDir())
		out, err := run(t, configPath, "path")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != tokenPath+"\n" {
			t.Errorf("expected %q, got %q", tokenPath, out)
		}
	})

	t.Run("show before set is empty", func(t *testing.T) {
		configPath, _ := writeConfig(t, t.TempDir())
		out, err := run(t, configPath, "show")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "\n" {
			t.Errorf("expected empty token, got %q", out)
		}
	})

	t.Run("set then show", func(t *testing.T) {
		configPath, tokenPath := writeConfig(t, t.TempDir())
		if _, err := run(t, configPath, "set", "abc123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := tu.MustReadFile(t, tokenPath); got != "abc123" {
			t.Errorf("expected raw token on disk, got %q", got)
		}

		out, err := run(t, configPath, "show")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "abc123\n" {
			t.Errorf("expected abc123, got %q", out)
		}
	})

	t.Run("set without a value", func(t *testing.T) {
		configPath, _ := writeConfig(t, t.TempDir())
		_, err := run(t, configPath, "set")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("inspect", func(t *testing.T) {
		configPath, tokenPath := writeConfig(t, t.TempDir())

		out, err := run(t, configPath, "inspect")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "No token stored\n" {
			t.Errorf("unexpected output %q", out)
		}

		tu.MustWriteFile(t, tokenPath, "opaque")
		out, err = run(t, configPath, "inspect")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "Opaque token, 6 bytes\n" {
			t.Errorf("unexpected output %q", out)
		}

		tu.MustWriteFile(t, tokenPath, `{"access_token":"a","token_type":"Bearer","refresh_token":"r"}`)
		out, err = run(t, configPath, "inspect")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"OAuth2 token (Bearer)", "Expiry:  never", "Valid:   true", "Refresh: true"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in %q", want, out)
			}
		}

		out, err = run(t, configPath, "inspect", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var info token.Info
		if err := json.Unmarshal([]byte(out), &info); err != nil {
			t.Fatalf("invalid json %q: %v", out, err)
		}
		if !info.OAuth2 || !info.Valid || info.TokenType != "Bearer" {
			t.Errorf("unexpected info %+v", info)
		}
	})
}
