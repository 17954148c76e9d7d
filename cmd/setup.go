package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/desertthunder/tracy/internal/shared"
	"github.com/desertthunder/tracy/internal/token"
	"github.com/urfave/cli/v3"
)

// Setup writes the configuration template when it is missing and creates the token file.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err == nil {
		r.logger.Info("config file already exists", "path", configPath)
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			return err
		}
		r.logger.Info("config file created", "path", configPath)
	}

	store, err := r.tokenStore(cmd)
	if err != nil {
		return err
	}
	if err := store.Ensure(); err != nil {
		return err
	}

	return r.writePlain("token file: %s\n", store.Path())
}

// TokenPath prints where the token file lives.
func (r *Runner) TokenPath(ctx context.Context, cmd *cli.Command) error {
	store, err := r.tokenStore(cmd)
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", store.Path())
}

// TokenShow prints the stored token verbatim.
func (r *Runner) TokenShow(ctx context.Context, cmd *cli.Command) error {
	store, err := r.tokenStore(cmd)
	if err != nil {
		return err
	}
	if err := store.Ensure(); err != nil {
		return err
	}

	value, err := store.Get()
	if err != nil {
		return err
	}
	return r.writePlain("%s\n", value)
}

// TokenSet replaces the stored token.
func (r *Runner) TokenSet(ctx context.Context, cmd *cli.Command) error {
	value := cmd.StringArg("value")
	if value == "" {
		return fmt.Errorf("%w: token value", shared.ErrMissingArgument)
	}

	store, err := r.tokenStore(cmd)
	if err != nil {
		return err
	}
	if err := store.Ensure(); err != nil {
		return err
	}
	if err := store.Save(value); err != nil {
		return err
	}

	r.logger.Info("token saved", "path", store.Path(), "length", len(value))
	return nil
}

// TokenInspect describes the stored token.
func (r *Runner) TokenInspect(ctx context.Context, cmd *cli.Command) error {
	store, err := r.tokenStore(cmd)
	if err != nil {
		return err
	}
	if err := store.Ensure(); err != nil {
		return err
	}

	value, err := store.Get()
	if err != nil {
		return err
	}

	info := token.Inspect(value)
	if cmd.Bool("json") {
		return r.writeJSON(info, true)
	}

	var b strings.Builder
	switch {
	case info.Empty:
		b.WriteString("No token stored\n")
	case info.OAuth2:
		fmt.Fprintf(&b, "OAuth2 token (%s)\n", info.TokenType)
		if info.Expiry.IsZero() {
			b.WriteString("  Expiry:  never\n")
		} else {
			fmt.Fprintf(&b, "  Expiry:  %s\n", info.Expiry.Format(time.RFC3339))
		}
		fmt.Fprintf(&b, "  Valid:   %t\n", info.Valid)
		fmt.Fprintf(&b, "  Refresh: %t\n", info.RefreshToken)
	default:
		fmt.Fprintf(&b, "Opaque token, %d bytes\n", info.Length)
	}
	return r.writePlain("%s", b.String())
}

// tokenStore resolves the token file, honouring [storage] token_file from the config.
func (r *Runner) tokenStore(cmd *cli.Command) (*token.Store, error) {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return token.Open(config.Storage.TokenFile)
}
