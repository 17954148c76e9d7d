package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/server"
	"github.com/desertthunder/tracy/internal/shared"
	"github.com/desertthunder/tracy/internal/token"
	"github.com/desertthunder/tracy/internal/ui"
	"github.com/desertthunder/tracy/internal/web"
	"github.com/desertthunder/tracy/internal/window"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Launch bootstraps the token file, starts the server, then blocks on the window or the console.
func (r *Runner) Launch(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, config); err != nil {
		return err
	}
	if cmd.Bool("debug") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	store, err := token.Open(config.Storage.TokenFile)
	if err != nil {
		return err
	}
	if err := store.Ensure(); err != nil {
		return err
	}
	r.logger.Debug("token file ready", "path", store.Path())

	assets := web.Embedded()
	if config.Server.Dev {
		assets = web.Dir(config.Server.AssetsDir)
	}

	stats := &server.Stats{}
	router := server.NewBasicRouter()
	router.Use(
		server.Logging(r.logger),
		server.Count(stats),
		server.RateLimit(server.NewLimiter(config.Server.RateLimit, config.Server.Burst)),
		server.Serialize(),
	)
	web.NewApp(assets, store, shared.WithLogger(r.logger, "component", "web")).Register(router)

	srv := server.New(config.Server.Addr(), router, shared.WithLogger(r.logger, "component", "server"))
	if err := srv.Start(); err != nil {
		return err
	}
	r.logger.Info("serving front-end", "url", srv.URL(), "assets", assets.Source())

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			r.logger.Warn("error shutting down server", "error", err)
		}
	}()

	if cmd.Bool("server") {
		return r.headless(ctx, srv, stats)
	}

	spec := window.Layout(r.goos, srv.URL(), config.Window)
	return window.NewShell(r.opener, r.logger, r.output).Run(ctx, spec)
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cmd *cli.Command, config *shared.Config) error {
	if cmd.IsSet("port") {
		port, err := shared.ParsePort(cmd.String("port"))
		if err != nil {
			return err
		}
		config.Server.Port = port
	}
	if cmd.Bool("dev") {
		config.Server.Dev = true
	}
	if dir := cmd.String("assets"); dir != "" {
		config.Server.AssetsDir = dir
	}
	if cmd.Bool("debug") {
		config.Window.Debug = true
	}
	return nil
}

// headless keeps the server alive until the user is done with it.
//
// On a terminal the console UI is shown; otherwise one line of input ends the server.
func (r *Runner) headless(ctx context.Context, srv *server.Server, stats *server.Stats) error {
	if in, ok := r.input.(*os.File); ok && isatty.IsTerminal(in.Fd()) {
		model := ui.NewModel(srv.URL(), srv.Port(), stats, srv.Err())
		return ui.Run(ctx, model, r.input, r.output)
	}

	if err := r.writePlain("You launch Tracy back as a server, on port %d\n", srv.Port()); err != nil {
		return err
	}

	line := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(r.input).ReadString('\n')
		line <- err
	}()

	select {
	case <-line:
		return nil
	case err, ok := <-srv.Err():
		if ok && err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		return nil
	}
}
