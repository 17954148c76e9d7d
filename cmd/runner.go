package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tracy/internal/shared"
	"github.com/desertthunder/tracy/internal/window"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	logger *log.Logger
	output io.Writer
	input  io.Reader
	opener window.Opener
	goos   string
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
	Input  io.Reader
	Opener window.Opener
	GOOS   string
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Opener == nil {
		opts.Opener = window.NewBrowserOpener()
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}

	return &Runner{
		logger: opts.Logger,
		output: opts.Output,
		input:  opts.Input,
		opener: opts.Opener,
		goos:   opts.GOOS,
	}
}

func (r *Runner) command() *cli.Command {
	return rootCommand(r)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){setupCommand, tokenCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// loadConfig reads the file named by --config, falling back to defaults when it does not exist.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	path := cmd.String("config")
	config, err := shared.LoadConfigOrDefault(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("configuration loaded", "path", path)
	return config, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
