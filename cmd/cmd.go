// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// rootCommand launches the server and the window.
func rootCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tracy",
		Usage:   "Todo tRACker for Yourself (yes it's a retro acronym ;)",
		Version: "1.2.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Set this value if you want to change the app port (default: 8001)",
			},
			&cli.BoolFlag{
				Name:    "server",
				Aliases: []string{"s"},
				Usage:   "Use this value to launch Tracy back only as a server",
			},
			&cli.BoolFlag{
				Name:  "dev",
				Usage: "Serve the front-end live from the assets directory",
			},
			&cli.StringFlag{
				Name:  "assets",
				Usage: "Front-end directory used with --dev (default: front)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging and web view developer tools",
			},
		},
		Commands: r.register(),
		Action:   r.Launch,
	}
}

// setupCommand writes the configuration template and the token file.
//
// Like every subcommand it reads --config from the root command.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create config.toml and the token file",
		Action: r.Setup,
	}
}

// tokenCommand reads and writes the stored token without starting the server.
func tokenCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Manage the stored token",
		Commands: []*cli.Command{
			{
				Name:   "path",
				Usage:  "Print the token file location",
				Action: r.TokenPath,
			},
			{
				Name:   "show",
				Usage:  "Print the stored token",
				Action: r.TokenShow,
			},
			{
				Name:  "set",
				Usage: "Replace the stored token",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "value"},
				},
				Action: r.TokenSet,
			},
			{
				Name:  "inspect",
				Usage: "Describe the stored token, decoding OAuth2 tokens",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.TokenInspect,
			},
		},
	}
}
