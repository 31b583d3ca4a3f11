// Package main is the entry point for the ding CLI application.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	dingcli "github.com/NikitaCOEUR/ding/internal/cli"
	"github.com/NikitaCOEUR/ding/internal/config"
	"github.com/NikitaCOEUR/ding/internal/derrors"
	"github.com/NikitaCOEUR/ding/internal/logger"
	"github.com/NikitaCOEUR/ding/internal/shell"
	"github.com/NikitaCOEUR/ding/internal/trace"
	"github.com/NikitaCOEUR/ding/pkg/version"
)

func main() {
	defer trace.Init()()

	app := newApp(os.Stdin, os.Stdout)
	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

// exitCode reports err on stderr unless it is a completion failure,
// whose input has already been echoed
func exitCode(err error, stderr io.Writer) int {
	if !derrors.IsPassThrough(err) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ding",
		Usage:     "Complete the curl command read on stdin from an OpenAPI spec",
		UsageText: "echo 'curl https://host/pets' | ding --spec openapi.yaml",
		Version:   version.String(),
		Writer:    stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "spec",
				Aliases: []string{"s"},
				Usage:   "OpenAPI 3 spec file (YAML or JSON)",
				Sources: cli.EnvVars("DING_SPEC"),
			},
			&cli.StringFlag{
				Name:    "path-prefix",
				Aliases: []string{"p"},
				Usage:   "Prefix stripped from request paths before matching",
				Sources: cli.EnvVars("DING_PATH_PREFIX"),
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Print {\"cursor_position\":N,\"stdout\":\"...\"} instead of the raw command",
				Sources: cli.EnvVars("DING_JSON"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   logger.DefaultLevel,
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("DING_LOG_LEVEL"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			s := settings(cmd)
			return dingcli.Complete(dingcli.CompleteParams{
				LogLevel:   s.LogLevel,
				SpecPath:   s.SpecPath,
				PathPrefix: s.PathPrefix,
				JSON:       s.JSON,
				Input:      stdin,
				Output:     stdout,
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "widget",
				Usage: "Print a shell widget that completes the command line in place",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   shell.ShellAuto,
						Usage:   "Shell type: bash, zsh, fish or auto",
						Sources: cli.EnvVars("DING_SHELL"),
					},
					&cli.StringFlag{
						Name:  "key",
						Value: shell.DefaultKey,
						Usage: "Key sequence bound to the widget, in caret notation",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					s := settings(cmd)
					return dingcli.Widget(dingcli.WidgetParams{
						Shell:      cmd.String("shell"),
						Key:        cmd.String("key"),
						SpecPath:   s.SpecPath,
						PathPrefix: s.PathPrefix,
						Output:     stdout,
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show the operations ding can complete for the spec",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return dingcli.Status(dingcli.StatusParams{
						Settings: settings(cmd),
						Output:   stdout,
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a ding configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return dingcli.Validate(configPath, stdout)
				},
			},
		},
	}
}

// settings resolves the effective options from flags, environment and
// the config files above the current directory
func settings(cmd *cli.Command) dingcli.Settings {
	var o dingcli.Overrides
	if cmd.IsSet("spec") {
		v := cmd.String("spec")
		o.SpecPath = &v
	}
	if cmd.IsSet("path-prefix") {
		v := cmd.String("path-prefix")
		o.PathPrefix = &v
	}
	if cmd.IsSet("log-level") {
		v := cmd.String("log-level")
		o.LogLevel = &v
	}
	if cmd.IsSet("json") {
		v := cmd.Bool("json")
		o.JSON = &v
	}

	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	log := logger.New(cmd.String("log-level"), os.Stderr)
	return dingcli.ResolveSettings(dir, o, config.New(), log)
}
