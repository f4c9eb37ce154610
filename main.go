package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"pixgrid/check"
	"pixgrid/config"
	"pixgrid/paint"
	"pixgrid/palette"
	"pixgrid/parallel"
	"pixgrid/tui"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Config   string `help:"Config file" type:"path" default:"${config_path}"`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	Workers  int    `help:"Parallel workers for batch commands, 0 for one per CPU" default:"0"`

	Edit    tui.CLICmd     `cmd:"" default:"withargs" help:"Open the interactive grid editor"`
	New     paint.NewCmd   `cmd:"" help:"Write a blank grid bitmap"`
	Paint   paint.CLICmd   `cmd:"" help:"Replay clicks on a grid bitmap"`
	Info    paint.InfoCmd  `cmd:"" help:"Describe grid bitmaps"`
	Check   check.CLICmd   `cmd:"" help:"Report which bitmaps of a folder can be edited"`
	Palette palette.CLICmd `cmd:"" help:"Inspect and export palettes"`
}

func main() {
	cfgPath := configFlag(os.Args[1:])
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	vars := kong.Vars(cfg.Vars())
	vars["config_path"] = config.Path()

	var cli CLI
	parser, err := newParser(&cli, vars)
	if err != nil {
		panic(err)
	}
	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	level, err := config.ParseLevel(cli.LogLevel)
	kctx.FatalIfErrorf(err)

	logger, closeLog, err := newLogger(kctx.Command(), level)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)

	slog.Debug("running", "command", kctx.Command(), "config", cfgPath)

	err = kctx.Run(logger)
	closeLog()
	kctx.FatalIfErrorf(err)
}

// startPool launches the worker pool of batch commands.
var startPool = parallel.Start

// newParser builds the command line parser. Commands taking a
// *parallel.Pool get one started with --workers; the others never start it.
func newParser(cli *CLI, vars kong.Vars, options ...kong.Option) (*kong.Kong, error) {
	return kong.New(cli, append([]kong.Option{
		kong.Name("pixgrid"),
		kong.Description("Paint small pixel grids and save them as bitmaps."),
		kong.UsageOnError(),
		vars,
		kong.BindToProvider(func() (*parallel.Pool, error) {
			return startPool(cli.Workers), nil
		}),
	}, options...)...)
}

// configFlag finds --config before kong runs, since the file provides the
// defaults of the other flags.
func configFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// newLogger logs to stderr, except for the editor which owns the terminal
// and logs to a file next to the config.
func newLogger(command string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: level}
	if command != "edit" && !strings.HasPrefix(command, "edit ") {
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	}

	dir := config.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("unable to create log folder %q: %w", dir, err)
	}

	name := filepath.Join(dir, "pixgrid.log")
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open log file %q: %w", name, err)
	}

	return slog.New(slog.NewTextHandler(logFile, opts)), func() {
		if closeErr := logFile.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "could not close log file %q: %v\n", name, closeErr)
		}
	}, nil
}
