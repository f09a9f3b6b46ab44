// Command maybe-gen checks the capability contract of annotated types at
// generation time and emits sentinel policies for them.
//
// A type declaration may carry
//
//	//maybe:sane
//	//maybe:sentinel <expr>[, access=<checked|unchecked-deref|unchecked>]
//
// The first verifies that the type can be stored in a maybe container and
// pins its lifecycle hooks. The second also emits a SentinelPolicy that
// reserves <expr> as the empty value, and an alias for the matching
// elided Maybe.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/hsfzxjy/maybe/maybe-gen/internal"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/config"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/dumper/go_dumper"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/dumper/report_dumper"
	"github.com/hsfzxjy/maybe/maybe-gen/internal/exception"
)

func setupLogging(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity >= 2:
		level = slog.LevelDebug
	case verbosity == 1:
		level = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func run() (code int) {
	defer exception.Catch(os.Stderr, &code)

	parser := flags.NewParser(&config.Opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return 0
		}
		exception.Die(err)
	}
	opts := &config.Opts
	setupLogging(len(opts.Verbose))

	configFile := opts.ConfigFile
	if !filepath.IsAbs(configFile) {
		configFile = filepath.Join(opts.Dir, configFile)
	}
	config.Struct.Parse(configFile, opts.ConfigFile != config.DefaultConfigFile)

	exports := internal.NewExports(opts.Pattern.Value)
	exports.Dump(
		&go_dumper.GoDumper{DryRun: opts.DryRun, Out: os.Stdout},
		&report_dumper.ReportDumper{Path: opts.Report},
	)
	return 0
}

func main() { os.Exit(run()) }
