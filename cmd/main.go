// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"secrecy/internal/config"
	"secrecy/internal/core"
	"secrecy/internal/detector"
	"secrecy/internal/formatters"
	"secrecy/internal/help"
	"secrecy/internal/parallel"
	"secrecy/internal/precommit"
	"secrecy/internal/source"
	"secrecy/internal/version"
)

const (
	exitClean    = 0
	exitFindings = 1
	exitFatal    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("secrecy", flag.ContinueOnError)
	configFile := flags.String("config", "", "path to the configuration file")
	format := flags.String("format", "text", "report format: text, json or yaml")
	workers := flags.Int("workers", 0, "number of parallel scan workers (0 = one per CPU)")
	noColor := flags.Bool("no-color", false, "disable colored output")
	verbose := flags.Bool("verbose", false, "enable progress logging")
	showVersion := flags.Bool("version", false, "print version information and exit")
	flags.Usage = func() { fmt.Fprint(os.Stderr, help.Usage) }
	if err := flags.Parse(args); err != nil {
		return exitFatal
	}

	// Hook output ends up in git's captured stderr, where escape codes
	// only add noise.
	if *noColor || precommit.InHookEnvironment() || !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	if *showVersion {
		fmt.Println(version.Info())
		return exitClean
	}

	switch flags.Arg(0) {
	case "version":
		fmt.Println(version.Info())
		return exitClean
	case "help":
		fmt.Print(help.ForTopic(flags.Arg(1)))
		return exitClean
	case "":
		flags.Usage()
		return exitFatal
	}

	src, err := selectSource(flags, logger)
	if err != nil {
		return fatal(err)
	}

	cfgPath := *configFile
	if cfgPath == "" {
		cfgPath = config.FindConfigFile()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fatal(err)
	}
	if cfgPath != "" {
		logger.Debug().Str("config", cfgPath).
			Int("ignore_patterns", len(cfg.IgnorePatterns)).
			Int("vault_patterns", len(cfg.VaultPatterns)).
			Msg("configuration loaded")
	}

	engine, err := core.NewEngine(cfg)
	if err != nil {
		return fatal(err)
	}
	if pathSrc, ok := src.(*source.PathSource); ok {
		pathSrc.Ignored = engine.IsIgnored
	}

	rctx := detector.NewReportContext()
	scanned, err := scan(engine, rctx, src, *workers, logger)
	if err != nil {
		return fatal(err)
	}
	logger.Debug().Int("files", scanned).Msg("scan complete")

	rctx.Emit(os.Stderr)
	if *format != "text" {
		formatter, err := formatters.Get(*format)
		if err != nil {
			return fatal(err)
		}
		report, err := formatter.Format(rctx.Findings(), formatters.Options{NoColor: *noColor})
		if err != nil {
			return fatal(err)
		}
		fmt.Println(report)
	}

	if rctx.Errored() {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Potentially found unencrypted secrets!")
		return exitFindings
	}
	return exitClean
}

// selectSource maps the subcommand to a file source.
func selectSource(flags *flag.FlagSet, logger zerolog.Logger) (source.Source, error) {
	switch cmd := flags.Arg(0); cmd {
	case "path":
		if flags.NArg() != 2 {
			return nil, fmt.Errorf("usage: secrecy path <dir-or-file>")
		}
		return &source.PathSource{
			Root:   flags.Arg(1),
			Notify: func(msg string) { fmt.Fprintln(os.Stderr, msg) },
		}, nil
	case "staged":
		if flags.NArg() != 1 {
			return nil, fmt.Errorf("usage: secrecy staged")
		}
		return &source.StagedSource{Log: logger}, nil
	case "between":
		if flags.NArg() != 3 {
			return nil, fmt.Errorf("usage: secrecy between <base-commit> <target-commit>")
		}
		return &source.RangeSource{Base: flags.Arg(1), Target: flags.Arg(2), Log: logger}, nil
	default:
		return nil, fmt.Errorf("unknown command %q, see 'secrecy help'", cmd)
	}
}

// scan feeds every file of the source through the worker pool. A source
// error cancels the remaining work; findings recorded so far stay intact.
func scan(engine *core.Engine, rctx *detector.ReportContext, src source.Source, workers int, logger zerolog.Logger) (int, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	start := time.Now()
	pool := parallel.NewPool(engine, rctx, workers)
	pool.Start(ctx)

	scanned := 0
	err := src.Files(ctx, func(file source.File) error {
		scanned++
		return pool.Submit(ctx, file)
	})
	if err != nil {
		cancel()
	}
	pool.Wait()
	logger.Debug().Str("source", src.Name()).Dur("elapsed", time.Since(start)).Msg("source drained")
	return scanned, err
}

func fatal(err error) int {
	fmt.Fprintf(os.Stderr, "secrecy: %v\n", err)
	return exitFatal
}
