package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	vfs "github.com/twpayne/go-vfs"

	"github.com/dpleshakov/mkfile/internal/cli"
	"github.com/dpleshakov/mkfile/internal/config"
	"github.com/dpleshakov/mkfile/internal/create"
)

// version is set at build time with -ldflags "-X main.version=1.2.3".
var version = ""

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr, args)

	err := cmd.Execute()
	if err == nil {
		return cli.ExitSuccess
	}

	var usageErr *cli.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "%s: %s\n%s\n", cli.ProgramName, usageErr.Message, cli.UsageHint())
		return cli.ExitUsage
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintf(stderr, "%s: %s\n", cli.ProgramName, exitErr.Message)
		}
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "%s: %v\n", cli.ProgramName, err)
	return cli.ExitFailure
}

// newRootCmd builds the mkfile command for one invocation. The tokens are
// handed to cli.Parse directly and cobra is given none: its command lookup
// would otherwise treat a path named __complete as the hidden completion
// command.
func newRootCmd(stdout, stderr io.Writer, args []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:                cli.ProgramName + " [OPTION]... PATH...",
		Short:              "Create files, optionally with parents and default text",
		Version:            resolveVersion(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	// A non-nil empty slice; nil makes cobra fall back to os.Args.
	cmd.SetArgs([]string{})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func execute(stdout, stderr io.Writer, rawArgs []string) error {
	args, err := cli.Parse(rawArgs)
	if err != nil {
		return err
	}

	switch args.Action {
	case cli.ActionHelp:
		cli.PrintHelp(stdout)
		return nil
	case cli.ActionVersion:
		cli.PrintVersion(stdout, resolveVersion())
		return nil
	}

	errLog := log.New(stderr, cli.ProgramName+": ", 0)

	cfg, err := config.Load()
	if err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: fmt.Sprintf("config: %v", err)}
	}

	opts := create.Options{
		DryRun:    args.DryRun,
		Verbose:   args.Verbose || cfg.Defaults.Verbose,
		Parents:   args.Parents || cfg.Defaults.Parents,
		Overwrite: args.Overwrite,
		Text:      args.Text,
		HasText:   args.HasText,
		FileMode:  cfg.FileMode.Perm(),
		DirMode:   cfg.DirMode.Perm(),
	}
	if opts.Verbose && cfg.Path != "" {
		errLog.Printf("using config %s", cfg.Path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return &cli.ExitError{Code: cli.ExitFailure, Message: fmt.Sprintf("getting working directory: %v", err)}
	}

	reporter := create.NewReporter(stdout, errLog, opts, useColor(cfg.Color, stdout))
	results := create.NewProcessor(vfs.OSFS, cwd, opts).Run(args.Paths, reporter.Report)
	reporter.Summary(results)

	if create.Failed(results) {
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	return nil
}

// useColor decides whether status words are colored on w.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		color.ForceOpenColor()
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func resolveVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}
