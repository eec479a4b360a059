// Command mf2fmt parses a MessageFormat 2 message and prints its
// canonical rendering, its diagnostics, or its parsed AST.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/repr"

	"github.com/lucacasonato/mf2"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "mf2fmt: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("mf2fmt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		path     = fs.String("file", "", "message source file (default: read stdin)")
		logLevel = fs.String("log-level", "warn", "log level: error|warn|info|debug")
		dumpAST  = fs.Bool("dump-ast", false, "print the parsed AST instead of reformatting")
		showDiag = fs.Bool("diagnostics", false, "print diagnostics to stderr")
		showVer  = fs.Bool("version", false, "print version and exit")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mf2fmt [options]\n\nReformat a MessageFormat 2 message.\n\nOptions:\n")
		fs.SetOutput(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		fs.Usage()
		return fmt.Errorf("parse flags: %w", err)
	}

	if *showVer {
		fmt.Fprintf(stdout, "mf2fmt %s\n", version)
		return nil
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}

	var source []byte
	if *path != "" {
		source, err = os.ReadFile(*path)
		if err != nil {
			return fmt.Errorf("read %s: %w", *path, err)
		}
	} else {
		source, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	ctx := context.Background()
	msg, diags, _ := mf2.Parse(ctx, string(source), mf2.WithLogger(logger))

	if *showDiag {
		for _, d := range diags.Diagnostics() {
			fmt.Fprintln(os.Stderr, d.String())
		}
	}

	if *dumpAST {
		repr.Println(msg)
		return nil
	}

	fmt.Fprintln(stdout, mf2.Print(ctx, msg, mf2.WithLogger(logger)))
	return nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "error":
		lvl = slog.LevelError
	case "warn":
		lvl = slog.LevelWarn
	case "info":
		lvl = slog.LevelInfo
	case "debug":
		lvl = slog.LevelDebug
	default:
		return nil, fmt.Errorf("invalid log level: %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
