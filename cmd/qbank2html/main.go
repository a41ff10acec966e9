package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand reports an unrecognized subcommand.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := DefaultEnv()
	if err := run(ctx, os.Args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// run dispatches to a subcommand.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return fmt.Errorf("%w: none given", ErrUnknownCommand)
	}

	switch args[1] {
	case "convert":
		flags, positional, err := parseConvertFlags(args[2:])
		if err != nil {
			return err
		}
		return runConvert(ctx, positional, flags, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "qbank2html %s\n", Version)
		return nil
	case "help", "--help", "-h":
		runHelp(args[2:], env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[1])
	}
}
