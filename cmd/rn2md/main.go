package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commandNames lists the CLI commands; show is the default.
var commandNames = []string{"show", "convert", "doctor", "completion", "version", "help"}

func main() {
	env := DefaultEnv()
	setMaxProcs(env.Stderr, wantsVerbose(os.Args[1:]))
	os.Exit(runMain(os.Args, env))
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota before the
// worker pool is sized. The library only logs in verbose mode.
func setMaxProcs(w io.Writer, verbose bool) {
	logf := func(string, ...interface{}) {}
	if verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// wantsVerbose reports whether args ask for verbose output.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}

// isCommand reports whether name is a CLI command.
func isCommand(name string) bool {
	return slices.Contains(commandNames, name)
}

// runMain dispatches args (program name first) and returns the exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	cmd := "show"
	if len(args) > 0 && isCommand(args[0]) {
		cmd, args = args[0], args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "version":
		fmt.Fprintf(env.Stdout, "rn2md %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(args, env)
	case "doctor":
		return runDoctorCmd(args, env)
	case "completion":
		err = runCompletion(args, env)
	case "convert":
		err = runConvertCmd(ctx, args, env)
		if errors.Is(err, flag.ErrHelp) {
			printConvertUsage(env.Stdout)
			return ExitSuccess
		}
	default:
		err = runShowCmd(ctx, args, env)
		if errors.Is(err, flag.ErrHelp) {
			printShowUsage(env.Stdout)
			return ExitSuccess
		}
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		code := exitCodeFor(err)
		if code == ExitUsage && errors.Is(err, ErrInvalidArgs) {
			fmt.Fprintf(env.Stderr, "Run 'rn2md help %s' for usage.\n", cmd)
		}
		return code
	}
	return ExitSuccess
}
