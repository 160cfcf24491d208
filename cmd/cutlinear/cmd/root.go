// Package cmd implements the cutlinear CLI commands.
//
// The root command dispatches to subcommands (render, path, inspect,
// version). Each subcommand takes a style file as its first argument.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/cutlinear/pkg/errors"
	"github.com/go-drift/cutlinear/pkg/logx"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Output streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "cutlinear",
	Short: "cutlinear - linear layouts with cut corners",
	Long: `cutlinear lays out a row or column of boxes described in a YAML or
TOML style file and derives its cut outline, shadow and dividers.

Use "cutlinear <command> --help" for more information about a command.`,
	Usage: "cutlinear <command> <style-file> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) (err error) {
	defer errors.RecoverWithCallback("cli", func(r any) {
		err = fmt.Errorf("internal error: %v", r)
	})

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	var (
		filteredArgs []string
		verbose      bool
	)
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				printVersion()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs
	configureLogging(verbose)

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// configureLogging routes configuration fallbacks to stderr. With verbose
// set, layout debug records are written as well.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: verbose})
	if verbose {
		logx.SetLogger(logger)
	} else {
		logx.SetLogger(nil)
	}
}

func printVersion() {
	fmt.Fprintf(stdout, "cutlinear version %s (built %s)\n", Version, BuildTime)
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Log layout debug records to stderr")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  cutlinear render ticket.yaml -o ticket.png")
	fmt.Fprintln(stdout, "  cutlinear path ticket.toml --children")
	fmt.Fprintln(stdout, "  cutlinear inspect ticket.yaml")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// flagValue returns the value following a flag at args[i], accepting both
// "--name value" and "--name=value".
func flagValue(args []string, i *int, name string) (string, bool, error) {
	arg := args[*i]
	if v, ok := strings.CutPrefix(arg, name+"="); ok {
		return v, true, nil
	}
	if arg != name {
		return "", false, nil
	}
	if *i+1 >= len(args) {
		return "", true, fmt.Errorf("%s requires a value", name)
	}
	*i++
	return args[*i], true, nil
}
