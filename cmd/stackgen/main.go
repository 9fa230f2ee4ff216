package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"stackgen/internal/config"
	"stackgen/internal/generate"
	"stackgen/internal/logger"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "init",
		short: "Answer a few questions and generate the stack",
		usage: "stackgen init [--dir DIR]",
		long: `Prompt for container names, ports, credentials and options, then write
the docker compose stack into DIR (default: current directory).

Existing files with the same names are overwritten.
`,
		run: runInit,
	},
	{
		name:  "generate",
		short: "Generate the stack from an answers file",
		usage: "stackgen generate [--answers FILE] [--dir DIR]",
		long: `Generate the stack without prompting.

Answers are read from FILE (yaml, json, toml or .env) and from STACKGEN_*
environment variables, e.g. STACKGEN_WEB_PORT=8080. Missing answers take
their defaults. Existing files with the same names are overwritten.
`,
		run: runGenerate,
	},
	{
		name:  "artifacts",
		short: "List the files a run writes",
		usage: "stackgen artifacts",
		long: `Print the path of every generated file, relative to the target
directory, in write order.
`,
		run: runArtifacts,
	},
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// stdout is swapped in tests.
var stdout io.Writer = os.Stdout

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "stackgen — PHP/Apache/MariaDB docker compose scaffolding\n\n")
	fmt.Fprintf(w, "Usage:\n  stackgen <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'stackgen help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "stackgen: unknown command %q\n\nRun 'stackgen help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(stdout, args[1])
		} else {
			printUsage(stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'stackgen help' for usage.", args[0])
}

// newFlagSet returns a flag set that reports errors instead of exiting.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *pflag.FlagSet, usage string, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return fmt.Errorf("usage: %s", usage)
		}
		return fmt.Errorf("%w\nusage: %s", err, usage)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q\nusage: %s", fs.Arg(0), usage)
	}
	return nil
}

// ---------------------------------------------------------------------------
// init
// ---------------------------------------------------------------------------

func runInit(args []string) error {
	const usage = "stackgen init [--dir DIR]"
	fs := newFlagSet("init")
	dir := fs.String("dir", ".", "target directory")
	if err := parseFlags(fs, usage, args); err != nil {
		return err
	}

	fmt.Fprintln(stdout, titleStyle.Render("stackgen — interactive setup"))
	answers, err := promptQuestions(config.Questions())
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	cfg, err := config.FromAnswers(answers)
	if err != nil {
		return err
	}
	return scaffold(cfg, *dir)
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func runGenerate(args []string) error {
	const usage = "stackgen generate [--answers FILE] [--dir DIR]"
	fs := newFlagSet("generate")
	answers := fs.String("answers", "", "answers file (yaml, json, toml or .env)")
	dir := fs.String("dir", ".", "target directory")
	if err := parseFlags(fs, usage, args); err != nil {
		return err
	}

	cfg, err := config.Load(*answers)
	if err != nil {
		return err
	}
	return scaffold(cfg, *dir)
}

// ---------------------------------------------------------------------------
// artifacts
// ---------------------------------------------------------------------------

func runArtifacts(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("usage: stackgen artifacts")
	}
	for _, p := range generate.Paths() {
		fmt.Fprintln(stdout, p)
	}
	return nil
}

// scaffold validates cfg, writes the stack into dir and prints next steps.
func scaffold(cfg config.Configuration, dir string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := generate.Run(cfg, dir); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	fmt.Fprintln(stdout, okStyle.Render("All files generated."))
	fmt.Fprintf(stdout, "\nNext steps:\n")
	fmt.Fprintf(stdout, "  1. Load the aliases:   source aliases.sh\n")
	fmt.Fprintf(stdout, "  2. Start the stack:    docker compose up -d --build\n")
	fmt.Fprintf(stdout, "  3. Put your application in www/\n")
	fmt.Fprintf(stdout, "  4. Open http://localhost:%s\n\n", cfg.WebPort)
	fmt.Fprintln(stdout, hintStyle.Render("See README.md for details."))
	return nil
}

func main() {
	logger.Init(os.Getenv("STACKGEN_LOG_LEVEL"), os.Stderr)
	if err := dispatch(os.Args[1:]); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
