package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/midbel/cli"

	"github.com/funvibe/syntactic/internal/config"
)

var errFail = errors.New("fail")

var (
	summary = "syntactic: typed syntax trees over composed domains"
	help    = "syntactic lists, renders, draws and evaluates the sample programs of the Arith/Logic/Compare language."
)

var (
	stdout   io.Writer = os.Stdout
	settings           = config.Default()
	terminal           = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	root := prepare()
	root.SetSummary(summary)
	root.SetHelp(help)

	file, args, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg, err := loadConfig(file)
	if err != nil {
		log.Fatal(err)
	}
	settings = cfg

	err = root.Execute(args)
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		if !errors.Is(err, errFail) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// parseFlags reads the global options and returns the configuration file
// and the remaining arguments.
func parseFlags(args []string) (string, []string, error) {
	var (
		set  = cli.NewFlagSet("syntactic")
		file string
	)
	set.StringVar(&file, "c", "", "configuration file")
	set.BoolVar(&config.Verbose, "v", false, "verbose")
	if err := set.Parse(args); err != nil {
		return "", nil, fmt.Errorf("syntactic: %w", err)
	}
	return file, set.Args(), nil
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{config.ListCmdName}, &listCmd)
	root.Register([]string{config.ShowCmdName}, &showCmd)
	root.Register([]string{config.DrawCmdName}, &drawCmd)
	root.Register([]string{config.EvalCmdName}, &evalCmd)
	root.Register([]string{config.CheckCmdName}, &checkCmd)

	return root
}

func loadConfig(file string) (*config.Config, error) {
	if file == "" {
		found, err := config.FindConfig(".")
		if err != nil {
			return nil, err
		}
		if found == "" {
			debugf("no %s found, using defaults", config.ConfigFileName)
			return config.Default(), nil
		}
		file = found
	}
	debugf("loading %s", file)
	return config.LoadConfig(file)
}

func debugf(format string, args ...any) {
	if config.Verbose {
		log.Printf(format, args...)
	}
}
