/*
Gramrepl loads a grammar written in the compact notation of spec.md §4.1 and
either runs a single parse, prints grammar statistics, or opens an
interactive loop for driving LL(1) and LR(0) parses against it.

Usage:

	gramrepl [flags]

The flags are:

	-g, --grammar FILE
		Read the grammar from FILE. Required.

	-c, --config FILE
		Read engine step/state limits from FILE. Defaults to no file, which
		uses config.Default().

	-i, --input SYMBOLS
		Parse the given whitespace-free symbol string immediately and exit,
		printing both the LL(1) and LR(0) traces, instead of opening the
		interactive loop.

	-s, --stats
		Print grammar statistics (spec.md §4.8 composed stats) and exit.

	-r, --raw
		Build the LL(1) table in raw mode, keeping every alternative that
		mapped to a conflicting cell instead of only the first.

Once the interactive loop starts, each line is parsed as a symbol string and
run through both the LL(1) and LR(0) drivers; type "QUIT" to exit.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/pterm/pterm"

	"github.com/tpham/grammarkit/internal/automaton"
	"github.com/tpham/grammarkit/internal/config"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/input"
	"github.com/tpham/grammarkit/internal/parse"
	"github.com/tpham/grammarkit/internal/trace"
)

const (
	ExitSuccess = iota
	ExitInitError
	ExitRunError
)

var (
	returnCode  int     = ExitSuccess
	grammarFile *string = pflag.StringP("grammar", "g", "", "The grammar text file to load")
	configFile  *string = pflag.StringP("config", "c", "", "Engine config TOML file; defaults to built-in limits")
	oneShot     *string = pflag.StringP("input", "i", "", "Parse this symbol string and exit, instead of opening the interactive loop")
	showStats   *bool   = pflag.BoolP("stats", "s", false, "Print grammar statistics and exit")
	rawTable    *bool   = pflag.BoolP("raw", "r", false, "Build the LL(1) table in raw (all-alternatives) mode")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *grammarFile == "" {
		pterm.Error.Println("a grammar file is required: -g/--grammar FILE")
		returnCode = ExitInitError
		return
	}

	text, err := os.ReadFile(*grammarFile)
	if err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitInitError
		return
	}

	g, err := grammar.FromText(string(text))
	if err != nil {
		pterm.Error.Println(err.Error())
		returnCode = ExitInitError
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			pterm.Error.Println(err.Error())
			returnCode = ExitInitError
			return
		}
	}

	if *showStats {
		fmt.Println(trace.Stats(g, cfg.LR0StateCap))
		return
	}

	if *oneShot != "" {
		runOnce(g, cfg, symbols(*oneShot))
		return
	}

	if err := runLoop(g, cfg); err != nil && err != io.EOF {
		pterm.Error.Println(err.Error())
		returnCode = ExitRunError
	}
}

// symbols splits a one-shot input argument into single-character symbols,
// matching the symbol-per-character notation grammar text uses (spec.md
// §4.1).
func symbols(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func runOnce(g grammar.Grammar, cfg config.Engine, in []string) {
	ll1 := g.LL1Table(*rawTable)
	pterm.Info.Println("LL(1):")
	fmt.Println(trace.LL1Trace(parse.LL1Parse(g, ll1, in, cfg.LL1StepLimit)))

	sg, err := automaton.Build(g, cfg.LR0StateCap)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	lr0 := parse.BuildLR0Table(g, sg)
	pterm.Info.Println("LR(0):")
	fmt.Println(trace.LR0Trace(parse.LR0Parse(g, lr0, in, cfg.LR0StepLimit)))
}

// runLoop opens the interactive REPL, reading symbol strings from stdin via
// readline if a readline instance can be created, falling back to direct
// reads otherwise, in the style of dekarrin/tunaq's tqi's reader selection.
func runLoop(g grammar.Grammar, cfg config.Engine) error {
	ll1 := g.LL1Table(*rawTable)
	sg, err := automaton.Build(g, cfg.LR0StateCap)
	if err != nil {
		return err
	}
	lr0 := parse.BuildLR0Table(g, sg)

	var reader interface {
		ReadLine() (string, error)
		Close() error
	}

	if ir, rlErr := input.NewInteractiveReader("gramrepl> "); rlErr == nil {
		reader = ir
	} else {
		reader = input.NewDirectReader(os.Stdin)
	}
	defer reader.Close()

	pterm.Info.Println("loaded grammar with axiom " + g.Axiom() + ". Type QUIT to exit.")

	for {
		line, err := reader.ReadLine()
		if err != nil {
			return err
		}
		if line == "QUIT" {
			return nil
		}

		in := symbols(line)
		runOnce(g, cfg, in)
	}
}
