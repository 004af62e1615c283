// wexpr - Wolfram notation toolkit CLI
//
// Usage:
//
//	wexpr fmt [flags] [file]    Convert JSON to Wolfram notation
//	wexpr sweep [flags] [file]  Generate a SLURM sweep script from a JSON config
//	wexpr memstat               Print this process's memory usage as an association
//	wexpr version               Print version info
//
// If no file is given, fmt and sweep read from stdin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/qhpc/wexpr/memstat"
	"github.com/qhpc/wexpr/sweep"
	"github.com/qhpc/wexpr/wexpr"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "fmt":
		runFmt(os.Args[2:])
	case "sweep":
		runSweep(os.Args[2:])
	case "memstat":
		runMemstat()
	case "version":
		fmt.Printf("wexpr %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "wexpr: unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	precision := fs.Int("precision", wexpr.DefaultPrecision, "fractional digits in scientific notation")
	symbols := fs.Bool("symbols", false, "emit strings as bare symbols")
	noIntLiterals := fs.Bool("no-int-literals", false, "force scientific notation for integral reals")
	keyOrder := fs.String("key-order", "", "comma-separated top-level key order")
	out := fs.String("o", "", "write to file instead of stdout")
	fs.Parse(args)

	data := readInput(fs.Args())

	v, err := wexpr.FromJSON(data)
	if err != nil {
		fatal("%v", err)
	}

	opts := wexpr.DefaultOptions()
	opts.Precision = *precision
	opts.Symbols = *symbols
	opts.KeepIntegers = !*noIntLiterals
	if *keyOrder != "" {
		for _, k := range strings.Split(*keyOrder, ",") {
			opts.KeyOrder = append(opts.KeyOrder, wexpr.Str(strings.TrimSpace(k)))
		}
	}

	if *out != "" {
		if err := wexpr.WriteFile(context.Background(), v, *out, opts); err != nil {
			fatal("%v", err)
		}
		return
	}

	text, err := wexpr.EmitWithOptions(v, opts)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(text)
}

// sweepConfig is the JSON shape accepted by the sweep command. A parameter
// carries either an explicit value list or a span, not both.
type sweepConfig struct {
	Fields map[string]any `json:"fields"`
	Params []sweepParam   `json:"params"`
	Order  []string       `json:"order"`
}

type sweepParam struct {
	Name   string     `json:"name"`
	Values []any      `json:"values"`
	Span   *sweepSpan `json:"span"`
}

type sweepSpan struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Step  int `json:"step"`
}

func runSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	out := fs.String("o", "", "write the script to file instead of stdout")
	fs.Parse(args)

	data := readInput(fs.Args())

	var cfg sweepConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		fatal("bad sweep config: %v", err)
	}

	params := make([]sweep.Param, 0, len(cfg.Params))
	for _, p := range cfg.Params {
		switch {
		case p.Span != nil && p.Values != nil:
			fatal("parameter %q has both values and span", p.Name)
		case p.Span != nil:
			step := p.Span.Step
			if step == 0 {
				step = 1
			}
			params = append(params, sweep.Param{Name: p.Name, Values: sweep.Span{Start: p.Span.Start, Stop: p.Span.Stop, Step: step}})
		default:
			params = append(params, sweep.Param{Name: p.Name, Values: sweep.List(p.Values)})
		}
	}

	if *out != "" {
		if err := sweep.WriteScript(context.Background(), *out, cfg.Fields, params, cfg.Order); err != nil {
			fatal("%v", err)
		}
		return
	}

	script, err := sweep.Script(cfg.Fields, params, cfg.Order)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Print(script)
}

func runMemstat() {
	u, err := memstat.Sample()
	if err != nil {
		fatal("%v", err)
	}

	v := wexpr.Assoc(
		wexpr.Rule(wexpr.Str("CurrentResident"), wexpr.Int(int64(u.CurrentResident))),
		wexpr.Rule(wexpr.Str("PeakResident"), wexpr.Int(int64(u.PeakResident))),
		wexpr.Rule(wexpr.Str("CurrentVirtual"), wexpr.Int(int64(u.CurrentVirtual))),
		wexpr.Rule(wexpr.Str("PeakVirtual"), wexpr.Int(int64(u.PeakVirtual))),
	)
	text, err := wexpr.Emit(v)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Println(text)
}

// readInput returns the contents of the named file, or stdin when no file
// (or "-") is given.
func readInput(args []string) []byte {
	if len(args) > 1 {
		fatal("too many arguments")
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fatal("read %s: %v", args[0], err)
		}
		return data
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	return data
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "wexpr: "+format+"\n", args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `wexpr - Wolfram notation toolkit

Usage:
  wexpr fmt [flags] [file]    Convert JSON to Wolfram notation
  wexpr sweep [flags] [file]  Generate a SLURM sweep script from a JSON config
  wexpr memstat               Print this process's memory usage as an association
  wexpr version               Print version info

fmt flags:
  -precision N       fractional digits in scientific notation (default 5)
  -symbols           emit strings as bare symbols
  -no-int-literals   force scientific notation for integral reals
  -key-order a,b,c   top-level association key order
  -o FILE            write to file instead of stdout

sweep flags:
  -o FILE            write the script to file instead of stdout

If no file is given, fmt and sweep read from stdin.`)
}
