// img2ascii renders an image as 24-bit colored text on stdout.
//
// Usage examples:
//
// # Default 64 columns
// ./img2ascii --input photo.png
//
// # Wider, colors averaged over each cell, repeated colors coalesced
// ./img2ascii -i photo.jpg -w 120 --sample average --coalesce
//
// # Pipe through a pager
// ./img2ascii -i photo.webp | less -R
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/img2ascii/convert"
	"github.com/lixenwraith/img2ascii/emit"
	"github.com/lixenwraith/img2ascii/terminal"
)

const (
	appName    = "img2ascii"
	appVersion = "1.0"
)

var errNoInput = errors.New("the required flag --input was not provided")

// config holds parsed command-line flags
type config struct {
	input    string
	width    uint
	sample   string
	coalesce bool
	debug    bool
	version  bool
}

func main() {
	// Panic Recovery: leave the terminal with default colors even on a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet()
	cfg, err := parseFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(fs, stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.version {
		fmt.Fprintf(stdout, "%s %s\n", appName, appVersion)
		return 0
	}

	if logFile := setupLogging(cfg.debug); logFile != nil {
		defer logFile.Close()
	}

	opts, err := cfg.options()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logTerminal(stdout, opts.Width)

	res, err := convert.Run(opts, stdout)
	if err != nil {
		log.Printf("Conversion failed: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Printf("Done: %s %dx%d -> %dx%d", res.Format, res.SourceW, res.SourceH, res.GridW, res.GridH)
	return 0
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	// Parse errors are reported once, through the Error: line
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) (config, error) {
	var cfg config

	fs.StringVar(&cfg.input, "input", "", "Path to the image file (required)")
	fs.StringVar(&cfg.input, "i", "", "Path to the image file (shorthand)")
	fs.UintVar(&cfg.width, "width", convert.DefaultWidth, "Output width in columns")
	fs.UintVar(&cfg.width, "w", convert.DefaultWidth, "Output width in columns (shorthand)")
	fs.StringVar(&cfg.sample, "sample", emit.PolicyNearest.String(), "Color sampling: nearest, average, lanczos or stride")
	fs.BoolVar(&cfg.coalesce, "coalesce", false, "Skip color sequences that repeat the previous glyph's color")
	fs.BoolVar(&cfg.debug, "debug", false, "Write debug logs to logs/"+logFileName)
	fs.BoolVar(&cfg.version, "version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return cfg, nil
}

// options validates the flags and maps them onto a conversion
func (c config) options() (convert.Options, error) {
	if c.input == "" {
		return convert.Options{}, errNoInput
	}
	policy, err := emit.ParsePolicy(c.sample)
	if err != nil {
		return convert.Options{}, err
	}

	opts := convert.DefaultOptions()
	opts.Input = c.input
	opts.Width = int(c.width)
	opts.Policy = policy
	opts.Coalesce = c.coalesce
	return opts, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s --input <path> [options]\n\nOptions:\n", appName)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(io.Discard)
	fmt.Fprintln(w, "\nSampling:")
	fmt.Fprintln(w, "  nearest - Pixel at the center of each cell (default)")
	fmt.Fprintln(w, "  average - Mean color of each cell, linear RGB")
	fmt.Fprintln(w, "  lanczos - Lanczos3 downscale to the grid size")
	fmt.Fprintln(w, "  stride  - Flat index walk with the source width as stride")
}

// logTerminal records the output terminal geometry when stdout is a tty
func logTerminal(stdout io.Writer, width int) {
	f, ok := stdout.(*os.File)
	if !ok || !terminal.IsTerminal(f) {
		log.Printf("Output is not a terminal")
		return
	}
	cols, rows, ok := terminal.Size(f)
	if !ok {
		log.Printf("Output is a terminal of unknown size")
		return
	}
	log.Printf("Terminal %dx%d", cols, rows)
	if width > cols {
		log.Printf("Width %d exceeds terminal width %d, lines will wrap", width, cols)
	}
}
