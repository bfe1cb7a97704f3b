// Command elementnamer spells a word with chemical-element symbols.
//
//	elementnamer [-table path] [-format text|markdown|html] <word>
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dgallion1/elementnamer/internal/config"
	"github.com/dgallion1/elementnamer/internal/render"
	"github.com/dgallion1/elementnamer/internal/segment"
	"github.com/dgallion1/elementnamer/internal/table"
)

const (
	exitOK       = 0
	exitNotFound = 1
	exitUsage    = 2
	exitFailure  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("elementnamer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tablePath := fs.String("table", cfg.TablePath, "element table source (.csv or .html)")
	format := fs.String("format", "text", "output format: text, markdown or html")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: elementnamer [-table path] [-format text|markdown|html] <word>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	tbl, err := table.LoadFile(*tablePath)
	if err != nil {
		log.Error("load element table", "error", err)
		return exitFailure
	}

	word := strings.TrimSpace(fs.Arg(0))
	if err := cfg.CheckWork(segment.Normalize(word), tbl); err != nil {
		log.Error("refusing word", "word", word, "error", err)
		return exitFailure
	}

	res := segment.Decompose(word, tbl)
	log.Debug("decomposed", "word", res.Word, "decompositions", len(res.Decompositions), "tree_nodes", res.TreeNodes)

	switch *format {
	case "text":
		err = render.Text(stdout, res)
	case "markdown", "md":
		_, err = stdout.Write(render.Markdown(res))
	case "html":
		var out []byte
		if out, err = render.HTML(res); err == nil {
			_, err = stdout.Write(out)
		}
	default:
		fmt.Fprintf(stderr, "unsupported format: %s\n", *format)
		return exitUsage
	}
	if err != nil {
		log.Error("write output", "error", err)
		return exitFailure
	}

	if !res.Found() {
		return exitNotFound
	}
	return exitOK
}
