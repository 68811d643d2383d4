package main

import (
	"errors"
	"flag"
	"fmt"
	"go/token"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/siadat/hilite/hilite"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args, color.Output, color.Error))
}

func run(args []string, stdout, stderr io.Writer) int {
	prog := args[0]
	if err := highlight(prog, args[1:], stdout, stderr); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: %s [-v] <filename>\n", prog)
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		}
		return 1
	}
	return 0
}

func highlight(prog string, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet(prog, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	verbose := flags.Bool("v", false, "verbose")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if flags.NArg() != 1 {
		return errUsage
	}
	filename := flags.Arg(0)

	src, err := hilite.ReadSource(filename)
	if err != nil {
		return err
	}

	matches := hilite.Classify(src)
	if *verbose {
		dumpMatches(stderr, filename, src, matches)
	}
	return hilite.Render(stdout, src, hilite.Segments(matches, hilite.DefaultPalette))
}

func dumpMatches(w io.Writer, filename string, src []byte, matches []hilite.Match) {
	fset := token.NewFileSet()
	file := fset.AddFile(filename, -1, len(src))
	file.SetLinesForContent(src)

	class := color.New(color.Bold)
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%s\t%q\n",
			fset.Position(file.Pos(m.Start)),
			class.Sprint(m.Class),
			m.Text(src),
		)
	}
}
