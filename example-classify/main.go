package main

import (
	"fmt"
	"os"

	"github.com/siadat/hilite/hilite"
)

func main() {
	src := []byte(`
package main

// greet says hello
func greet(name string) {
  fmt.Printf("hello %s!\n", name)
}

func main() {
  x := 0x1A + 1
  greet("GopherCon")
}
`)
	for _, m := range hilite.Classify(src) {
		fmt.Printf("[%d,%d] \t %-10s \t %q\n", m.Start, m.End, m.Class, m.Text(src))
	}

	fmt.Println("---")
	if err := hilite.Highlight(os.Stdout, src); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
