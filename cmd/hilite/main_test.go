package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestRun(tt *testing.T) {
	t := td.Assert(tt)

	path := filepath.Join(tt.TempDir(), "main.go")
	t.CmpNoError(os.WriteFile(path, []byte("x := 5\n"), 0o644))

	t.Run("highlights the file", func(t *td.T) {
		var stdout, stderr bytes.Buffer
		t.Cmp(run([]string{"hilite", path}, &stdout, &stderr), 0)
		t.Cmp(stdout.String(), "\x1b[35mx\x1b[0m \x1b[34m:=\x1b[0m \x1b[37m5\x1b[0m\n")
		t.Cmp(stderr.String(), "")
	})

	t.Run("verbose dumps matches", func(t *td.T) {
		var stdout, stderr bytes.Buffer
		t.Cmp(run([]string{"hilite", "-v", path}, &stdout, &stderr), 0)
		t.Cmp(stderr.String(), td.Re(`main\.go:1:1\t.*identifier.*\t"x"\n`))
		t.Cmp(stderr.String(), td.Re(`main\.go:1:6\t.*number.*\t"5"\n`))
	})

	for _, args := range [][]string{
		{"hilite"},
		{"hilite", path, path},
		{"hilite", "-nope", path},
	} {
		var stdout, stderr bytes.Buffer
		t.Cmp(run(args, &stdout, &stderr), 1, "args %q", args)
		t.Cmp(stderr.String(), "Usage: hilite [-v] <filename>\n")
		t.Cmp(stdout.String(), "")
	}

	t.Run("missing file", func(t *td.T) {
		var stdout, stderr bytes.Buffer
		missing := filepath.Join(tt.TempDir(), "missing.go")
		t.Cmp(run([]string{"hilite", missing}, &stdout, &stderr), 1)
		t.Cmp(stderr.String(), td.HasPrefix("hilite: open "+missing+":"))
		t.Cmp(stdout.String(), "")
	})
}
