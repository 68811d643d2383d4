package hilite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/siadat/hilite/hilite"
)

func TestReadSource(tt *testing.T) {
	t := td.Assert(tt)

	path := filepath.Join(tt.TempDir(), "src.go")
	content := []byte("\n  package main  \r\n\n")
	t.CmpNoError(os.WriteFile(path, content, 0o644))

	got, err := hilite.ReadSource(path)
	t.CmpNoError(err)
	t.Cmp(got, content)

	_, err = hilite.ReadSource(filepath.Join(tt.TempDir(), "missing.go"))
	t.True(os.IsNotExist(err))
}
