package hilite

import (
	"fmt"
	"io"
	"os"
)

// ReadSource loads the whole file. The content is returned as is so that the
// rendered output reproduces it byte for byte.
func ReadSource(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return src, nil
}
