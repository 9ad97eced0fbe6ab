// Package render paints a donut layout as a standalone vector document.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/donut/internal/geometry"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// Frame is one snapshot of the widget.
type Frame struct {
	Layout     geometry.Layout
	Foreground string
	Background string
	Running    bool
}

// Export writes f to path, picking SVG or PDF from the file extension.
func Export(path string, f Frame) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	var write func(*os.File, Frame) error
	switch ext {
	case ".svg":
		write = func(out *os.File, f Frame) error { return SVG(out, f) }
	case ".pdf":
		write = func(out *os.File, f Frame) error { return PDF(out, f) }
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := write(out, f); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
