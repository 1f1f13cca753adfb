package figure

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat indicates the output extension names no known format.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultFormat is used when the output path has no extension.
const DefaultFormat = "png"

var formats = map[string]bool{
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"pdf":  true,
	"png":  true,
	"svg":  true,
	"tex":  true,
	"tif":  true,
	"tiff": true,
}

// Format returns the image format implied by path's extension.
func Format(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return DefaultFormat, nil
	}
	if !formats[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return ext, nil
}

// Save encodes the figure and writes it to path, replacing any existing
// file. The image is written to a temporary file in the same directory and
// renamed into place, so path is never left half written.
func (f *Figure) Save(path string) (err error) {
	format, err := Format(path)
	if err != nil {
		return err
	}

	w, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = w.WriteTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
