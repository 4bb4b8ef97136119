// Package export persists the rendered favicon set: the fixed PNG raster
// targets and the multi-resolution favicon.ico bundle.
package export

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/coralledger/favicongen/internal/icon"
)

// Target pairs a square pixel size with its output filename.
type Target struct {
	Size     int
	Filename string
}

// Targets is the fixed favicon raster set.
var Targets = []Target{
	{Size: 16, Filename: "favicon-16x16.png"},
	{Size: 32, Filename: "favicon-32x32.png"},
	{Size: 180, Filename: "apple-touch-icon.png"},
}

const dirPerm = os.FileMode(0o755)

// WritePNGs renders every target and persists it under dir, creating the
// directory (and parents) first. Existing files are overwritten. The first
// failure aborts the run; files written before it stay on disk.
func WritePNGs(dir string, log zerolog.Logger) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, t := range Targets {
		path := filepath.Join(dir, t.Filename)
		if err := writePNG(path, t.Size); err != nil {
			return fmt.Errorf("write %s: %w", t.Filename, err)
		}
		log.Info().Str("file", path).Int("size", t.Size).Msg("wrote favicon raster")
	}
	return nil
}

func writePNG(path string, size int) (err error) {
	img, err := icon.Render(size)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
