package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

const (
	masterFilename = "favicon-32x32.png"
	icoFilename    = "favicon.ico"
)

// icoFrameSizes are the frame dimensions embedded in favicon.ico.
var icoFrameSizes = []int{16, 32, 64}

// ComposeICO reloads the 32px master written by WritePNGs and packages
// 16/32/64 renderings of it into favicon.ico in the same directory. The
// master must already be on disk; a missing master is an error.
func ComposeICO(dir string, log zerolog.Logger) (err error) {
	master, err := loadMaster(filepath.Join(dir, masterFilename))
	if err != nil {
		return fmt.Errorf("load %s: %w", masterFilename, err)
	}

	frames := make([]image.Image, 0, len(icoFrameSizes))
	for _, size := range icoFrameSizes {
		frames = append(frames, scaleFrame(master, size))
	}

	path := filepath.Join(dir, icoFilename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", icoFilename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := ico.EncodeAll(f, frames); err != nil {
		return fmt.Errorf("encode %s: %w", icoFilename, err)
	}
	log.Info().Str("file", path).Ints("sizes", icoFrameSizes).Msg("wrote icon bundle")
	return nil
}

func loadMaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

// scaleFrame resamples src into a size×size frame. A same-size frame is a
// straight copy, so the 32px frame stays pixel-identical to the master.
func scaleFrame(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		xdraw.Copy(dst, image.Point{}, src, b, xdraw.Src, nil)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
