package complexplanet

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// RectFilename is the output filename for the equirectangular projection.
const RectFilename = "lat_lon.png"

// WriteImage encodes img as PNG at path.
func WriteImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// WriteCube renders the six cube faces and writes xp.png through zn.png
// into dir.
func WriteCube(p *Planet, size int, format Format, dir string) error {
	fields, err := RenderCube(p, size)
	if err != nil {
		return err
	}
	for i, face := range Faces {
		img, err := format.Image(fields[i])
		if err != nil {
			return err
		}
		if err := WriteImage(filepath.Join(dir, face.Filename()), img); err != nil {
			return err
		}
	}
	return nil
}

// WriteRect renders the equirectangular projection and writes lat_lon.png
// into dir.
func WriteRect(p *Planet, width int, format Format, dir string) error {
	field, err := RenderRect(p, width)
	if err != nil {
		return err
	}
	img, err := format.Image(field)
	if err != nil {
		return err
	}
	return WriteImage(filepath.Join(dir, RectFilename), img)
}
