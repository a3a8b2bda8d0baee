package complexplanet

import (
	"fmt"
	"sync"
)

// Field is a rendered elevation raster. Values are row-major with row 0 at
// the top of the image.
type Field struct {
	Width  int
	Height int
	Values []float64
}

// At returns the elevation at pixel (x, y).
func (f *Field) At(x, y int) float64 { return f.Values[y*f.Width+x] }

// RenderFace samples one cube face into a size×size field. Rows are flipped
// so that +Y on the sphere is at the top of the image.
func RenderFace(p *Planet, face Face, size int) (*Field, error) {
	if size < 2 {
		return nil, fmt.Errorf("render: face size %d, need at least 2", size)
	}
	f := &Field{Width: size, Height: size, Values: make([]float64, size*size)}
	ctx := p.NewContext()
	for b := 0; b < size; b++ {
		row := (size - 1 - b) * size
		for a := 0; a < size; a++ {
			x, y, z := cubePoint(face, a, b, size)
			f.Values[row+a] = p.Elevation(ctx, x, y, z)
		}
	}
	return f, nil
}

// RenderCube renders all six cube faces, one goroutine per face. The faces
// share the planet's graph; each worker samples through its own context.
func RenderCube(p *Planet, size int) ([6]*Field, error) {
	var fields [6]*Field
	if size < 2 {
		return fields, fmt.Errorf("render: face size %d, need at least 2", size)
	}
	var wg sync.WaitGroup
	errs := make([]error, len(Faces))
	for i, face := range Faces {
		wg.Add(1)
		go func(i int, face Face) {
			defer wg.Done()
			fields[i], errs[i] = RenderFace(p, face, size)
		}(i, face)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return fields, err
		}
	}
	return fields, nil
}

// RenderRect renders an equirectangular projection of the whole sphere. The
// image is width×(width/2), with odd widths floor-divided. Row 0 is the
// north pole edge, column 0 longitude -180.
func RenderRect(p *Planet, width int) (*Field, error) {
	if width < 2 {
		return nil, fmt.Errorf("render: width %d, need at least 2", width)
	}
	height := width / 2
	f := &Field{Width: width, Height: height, Values: make([]float64, width*height)}
	ctx := p.NewContext()
	for py := 0; py < height; py++ {
		row := (height - 1 - py) * width
		for px := 0; px < width; px++ {
			x, y, z := rectPoint(px, py, width, height)
			f.Values[row+px] = p.Elevation(ctx, x, y, z)
		}
	}
	return f, nil
}
