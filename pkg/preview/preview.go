// Package preview composites a flattened layer stack back onto a single
// canvas, giving a quick visual check that draw order and placement survive
// the export intact.
package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/jclounge/spine-export/pkg/layers"
	"github.com/jclounge/spine-export/pkg/spine"
)

// Composite renders the flattened stack onto a canvas-sized image. Leaves
// are drawn in slot order, which is back-to-front, so later slots paint over
// earlier ones just as Spine would.
func Composite(f *spine.Flattened, canvas layers.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))

	byName := make(map[string]*layers.Leaf, len(f.Leaves))
	for _, leaf := range f.Leaves {
		byName[leaf.Name] = leaf
	}

	for _, slot := range f.Slots {
		leaf := byName[slot.Name]
		if leaf == nil || leaf.Raster == nil {
			continue
		}
		rect := image.Rect(leaf.OffsetX, leaf.OffsetY, leaf.OffsetX+leaf.Width, leaf.OffsetY+leaf.Height)
		draw.Draw(img, rect, leaf.Raster, leaf.Raster.Bounds().Min, draw.Over)
	}
	return img
}

// WritePNG saves the composited preview to path.
func WritePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create preview %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode preview %q: %w", path, err)
	}
	return f.Close()
}
