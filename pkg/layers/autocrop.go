package layers

import (
	"image"
	"image/draw"
)

// Autocrop returns a copy of the node tree with every leaf trimmed to the
// bounding box of its non-transparent pixels. Offsets and sizes are adjusted
// to match the trimmed raster, so downstream coordinate math sees the
// post-crop geometry. The input tree is not modified.
//
// Leaves without raster content and fully transparent leaves are returned
// unchanged (there is nothing meaningful to crop to).
func Autocrop(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = autocropNode(n)
	}
	return out
}

func autocropNode(n Node) Node {
	switch v := n.(type) {
	case *Group:
		return &Group{
			Name:     v.Name,
			Visible:  v.Visible,
			Children: Autocrop(v.Children),
		}
	case *Leaf:
		return autocropLeaf(v)
	default:
		return n
	}
}

func autocropLeaf(l *Leaf) *Leaf {
	if l.Raster == nil {
		return l
	}

	opaque, ok := opaqueBounds(l.Raster)
	if !ok || opaque == l.Raster.Bounds() {
		return l
	}

	cropped := image.NewRGBA(image.Rect(0, 0, opaque.Dx(), opaque.Dy()))
	draw.Draw(cropped, cropped.Bounds(), l.Raster, opaque.Min, draw.Src)

	full := l.Raster.Bounds()
	return &Leaf{
		Name:    l.Name,
		Visible: l.Visible,
		OffsetX: l.OffsetX + (opaque.Min.X - full.Min.X),
		OffsetY: l.OffsetY + (opaque.Min.Y - full.Min.Y),
		Width:   opaque.Dx(),
		Height:  opaque.Dy(),
		Raster:  cropped,
	}
}

// opaqueBounds scans img for the smallest rectangle containing every pixel
// with non-zero alpha. The second return is false when the image is fully
// transparent.
func opaqueBounds(img image.Image) (image.Rectangle, bool) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y

	found := false
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
