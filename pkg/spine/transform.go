package spine

// Transform converts a layer's placement from editor coordinates to Spine
// coordinates. Editors place layers by their top-left corner relative to the
// canvas top-left, with y growing downward; Spine positions attachments by
// their center, with x measured from the canvas center and y growing upward
// from the canvas bottom.
//
// All inputs are non-negative pixel values. Halving uses integer division,
// so a 5-pixel span has a half-width of 2. No rotation or scale is ever
// involved.
func Transform(offsetX, offsetY, width, height, canvasWidth, canvasHeight int) (x, y int) {
	// Move the pivot from the layer's top-left corner to its center.
	cx := offsetX + width/2
	cy := offsetY + height/2

	// Re-express the center against Spine's origin: canvas center on x,
	// canvas bottom on y with the axis flipped.
	x = cx - canvasWidth/2
	y = canvasHeight - cy
	return x, y
}
